package config

// Config is the top-level kitchenfinder configuration, corresponding to .kitchenfinder.yml.
type Config struct {
	APIBaseURL      string `yaml:"api_base_url" koanf:"api_base_url"`
	DefaultLocation string `yaml:"default_location" koanf:"default_location"`
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogLevel        string `yaml:"log_level" koanf:"log_level"`
}
