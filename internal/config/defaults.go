package config

// DefaultFile is the config file read when --config is not given.
const DefaultFile = ".kitchenfinder.yml"

// EnvPrefix prefixes every environment override, e.g. KITCHENFINDER_API_BASE_URL.
const EnvPrefix = "KITCHENFINDER_"

// DefaultConfig returns a Config with sensible defaults. The API base URL
// has no default; it must come from the file or the environment.
func DefaultConfig() *Config {
	return &Config{
		DefaultLocation: "Delhi",
		Port:            8080,
		AllowAllOrigins: false,
		LogLevel:        "info",
	}
}
