package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result
// to path and returns it. Existing values in base are offered as defaults.
func RunWizard(path string, base *Config) (*Config, error) {
	if base == nil {
		base = DefaultConfig()
	}

	fmt.Println("Welcome to kitchenfinder! Let's configure the search page.")
	fmt.Println()

	// 1. API base URL.
	apiPrompt := promptui.Prompt{
		Label:    "Kitchen API base URL",
		Default:  base.APIBaseURL,
		Validate: validateBaseURL,
	}
	apiBaseURL, err := apiPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}

	// 2. Default location.
	locationPrompt := promptui.Prompt{
		Label:   "Default search location",
		Default: base.DefaultLocation,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("location cannot be empty")
			}
			return nil
		},
	}
	location, err := locationPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default location: %w", err)
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(base.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	cfg := &Config{
		APIBaseURL:      strings.TrimSpace(apiBaseURL),
		DefaultLocation: strings.TrimSpace(location),
		Port:            port,
		AllowAllOrigins: base.AllowAllOrigins,
		LogLevel:        base.LogLevel,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
