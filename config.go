package storekeep

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default session settings, matching the reference store setup.
const (
	DefaultUsername = "admin"
	DefaultPassword = "password"
	DefaultCurrency = "USD"
)

// Config holds the optional session configuration loaded from a YAML file.
type Config struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Currency string `yaml:"currency"` // ISO 4217 code used to display prices and totals
	Theme    string `yaml:"theme"`    // glamour style name for rendered reports
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Username: DefaultUsername,
		Password: DefaultPassword,
		Currency: DefaultCurrency,
		Theme:    "auto",
	}
}

// LoadConfig reads a YAML configuration file. A missing file is not an
// error: defaults are returned. Fields absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("could not parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Credentials returns the credential verifier configured for the session.
func (c Config) Credentials() CredentialVerifier {
	return StaticCredentials{Username: c.Username, Password: c.Password}
}
