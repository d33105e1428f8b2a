package whatsappgo

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing"
)

// Config carries the credentials and identifiers every request needs. There is no
// ambient default; callers construct one and hand it to NewClient.
type Config struct {
	AccessToken       string `yaml:"access_token"`
	APIVersion        string `yaml:"api_version"`
	PhoneNumberID     string `yaml:"phone_number_id"`
	BusinessAccountID string `yaml:"business_account_id"`
	BaseURL           string `yaml:"base_url"`
}

func NewConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AccessToken == "" {
		return errors.New("config is missing an access token")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = routing.GraphBaseURL
	}
	if c.APIVersion == "" {
		c.APIVersion = routing.DefaultAPIVersion
	}
}
