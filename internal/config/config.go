// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	AzureOpenAI AzureOpenAIConfig `yaml:"azure_openai"`
	AzureSpeech AzureSpeechConfig `yaml:"azure_speech"`
	Market      MarketConfig      `yaml:"market"`
	Debug       bool              `yaml:"debug"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"` // listen address
	Port int    `yaml:"port"` // listen port
}

// AzureOpenAIConfig holds the chat-model provider settings. When Endpoint is
// empty the client falls back to the public OpenAI API.
type AzureOpenAIConfig struct {
	APIKey         string `yaml:"api_key"`
	Endpoint       string `yaml:"endpoint"`
	APIVersion     string `yaml:"api_version"`
	DeploymentName string `yaml:"deployment_name"` // model / deployment name
}

// AzureSpeechConfig holds the speech provider settings.
type AzureSpeechConfig struct {
	Key    string `yaml:"key"`
	Region string `yaml:"region"`
}

// MarketConfig holds upstream market data settings. The mock service ignores
// these but the keys are read so a real provider can be dropped in without a
// schema change.
type MarketConfig struct {
	APIURL string `yaml:"api_url"`
	APIKey string `yaml:"api_key"`
}

// Load reads the configuration file, applies environment overrides and
// defaults, and validates the result.
func Load(filename string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No file is fine: everything can come from the environment.
	} else if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnv(&config)
	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// applyEnv lets environment variables override file values.
func applyEnv(config *Config) {
	overrideString(&config.AzureOpenAI.APIKey, "AZURE_OPENAI_API_KEY")
	overrideString(&config.AzureOpenAI.Endpoint, "AZURE_OPENAI_ENDPOINT")
	overrideString(&config.AzureOpenAI.APIVersion, "AZURE_OPENAI_API_VERSION")
	overrideString(&config.AzureOpenAI.DeploymentName, "AZURE_OPENAI_DEPLOYMENT_NAME")
	overrideString(&config.AzureSpeech.Key, "AZURE_SPEECH_KEY")
	overrideString(&config.AzureSpeech.Region, "AZURE_SPEECH_REGION")
	overrideString(&config.Market.APIURL, "MARKET_DATA_API_URL")
	overrideString(&config.Market.APIKey, "MARKET_DATA_API_KEY")
	if v := os.Getenv("DEBUG"); v == "true" || v == "True" || v == "1" {
		config.Debug = true
	}
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(config *Config) {
	if config.Server.Host == "" {
		config.Server.Host = "0.0.0.0"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8000
	}
	if config.AzureOpenAI.APIVersion == "" {
		config.AzureOpenAI.APIVersion = "2024-02-15-preview"
	}
	if config.AzureOpenAI.DeploymentName == "" {
		config.AzureOpenAI.DeploymentName = "gpt-4o"
	}
}

func validate(config *Config) error {
	if config.Server.Port <= 0 {
		return ErrInvalidPort
	}
	if config.AzureOpenAI.APIKey == "" {
		return ErrMissingOpenAIKey
	}
	return nil
}

// Addr returns the host:port string for the HTTP listener.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
