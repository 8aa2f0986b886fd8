package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      App      `mapstructure:"app"`
	Catalog  Catalog  `mapstructure:"catalog"`
	Metadata Metadata `mapstructure:"metadata"`
}

// App holds general application configuration
type App struct {
	Debug      bool   `mapstructure:"debug"`
	LogLevel   string `mapstructure:"log_level"`
	ConfigFile string `mapstructure:"config_file"`
}

// Catalog holds input/output path configuration
type Catalog struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
}

// Metadata holds the fixed descriptive fields stamped onto the catalog
type Metadata struct {
	Version     string `mapstructure:"version"`
	Description string `mapstructure:"description"`
	Source      string `mapstructure:"source"`
	License     string `mapstructure:"license"`
	LastUpdated string `mapstructure:"last_updated"`
}

var globalConfig *Config

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	// Configure viper
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".iconcatalog")
		viper.SetConfigType("yaml")
	}

	// Set defaults
	setDefaults()

	// Bind environment variables
	bindEnvironmentVariables()

	// Enable automatic environment variable reading
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into struct
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")

	// Catalog defaults
	viper.SetDefault("catalog.input", "line-awesome-icons.txt")
	viper.SetDefault("catalog.output", "line-awesome-icons-complete.json")

	// Metadata defaults match the published catalog
	viper.SetDefault("metadata.version", "1.3.0")
	viper.SetDefault("metadata.description", "Line Awesome - Free icon font replacement for Font Awesome")
	viper.SetDefault("metadata.source", "https://icons8.com/line-awesome")
	viper.SetDefault("metadata.license", "MIT")
	viper.SetDefault("metadata.last_updated", "2025-09-16")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	bindEnvKeys("catalog.input", []string{
		"ICONCATALOG_INPUT",
		"ICON_LIST_FILE",
	})

	bindEnvKeys("catalog.output", []string{
		"ICONCATALOG_OUTPUT",
		"ICON_CATALOG_FILE",
	})

	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"ICONCATALOG_DEBUG",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// Convenience getters for commonly used configuration values
func GetApp() App           { return Get().App }
func GetCatalog() Catalog   { return Get().Catalog }
func GetMetadata() Metadata { return Get().Metadata }

func GetInputPath() string  { return Get().Catalog.Input }
func GetOutputPath() string { return Get().Catalog.Output }
func IsDebugMode() bool     { return Get().App.Debug }

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
