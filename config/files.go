package config

import (
	"errors"
	"os"
	"path"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	ConfigName     = "config"
	ConfigType     = "yaml"
	ConfigFileName = ConfigName + "." + ConfigType
)

// Creates necessary directory and file if they do not exist
// Returns false if the file exists and true if the file does not exist
// If an error occurs, it returns false and the error
func createIfNotExists(directory string, fileName string, contents []byte) (bool, error) {
	err := os.MkdirAll(directory, 0o755)
	if err != nil {
		return false, err
	}

	filePath := path.Join(directory, fileName)
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return false, err
		}
		defer f.Close()

		_, err = f.Write(contents)
		if err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}

func ReadConfigFile(directory string) (*Config, error) {
	data, err := os.ReadFile(path.Join(os.ExpandEnv(directory), ConfigFileName))
	if err != nil {
		return nil, err
	}

	return ReadConfig(data)
}

// WriteConfigFile replaces the config file in directory.
func WriteConfigFile(directory string, cfg *Config) error {
	data, err := cfg.Export()
	if err != nil {
		return err
	}

	return os.WriteFile(path.Join(os.ExpandEnv(directory), ConfigFileName), data, 0o600)
}

// Init loads the config from home, writing the defaults on first run.
// Environment variables override file values.
func Init(home string) (*Config, error) {
	directory := os.ExpandEnv(home)

	defaults, err := DefaultConfig().Export()
	if err != nil {
		return nil, err
	}
	created, err := createIfNotExists(directory, ConfigFileName, defaults)
	if err != nil {
		return nil, err
	}
	if created {
		log.Info().Str("path", path.Join(directory, ConfigFileName)).Msg("wrote default config")
	}

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
	v.AddConfigPath(directory)

	bindings := map[string]string{
		"forge_config.client_id":     "FORGE_CLIENT_ID",
		"forge_config.client_secret": "FORGE_CLIENT_SECRET",
		"forge_config.access_token":  "FORGE_ACCESS_TOKEN",
		"forge_config.base_url":      "FORGE_BASE_URL",
		"api_config.port":            "PORT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}

	log.Debug().Object("config", config).Msg("loaded config")

	return config, nil
}
