package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"
)

// Validate checks the values the server cannot start without.
func (c Config) Validate() error {
	if c.ForgeCfg.ClientID == "" {
		return errors.New("missing forge client id (set forge_config.client_id or FORGE_CLIENT_ID)")
	}

	u, err := url.Parse(c.ForgeCfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Join(fmt.Errorf("invalid forge base url %q", c.ForgeCfg.BaseURL), err)
	}

	if c.APICfg.Port <= 0 || c.APICfg.Port > 65535 {
		return fmt.Errorf("invalid api port %d", c.APICfg.Port)
	}

	if _, err := c.Location(); err != nil {
		return errors.Join(errors.New("invalid time zone"), err)
	}

	if c.LocaleCfg.DefaultLocale != "" {
		if _, err := language.Parse(c.LocaleCfg.DefaultLocale); err != nil {
			return errors.Join(errors.New("invalid default locale"), err)
		}
	}

	return nil
}

// Location resolves the configured time zone, defaulting to UTC.
func (c Config) Location() (*time.Location, error) {
	if c.LocaleCfg.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.LocaleCfg.TimeZone)
}

func (c Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.ForgeCfg.Timeout) * time.Second
}

// ReadConfig parses yaml data on top of the defaults.
func ReadConfig(data []byte) (*Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Export converts the config to yaml format
func (c Config) Export() ([]byte, error) {
	sb := strings.Builder{}
	sb.WriteString("########################\n")
	sb.WriteString("### Forgedash Config ###\n")
	sb.WriteString("########################\n\n")

	d, err := yaml.Marshal(&c)
	if err != nil {
		return nil, err
	}

	sb.Write(d)

	sb.WriteString("\n########################\n")

	return []byte(sb.String()), nil
}
