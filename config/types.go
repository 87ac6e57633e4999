package config

import "github.com/rs/zerolog"

type Config struct {
	APICfg    APIConfig    `yaml:"api_config" mapstructure:"api_config"`
	ForgeCfg  ForgeConfig  `yaml:"forge_config" mapstructure:"forge_config"`
	LocaleCfg LocaleConfig `yaml:"locale_config" mapstructure:"locale_config"`
	LogFile   string       `yaml:"log_file" mapstructure:"log_file"`
	PProfAddr string       `yaml:"pprof_addr" mapstructure:"pprof_addr"`
}

type APIConfig struct {
	Port           int64    `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	StaticDir      string   `yaml:"static_dir" mapstructure:"static_dir"`
	ReadTimeout    int64    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout   int64    `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout    int64    `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// ForgeConfig points at the data management API. AccessToken is only meant
// for local development; browsers normally send their own bearer token.
type ForgeConfig struct {
	BaseURL      string `yaml:"base_url" mapstructure:"base_url"`
	ClientID     string `yaml:"client_id" mapstructure:"client_id"`
	ClientSecret string `yaml:"client_secret" mapstructure:"client_secret"`
	AccessToken  string `yaml:"access_token" mapstructure:"access_token"`
	Timeout      int64  `yaml:"timeout" mapstructure:"timeout"`
}

type LocaleConfig struct {
	TimeZone      string `yaml:"time_zone" mapstructure:"time_zone"`
	DefaultLocale string `yaml:"default_locale" mapstructure:"default_locale"`
}

func DefaultConfig() *Config {
	return &Config{
		APICfg: APIConfig{
			Port:           3000,
			AllowedOrigins: []string{"*"},
			StaticDir:      "",
			ReadTimeout:    30,
			WriteTimeout:   60,
			IdleTimeout:    120,
		},
		ForgeCfg: ForgeConfig{
			BaseURL: "https://developer.api.autodesk.com",
			Timeout: 30,
		},
		LocaleCfg: LocaleConfig{
			TimeZone:      "UTC",
			DefaultLocale: "en-US",
		},
		LogFile:   "",
		PProfAddr: "",
	}
}

// MarshalZerologObject logs the config with secrets masked.
func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Int64("port", c.APICfg.Port).
		Strs("allowed_origins", c.APICfg.AllowedOrigins).
		Str("static_dir", c.APICfg.StaticDir).
		Str("base_url", c.ForgeCfg.BaseURL).
		Str("client_id", c.ForgeCfg.ClientID).
		Bool("client_secret_set", c.ForgeCfg.ClientSecret != "").
		Bool("access_token_set", c.ForgeCfg.AccessToken != "").
		Str("time_zone", c.LocaleCfg.TimeZone).
		Str("default_locale", c.LocaleCfg.DefaultLocale).
		Str("log_file", c.LogFile).
		Str("pprof_addr", c.PProfAddr)
}
