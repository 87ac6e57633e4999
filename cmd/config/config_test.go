package config_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	cmdconfig "github.com/thakopian/DASHBOARD-BIM360-FORGE/cmd/config"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/cmd/types"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/config"
)

func TestGetValue(t *testing.T) {
	r := require.New(t)
	cfg := config.DefaultConfig()

	v, err := cmdconfig.GetValue(cfg, "api_config.port")
	r.NoError(err)
	r.Equal("3000", v)

	v, err = cmdconfig.GetValue(cfg, "forge_config.base_url")
	r.NoError(err)
	r.Equal("https://developer.api.autodesk.com", v)

	v, err = cmdconfig.GetValue(cfg, "locale_config")
	r.NoError(err)
	r.Contains(v, "time_zone: UTC")

	_, err = cmdconfig.GetValue(cfg, "api_config.nope")
	r.ErrorContains(err, "unknown config key")

	_, err = cmdconfig.GetValue(cfg, "nope.port")
	r.ErrorContains(err, "unknown config key")
}

func TestSetValue(t *testing.T) {
	r := require.New(t)
	cfg := config.DefaultConfig()

	updated, err := cmdconfig.SetValue(cfg, "api_config.port", "8080")
	r.NoError(err)
	r.Equal(int64(8080), updated.APICfg.Port)
	r.Equal(int64(3000), cfg.APICfg.Port)

	updated, err = cmdconfig.SetValue(updated, "forge_config.client_id", "12345")
	r.NoError(err)
	r.Equal("12345", updated.ForgeCfg.ClientID)
	r.Equal(int64(8080), updated.APICfg.Port)

	updated, err = cmdconfig.SetValue(updated, "api_config.allowed_origins", "[https://a.example, https://b.example]")
	r.NoError(err)
	r.Equal([]string{"https://a.example", "https://b.example"}, updated.APICfg.AllowedOrigins)

	_, err = cmdconfig.SetValue(cfg, "api_config.port", "eighty")
	r.ErrorContains(err, "invalid value")

	_, err = cmdconfig.SetValue(cfg, "api_config", "x")
	r.ErrorContains(err, "cannot set section")
}

func TestSetCommandWritesFile(t *testing.T) {
	r := require.New(t)
	home := t.TempDir()
	r.NoError(config.WriteConfigFile(home, config.DefaultConfig()))

	cmd := cmdconfig.ConfigCmd()
	cmd.PersistentFlags().String(types.FlagHome, home, "")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"set", "locale_config.time_zone", "Europe/Paris"})
	r.NoError(cmd.Execute())
	r.Contains(out.String(), "locale_config.time_zone set to Europe/Paris")

	cfg, err := config.ReadConfigFile(home)
	r.NoError(err)
	r.Equal("Europe/Paris", cfg.LocaleCfg.TimeZone)
}
