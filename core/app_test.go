package core_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/auth"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/config"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/core"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/dm"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/testutil"
)

func writeConfig(t *testing.T, clientID string) string {
	home := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ForgeCfg.ClientID = clientID
	require.NoError(t, config.WriteConfigFile(home, cfg))
	return home
}

func TestNewAppRequiresClientID(t *testing.T) {
	r := require.New(t)
	t.Setenv("FORGE_CLIENT_ID", "")

	_, err := core.NewApp(writeConfig(t, ""))
	r.ErrorContains(err, "client id")
}

func TestNewAppWiresResolver(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Hubs = []dm.Hub{testutil.Hub("h1", "Hub", "hubs:autodesk.core:Hub")}

	app, err := core.NewApp(writeConfig(t, "client"), core.WithClient(fake))
	r.NoError(err)
	defer func() { _ = app.Stop() }()

	nodes, err := app.Resolver().Resolve(context.Background(), "#", auth.Credentials{AccessToken: "t"})
	r.NoError(err)
	r.Len(nodes, 1)
	r.Equal(1, fake.CallCount())
}

func TestNewAppCreatesConfig(t *testing.T) {
	r := require.New(t)
	home := filepath.Join(t.TempDir(), "fresh")
	t.Setenv("FORGE_CLIENT_ID", "from-env")

	app, err := core.NewApp(home, core.WithClient(testutil.NewFakeDataManagement()))
	r.NoError(err)
	defer func() { _ = app.Stop() }()

	_, err = os.Stat(filepath.Join(home, config.ConfigFileName))
	r.NoError(err)
}
