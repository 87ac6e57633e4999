package resolver_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/auth"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/dm"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/resolver"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/testutil"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/types"
)

var creds = auth.Credentials{AccessToken: "token", ClientID: "client"}

func newResolver(fake *testutil.FakeDataManagement) *resolver.Resolver {
	return resolver.NewResolver(fake, resolver.NewTimeFormatter(time.UTC, "en-US"))
}

func TestResolveRootListsHubs(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Hubs = []dm.Hub{
		testutil.Hub(base+"/project/v1/hubs/a.1", "Team", "hubs:autodesk.core:Hub"),
		testutil.Hub(base+"/project/v1/hubs/a.2", "Mine", "hubs:autodesk.a360:PersonalHub"),
		testutil.Hub(base+"/project/v1/hubs/b.3", "ACME", "hubs:autodesk.bim360:Account"),
		testutil.Hub(base+"/project/v1/hubs/x.4", "Other", "hubs:autodesk.fusion:Something"),
	}

	nodes, err := newResolver(fake).Resolve(context.Background(), "#", creds)
	r.NoError(err)
	r.Len(nodes, 4)

	for _, n := range nodes {
		r.True(n.Children)
		r.NotNil(n.ID)
	}
	r.Equal(types.NodeHubs, nodes[0].Type)
	r.Equal(types.NodePersonalHub, nodes[1].Type)
	r.Equal(types.NodeBIM360Hubs, nodes[2].Type)
	r.Equal("", nodes[3].Type)
	r.Equal(base+"/project/v1/hubs/b.3", *nodes[2].ID)
	r.Equal("ACME", nodes[2].Text)

	calls := fake.Calls()
	r.Len(calls, 1)
	r.Equal("hubs", calls[0].Operation)
	r.Equal(creds, calls[0].Creds)
}

func TestResolveClassification(t *testing.T) {
	tests := []struct {
		raw  string
		op   string
		args []string
	}{
		{base + "/project/v1/hubs/H", "projects", []string{"H"}},
		{base + "/project/v1/hubs/H/projects/P", "top_folders", []string{"H", "P"}},
		{base + "/data/v1/projects/P/folders/F", "folder_contents", []string{"P", "F"}},
		{base + "/data/v1/projects/P/items/I", "item_versions", []string{"P", "I"}},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			r := require.New(t)
			fake := testutil.NewFakeDataManagement()

			_, err := newResolver(fake).Resolve(context.Background(), tt.raw, creds)
			r.NoError(err)

			calls := fake.Calls()
			r.Len(calls, 1)
			r.Equal(tt.op, calls[0].Operation)
			r.Equal(tt.args, calls[0].Args)
		})
	}
}

func TestResolveProjects(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Projects["b.h"] = []dm.Project{
		testutil.Project("p1", "Tower", "projects:autodesk.bim360:Project"),
		testutil.Project("p2", "Sketches", "projects:autodesk.core:Project"),
		testutil.Project("p3", "Misc", ""),
	}

	nodes, err := newResolver(fake).Resolve(context.Background(), base+"/project/v1/hubs/b.h", creds)
	r.NoError(err)
	r.Len(nodes, 3)
	r.Equal(types.NodeBIM360Projects, nodes[0].Type)
	r.Equal(types.NodeA360Projects, nodes[1].Type)
	r.Equal(types.NodeProjects, nodes[2].Type)
	r.True(nodes[2].Children)
}

func TestResolveTopFoldersPreferDisplayName(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.TopFolders["b.p"] = []dm.Folder{
		testutil.Folder("f1", "raw-name", "Project Files"),
		testutil.Folder("f2", "Plans", ""),
	}

	nodes, err := newResolver(fake).Resolve(context.Background(), base+"/project/v1/hubs/b.h/projects/b.p", creds)
	r.NoError(err)
	r.Len(nodes, 2)
	r.Equal("Project Files", nodes[0].Text)
	r.Equal("Plans", nodes[1].Text)
	r.Equal("folders", nodes[0].Type)
	r.True(nodes[0].Children)
}

func TestResolveFolderContentsFiltersUnnamed(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Contents["F"] = []dm.Content{
		testutil.Content("items", "i1", "", ""),
		testutil.Content("items", "i2", "", "model.rvt"),
		testutil.Content("folders", "f3", "Drawings", ""),
		testutil.Content("items", "i4", "house.nwd", "House"),
	}

	nodes, err := newResolver(fake).Resolve(context.Background(), base+"/data/v1/projects/P/folders/F", creds)
	r.NoError(err)
	r.Len(nodes, 3)

	r.Equal("model.rvt", nodes[0].Text)
	r.Equal("i2", *nodes[0].ID)
	r.Equal("Drawings", nodes[1].Text)
	r.Equal("folders", nodes[1].Type)
	r.Equal("house.nwd", nodes[2].Text)
	for _, n := range nodes {
		r.NotEqual("i1", *n.ID)
	}
}

func TestResolveVersions(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Versions["I"] = []dm.Version{
		testutil.Version("abc?version=7", "2024-01-02T10:00:00Z", "J. Doe", "urn123"),
		testutil.Version("abc?version=6", "2024-01-02T10:00:00Z", "J. Doe", ""),
	}

	nodes, err := newResolver(fake).Resolve(context.Background(), base+"/data/v1/projects/P/items/I", creds)
	r.NoError(err)
	r.Len(nodes, 2)

	r.Equal(types.TreeNode{
		ID:       strPtr("urn123"),
		Text:     "v7: 1/2/2024, 10:00:00 AM by J. Doe",
		Type:     types.NodeVersions,
		Children: false,
	}, nodes[0])

	r.Nil(nodes[1].ID)
	r.Equal(types.NodeUnsupported, nodes[1].Type)
	r.Equal("v6: 1/2/2024, 10:00:00 AM by J. Doe", nodes[1].Text)
	r.False(nodes[1].Children)

	data, err := json.Marshal(nodes[1])
	r.NoError(err)
	r.JSONEq(`{"id":null,"text":"v6: 1/2/2024, 10:00:00 AM by J. Doe","type":"unsupported","children":false}`, string(data))
}

func TestResolveVersionsLocaleAndDecoding(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Versions["I"] = []dm.Version{
		testutil.Version("urn:i?version=3", "2024-01-02T10:00:00.0000000Z", "J%C3%BCrgen", "urn3"),
		testutil.Version("urn:i?version=2", "yesterday", "100% sure", "urn2"),
	}

	ctx := resolver.WithLocale(context.Background(), "de-DE,de;q=0.9")
	nodes, err := newResolver(fake).Resolve(ctx, base+"/data/v1/projects/P/items/I", creds)
	r.NoError(err)
	r.Len(nodes, 2)
	r.Equal("v3: 2.1.2024, 10:00:00 by Jürgen", nodes[0].Text)
	r.Equal("v2: yesterday by 100% sure", nodes[1].Text)
}

func TestResolveVersionsSkipsMalformed(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Versions["I"] = []dm.Version{
		testutil.Version("urn:i", "2024-01-02T10:00:00Z", "A", "u1"),
		testutil.Version("urn:i?version=two", "2024-01-02T10:00:00Z", "B", "u2"),
		testutil.Version("urn:i?version=1", "2024-01-02T10:00:00Z", "C", "u3"),
	}

	nodes, err := newResolver(fake).Resolve(context.Background(), base+"/data/v1/projects/P/items/I", creds)
	r.NoError(err)
	r.Len(nodes, 1)
	r.Equal("u3", *nodes[0].ID)
}

func TestResolveInvalidMakesNoCalls(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	res := newResolver(fake)

	_, err := res.Resolve(context.Background(), "", creds)
	r.ErrorIs(err, resolver.ErrInvalidIdentifier)

	_, err = res.Resolve(context.Background(), base+"/data/v1/projects/P/derivatives/D", creds)
	r.ErrorIs(err, resolver.ErrUnclassifiedResource)

	r.Equal(0, fake.CallCount())
}

func TestResolveUpstreamFailure(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Err = &dm.StatusError{Operation: "projects", StatusCode: 403, Body: "forbidden"}

	nodes, err := newResolver(fake).Resolve(context.Background(), base+"/project/v1/hubs/H", creds)
	r.Nil(nodes)

	var upstream *resolver.UpstreamError
	r.True(errors.As(err, &upstream))
	r.Equal(types.KindHub, upstream.Kind)

	var status *dm.StatusError
	r.True(errors.As(err, &status))
	r.Equal(403, status.StatusCode)
	r.Equal(1, fake.CallCount())
}

func TestResolveIsIdempotent(t *testing.T) {
	r := require.New(t)

	fake := testutil.NewFakeDataManagement()
	fake.Contents["F"] = []dm.Content{
		testutil.Content("items", "i2", "b.rvt", ""),
		testutil.Content("items", "i1", "a.rvt", ""),
		testutil.Content("items", "i3", "", ""),
	}
	res := newResolver(fake)
	id := base + "/data/v1/projects/P/folders/F"

	first, err := res.Resolve(context.Background(), id, creds)
	r.NoError(err)
	second, err := res.Resolve(context.Background(), id, creds)
	r.NoError(err)

	a, err := json.Marshal(first)
	r.NoError(err)
	b, err := json.Marshal(second)
	r.NoError(err)
	r.Equal(a, b)
	r.Equal("b.rvt", first[0].Text)
}

func strPtr(s string) *string {
	return &s
}
