package testutil

import (
	"context"
	"sync"

	"github.com/thakopian/DASHBOARD-BIM360-FORGE/auth"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/dm"
)

var _ dm.Client = (*FakeDataManagement)(nil)

// Call records a single request made against FakeDataManagement.
type Call struct {
	Operation string
	Args      []string
	Creds     auth.Credentials
}

// FakeDataManagement serves canned data management responses and records
// every call. Set Err to make all calls fail.
type FakeDataManagement struct {
	Hubs       []dm.Hub
	Projects   map[string][]dm.Project
	TopFolders map[string][]dm.Folder
	Contents   map[string][]dm.Content
	Versions   map[string][]dm.Version
	Err        error

	mu    sync.Mutex
	calls []Call
}

func NewFakeDataManagement() *FakeDataManagement {
	return &FakeDataManagement{
		Projects:   make(map[string][]dm.Project),
		TopFolders: make(map[string][]dm.Folder),
		Contents:   make(map[string][]dm.Content),
		Versions:   make(map[string][]dm.Version),
	}
}

func (f *FakeDataManagement) record(op string, creds auth.Credentials, args ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Operation: op, Args: args, Creds: creds})
}

func (f *FakeDataManagement) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

func (f *FakeDataManagement) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *FakeDataManagement) ListHubs(_ context.Context, creds auth.Credentials) ([]dm.Hub, error) {
	f.record("hubs", creds)
	return f.Hubs, f.Err
}

func (f *FakeDataManagement) ListHubProjects(_ context.Context, creds auth.Credentials, hubID string) ([]dm.Project, error) {
	f.record("projects", creds, hubID)
	return f.Projects[hubID], f.Err
}

func (f *FakeDataManagement) ListProjectTopFolders(_ context.Context, creds auth.Credentials, hubID, projectID string) ([]dm.Folder, error) {
	f.record("top_folders", creds, hubID, projectID)
	return f.TopFolders[projectID], f.Err
}

func (f *FakeDataManagement) ListFolderContents(_ context.Context, creds auth.Credentials, projectID, folderID string) ([]dm.Content, error) {
	f.record("folder_contents", creds, projectID, folderID)
	return f.Contents[folderID], f.Err
}

func (f *FakeDataManagement) ListItemVersions(_ context.Context, creds auth.Credentials, projectID, itemID string) ([]dm.Version, error) {
	f.record("item_versions", creds, projectID, itemID)
	return f.Versions[itemID], f.Err
}
