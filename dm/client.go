package dm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/auth"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/config"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/monitoring"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultBaseURL = "https://developer.api.autodesk.com"

// Client lists the hub hierarchy of the data management API.
type Client interface {
	ListHubs(ctx context.Context, creds auth.Credentials) ([]Hub, error)
	ListHubProjects(ctx context.Context, creds auth.Credentials, hubID string) ([]Project, error)
	ListProjectTopFolders(ctx context.Context, creds auth.Credentials, hubID, projectID string) ([]Folder, error)
	ListFolderContents(ctx context.Context, creds auth.Credentials, projectID, folderID string) ([]Content, error)
	ListItemVersions(ctx context.Context, creds auth.Credentials, projectID, itemID string) ([]Version, error)
}

var _ Client = (*HTTPClient)(nil)

// StatusError is returned for any non-2xx upstream response.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: upstream returned %d: %s", e.Operation, e.StatusCode, e.Body)
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) ListHubs(ctx context.Context, creds auth.Credentials) ([]Hub, error) {
	var res envelope[Hub]
	err := c.get(ctx, creds, "hubs", &res, "project", "v1", "hubs")
	return res.Data, err
}

func (c *HTTPClient) ListHubProjects(ctx context.Context, creds auth.Credentials, hubID string) ([]Project, error) {
	var res envelope[Project]
	err := c.get(ctx, creds, "projects", &res, "project", "v1", "hubs", hubID, "projects")
	return res.Data, err
}

func (c *HTTPClient) ListProjectTopFolders(ctx context.Context, creds auth.Credentials, hubID, projectID string) ([]Folder, error) {
	var res envelope[Folder]
	err := c.get(ctx, creds, "top_folders", &res, "project", "v1", "hubs", hubID, "projects", projectID, "topFolders")
	return res.Data, err
}

func (c *HTTPClient) ListFolderContents(ctx context.Context, creds auth.Credentials, projectID, folderID string) ([]Content, error) {
	var res envelope[Content]
	err := c.get(ctx, creds, "folder_contents", &res, "data", "v1", "projects", projectID, "folders", folderID, "contents")
	return res.Data, err
}

func (c *HTTPClient) ListItemVersions(ctx context.Context, creds auth.Credentials, projectID, itemID string) ([]Version, error) {
	var res envelope[Version]
	err := c.get(ctx, creds, "item_versions", &res, "data", "v1", "projects", projectID, "items", itemID, "versions")
	return res.Data, err
}

// get issues a single GET; segments are path-escaped individually.
func (c *HTTPClient) get(ctx context.Context, creds auth.Credentials, op string, out any, segments ...string) error {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	endpoint := c.baseURL + "/" + strings.Join(escaped, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	req.Header.Set("Accept", "application/vnd.api+json")
	req.Header.Set("User-Agent", config.UserAgent())
	if creds.ClientID != "" {
		req.Header.Set("x-ads-client-id", creds.ClientID)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		monitoring.ObserveUpstream(op, 0, time.Since(start))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()
	monitoring.ObserveUpstream(op, res.StatusCode, time.Since(start))

	log.Debug().
		Str("operation", op).
		Str("url", endpoint).
		Int("status", res.StatusCode).
		Dur("took", time.Since(start)).
		Msg("data management call")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &StatusError{
			Operation:  op,
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}
