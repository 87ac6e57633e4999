package resolver

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/auth"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/dm"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/monitoring"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/types"
)

// Resolver expands one level of the hub hierarchy per call. It holds no
// per-request state and is safe for concurrent use.
type Resolver struct {
	client dm.Client
	times  *TimeFormatter
}

func NewResolver(client dm.Client, times *TimeFormatter) *Resolver {
	if times == nil {
		times = NewTimeFormatter(nil, "")
	}
	return &Resolver{
		client: client,
		times:  times,
	}
}

// Resolve returns the children of the node named by raw. Identifier errors are
// reported before any upstream call is made.
func (r *Resolver) Resolve(ctx context.Context, raw string, creds auth.Credentials) ([]types.TreeNode, error) {
	id, err := ParseIdentifier(raw)
	if err != nil {
		outcome := "invalid"
		if errors.Is(err, ErrUnclassifiedResource) {
			outcome = "unclassified"
		}
		monitoring.ObserveResolution(types.KindUnknown.String(), outcome)
		return nil, err
	}

	nodes, err := r.expand(ctx, id, creds)
	if err != nil {
		monitoring.ObserveResolution(id.Kind.String(), "upstream_error")
		return nil, err
	}

	monitoring.ObserveResolution(id.Kind.String(), "ok")
	log.Debug().
		Str("kind", id.Kind.String()).
		Str("resource_id", id.ResourceID).
		Int("nodes", len(nodes)).
		Msg("expanded tree node")

	return nodes, nil
}

func (r *Resolver) expand(ctx context.Context, id types.Identifier, creds auth.Credentials) ([]types.TreeNode, error) {
	switch id.Kind {
	case types.KindRoot:
		hubs, err := r.client.ListHubs(ctx, creds)
		if err != nil {
			return nil, &UpstreamError{Kind: id.Kind, Err: err}
		}
		return shapeHubs(hubs), nil
	case types.KindHub:
		projects, err := r.client.ListHubProjects(ctx, creds, id.ResourceID)
		if err != nil {
			return nil, &UpstreamError{Kind: id.Kind, Err: err}
		}
		return shapeProjects(projects), nil
	case types.KindProject:
		folders, err := r.client.ListProjectTopFolders(ctx, creds, id.ParentID, id.ResourceID)
		if err != nil {
			return nil, &UpstreamError{Kind: id.Kind, Err: err}
		}
		return shapeTopFolders(folders), nil
	case types.KindFolder:
		contents, err := r.client.ListFolderContents(ctx, creds, id.ParentID, id.ResourceID)
		if err != nil {
			return nil, &UpstreamError{Kind: id.Kind, Err: err}
		}
		return shapeFolderContents(contents), nil
	case types.KindItem:
		versions, err := r.client.ListItemVersions(ctx, creds, id.ParentID, id.ResourceID)
		if err != nil {
			return nil, &UpstreamError{Kind: id.Kind, Err: err}
		}
		return shapeVersions(versions, r.times, localeFrom(ctx)), nil
	default:
		return nil, ErrUnclassifiedResource
	}
}
