package resolver

import (
	"fmt"
	"strings"

	"github.com/thakopian/DASHBOARD-BIM360-FORGE/types"
)

// ParseIdentifier classifies a tree node id. Anything but the root sentinel is
// read from its tail: .../{resourceName}/{resourceId}, with the segment before
// resourceName naming the parent hub or project where one is needed.
func ParseIdentifier(raw string) (types.Identifier, error) {
	if raw == "" {
		return types.Identifier{}, fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}
	if raw == types.RootID {
		return types.Identifier{Raw: raw, Kind: types.KindRoot}, nil
	}

	params := strings.Split(raw, "/")
	if len(params) < 2 {
		return types.Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}

	id := types.Identifier{
		Raw:        raw,
		ResourceID: params[len(params)-1],
	}
	if id.ResourceID == "" {
		return types.Identifier{}, fmt.Errorf("%w: %q has no resource id", ErrInvalidIdentifier, raw)
	}

	resourceName := params[len(params)-2]
	switch resourceName {
	case "hubs":
		id.Kind = types.KindHub
		return id, nil
	case "projects":
		id.Kind = types.KindProject
	case "folders":
		id.Kind = types.KindFolder
	case "items":
		id.Kind = types.KindItem
	default:
		return types.Identifier{}, fmt.Errorf("%w: %q", ErrUnclassifiedResource, resourceName)
	}

	if len(params) < 3 || params[len(params)-3] == "" {
		return types.Identifier{}, fmt.Errorf("%w: %q has no parent id", ErrInvalidIdentifier, raw)
	}
	id.ParentID = params[len(params)-3]

	return id, nil
}
