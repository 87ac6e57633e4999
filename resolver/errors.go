package resolver

import (
	"errors"
	"fmt"

	"github.com/thakopian/DASHBOARD-BIM360-FORGE/types"
)

var (
	ErrInvalidIdentifier    = errors.New("invalid resource identifier")
	ErrUnclassifiedResource = errors.New("unclassified resource")
	ErrMalformedVersionID   = errors.New("malformed version identifier")
)

// UpstreamError wraps a failed data management call.
type UpstreamError struct {
	Kind types.ResourceKind
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to expand %s: %s", e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
