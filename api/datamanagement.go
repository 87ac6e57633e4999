package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/api/types"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/auth"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/resolver"
	treeTypes "github.com/thakopian/DASHBOARD-BIM360-FORGE/types"
)

// TreeResolver expands one node of the data management tree.
type TreeResolver interface {
	Resolve(ctx context.Context, raw string, creds auth.Credentials) ([]treeTypes.TreeNode, error)
}

func writeError(w http.ResponseWriter, status int, err error) {
	v := types.ErrorResponse{
		Error: err.Error(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write error response")
	}
}

// errorStatus maps resolution failures onto the status codes the tree expects.
// An empty identifier is a 500 because that is what the tree widget has
// always received for it.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, resolver.ErrUnclassifiedResource):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrNoCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// DataManagementHandler serves GET ?id=<node id> for the tree widget.
func DataManagementHandler(res TreeResolver, source auth.Source) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		raw := req.URL.Query().Get("id")
		href, err := url.PathUnescape(raw)
		if err != nil || href == "" {
			writeError(w, http.StatusInternalServerError, resolver.ErrInvalidIdentifier)
			return
		}

		creds, err := source.Credentials(req)
		if err != nil {
			writeError(w, errorStatus(err), err)
			return
		}

		ctx := resolver.WithLocale(req.Context(), req.Header.Get("Accept-Language"))
		nodes, err := res.Resolve(ctx, href, creds)
		if err != nil {
			log.Warn().Err(err).Str("id", href).Msg("failed to expand tree node")
			writeError(w, errorStatus(err), err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(nodes)
		if err != nil {
			log.Error().Err(err).Msg("failed to write tree nodes")
		}
	}
}
