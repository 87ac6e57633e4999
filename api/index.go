package api

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/api/types"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/config"
)

func IndexHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		v := types.IndexResponse{
			Status:  "online",
			Version: config.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(v)
		if err != nil {
			log.Error().Err(err).Msg("failed to write index")
		}
	}
}

func VersionHandler() func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		v := types.VersionResponse{
			Version: config.Version(),
			Commit:  config.Commit(),
		}

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(v)
		if err != nil {
			log.Error().Err(err).Msg("failed to write version")
		}
	}
}
