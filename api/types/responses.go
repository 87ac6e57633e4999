package types

type ErrorResponse struct {
	Error string `json:"error"`
}

type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

type IndexResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
