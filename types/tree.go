package types

// TreeNode is a single row rendered by the dashboard's data-management tree.
// ID is fed back as the identifier of the next expansion; it is nil only for
// versions without a viewable derivative.
type TreeNode struct {
	ID       *string `json:"id"`
	Text     string  `json:"text"`
	Type     string  `json:"type,omitempty"`
	Children bool    `json:"children"`
}

// Node types understood by the tree's icon set.
const (
	NodeHubs           = "hubs"
	NodePersonalHub    = "personalHub"
	NodeBIM360Hubs     = "bim360Hubs"
	NodeProjects       = "projects"
	NodeA360Projects   = "a360projects"
	NodeBIM360Projects = "bim360projects"
	NodeVersions       = "versions"
	NodeUnsupported    = "unsupported"
)
