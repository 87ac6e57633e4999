package types

// ResourceKind names the level of the hub hierarchy an identifier points at.
type ResourceKind int

const (
	KindUnknown ResourceKind = iota
	KindRoot
	KindHub
	KindProject
	KindFolder
	KindItem
)

// RootID is the identifier the tree sends when expanding its root.
const RootID = "#"

func (k ResourceKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindHub:
		return "hubs"
	case KindProject:
		return "projects"
	case KindFolder:
		return "folders"
	case KindItem:
		return "items"
	default:
		return "unknown"
	}
}

// Identifier is a parsed tree node id. ParentID holds the hub id for projects
// and the project id for folders and items.
type Identifier struct {
	Raw        string
	Kind       ResourceKind
	ResourceID string
	ParentID   string
}
