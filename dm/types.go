package dm

// The data management API speaks JSON:API; only the fields the tree needs
// are decoded.

type envelope[T any] struct {
	Data []T `json:"data"`
}

type Link struct {
	Href string `json:"href"`
}

type Links struct {
	Self Link `json:"self"`
}

type ResourceRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type Relationship struct {
	Data *ResourceRef `json:"data"`
}

type Extension struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

type Hub struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes struct {
		Name      string    `json:"name"`
		Region    string    `json:"region"`
		Extension Extension `json:"extension"`
	} `json:"attributes"`
	Links Links `json:"links"`
}

type Project struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes struct {
		Name      string    `json:"name"`
		Extension Extension `json:"extension"`
	} `json:"attributes"`
	Links Links `json:"links"`
}

// Folder is a project's top level folder.
type Folder struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	} `json:"attributes"`
	Links Links `json:"links"`
}

// Content is either a folder or an item inside a folder.
type Content struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes struct {
		Name        string    `json:"name"`
		DisplayName string    `json:"displayName"`
		Extension   Extension `json:"extension"`
	} `json:"attributes"`
	Links Links `json:"links"`
}

type Version struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes struct {
		Name                 string `json:"name"`
		DisplayName          string `json:"displayName"`
		VersionNumber        int    `json:"versionNumber"`
		LastModifiedTime     string `json:"lastModifiedTime"`
		LastModifiedUserName string `json:"lastModifiedUserName"`
	} `json:"attributes"`
	Relationships struct {
		Derivatives *Relationship `json:"derivatives"`
	} `json:"relationships"`
	Links Links `json:"links"`
}

// DerivativeURN returns the viewable translation id, or "" when the version
// was never translated.
func (v Version) DerivativeURN() string {
	d := v.Relationships.Derivatives
	if d == nil || d.Data == nil {
		return ""
	}
	return d.Data.ID
}
