package testutil

import "github.com/thakopian/DASHBOARD-BIM360-FORGE/dm"

// Builders for upstream records used across package tests.

func Hub(href, name, extension string) dm.Hub {
	var h dm.Hub
	h.Type = "hubs"
	h.Attributes.Name = name
	h.Attributes.Extension.Type = extension
	h.Links.Self.Href = href
	return h
}

func Project(href, name, extension string) dm.Project {
	var p dm.Project
	p.Type = "projects"
	p.Attributes.Name = name
	p.Attributes.Extension.Type = extension
	p.Links.Self.Href = href
	return p
}

func Folder(href, name, displayName string) dm.Folder {
	var f dm.Folder
	f.Type = "folders"
	f.Attributes.Name = name
	f.Attributes.DisplayName = displayName
	f.Links.Self.Href = href
	return f
}

func Content(kind, href, name, displayName string) dm.Content {
	var c dm.Content
	c.Type = kind
	c.Attributes.Name = name
	c.Attributes.DisplayName = displayName
	c.Links.Self.Href = href
	return c
}

// Version builds a version record; an empty urn leaves the derivatives
// relationship out.
func Version(id, modified, author, urn string) dm.Version {
	var v dm.Version
	v.Type = "versions"
	v.ID = id
	v.Attributes.LastModifiedTime = modified
	v.Attributes.LastModifiedUserName = author
	if urn != "" {
		v.Relationships.Derivatives = &dm.Relationship{
			Data: &dm.ResourceRef{Type: "derivatives", ID: urn},
		}
	}
	return v
}
