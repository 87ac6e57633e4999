package resolver

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/dm"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/monitoring"
	"github.com/thakopian/DASHBOARD-BIM360-FORGE/types"
)

var versionPattern = regexp.MustCompile(`^(.*)\?version=(\d+)$`)

func newTreeNode(id *string, text string, nodeType string, children bool) types.TreeNode {
	return types.TreeNode{
		ID:       id,
		Text:     text,
		Type:     nodeType,
		Children: children,
	}
}

func strPtr(s string) *string {
	return &s
}

// hubType leaves unknown hub kinds untyped so the tree falls back to its
// default icon.
func hubType(extension string) string {
	switch extension {
	case "hubs:autodesk.core:Hub":
		return types.NodeHubs
	case "hubs:autodesk.a360:PersonalHub":
		return types.NodePersonalHub
	case "hubs:autodesk.bim360:Account":
		return types.NodeBIM360Hubs
	default:
		return ""
	}
}

func projectType(extension string) string {
	switch extension {
	case "projects:autodesk.core:Project":
		return types.NodeA360Projects
	case "projects:autodesk.bim360:Project":
		return types.NodeBIM360Projects
	default:
		return types.NodeProjects
	}
}

func shapeHubs(hubs []dm.Hub) []types.TreeNode {
	nodes := make([]types.TreeNode, 0, len(hubs))
	for _, hub := range hubs {
		nodes = append(nodes, newTreeNode(strPtr(hub.Links.Self.Href), hub.Attributes.Name, hubType(hub.Attributes.Extension.Type), true))
	}
	return nodes
}

func shapeProjects(projects []dm.Project) []types.TreeNode {
	nodes := make([]types.TreeNode, 0, len(projects))
	for _, project := range projects {
		nodes = append(nodes, newTreeNode(strPtr(project.Links.Self.Href), project.Attributes.Name, projectType(project.Attributes.Extension.Type), true))
	}
	return nodes
}

func shapeTopFolders(folders []dm.Folder) []types.TreeNode {
	nodes := make([]types.TreeNode, 0, len(folders))
	for _, folder := range folders {
		text := folder.Attributes.DisplayName
		if text == "" {
			text = folder.Attributes.Name
		}
		nodes = append(nodes, newTreeNode(strPtr(folder.Links.Self.Href), text, folder.Type, true))
	}
	return nodes
}

// shapeFolderContents drops records without any name. BIM 360 creates those
// for entries that have no storage, so there is nothing the viewer could load.
func shapeFolderContents(contents []dm.Content) []types.TreeNode {
	nodes := make([]types.TreeNode, 0, len(contents))
	for _, item := range contents {
		text := item.Attributes.Name
		if text == "" {
			text = item.Attributes.DisplayName
		}
		if text == "" {
			monitoring.CountDropped("unnamed")
			log.Debug().Str("id", item.ID).Msg("skipping folder entry without a name")
			continue
		}
		nodes = append(nodes, newTreeNode(strPtr(item.Links.Self.Href), text, item.Type, true))
	}
	return nodes
}

// versionOrdinal extracts N from "<itemId>?version=N".
func versionOrdinal(id string) (string, error) {
	m := versionPattern.FindStringSubmatch(id)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedVersionID, id)
	}
	return m[2], nil
}

func versionLabel(ordinal string, modified string, author string, times *TimeFormatter, locale string) string {
	when := modified
	if t, err := time.Parse(time.RFC3339, modified); err == nil {
		when = times.Format(t, locale)
	}

	label := fmt.Sprintf("v%s: %s by %s", ordinal, when, author)
	if decoded, err := url.PathUnescape(label); err == nil {
		return decoded
	}
	return label
}

// shapeVersions lists every version of an item. Versions without a derivative
// stay in the list but carry no id, since the viewer has nothing to open.
func shapeVersions(versions []dm.Version, times *TimeFormatter, locale string) []types.TreeNode {
	nodes := make([]types.TreeNode, 0, len(versions))
	for _, version := range versions {
		ordinal, err := versionOrdinal(version.ID)
		if err != nil {
			monitoring.CountDropped("malformed_version")
			log.Warn().Err(err).Msg("skipping version")
			continue
		}

		text := versionLabel(ordinal, version.Attributes.LastModifiedTime, version.Attributes.LastModifiedUserName, times, locale)

		urn := version.DerivativeURN()
		if urn == "" {
			nodes = append(nodes, newTreeNode(nil, text, types.NodeUnsupported, false))
			continue
		}
		nodes = append(nodes, newTreeNode(strPtr(urn), text, types.NodeVersions, false))
	}
	return nodes
}
