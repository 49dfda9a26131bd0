package icondeck

import (
	"fmt"
	"strings"
)

// DefaultBranch is assumed when a Repo does not name one.
const DefaultBranch = "main"

// DefaultFolder is scanned when a Repo does not list any folders.
const DefaultFolder = "icons"

// Repo identifies the remote repository that hosts the icon files.
type Repo struct {
	Owner  string `json:"owner"`
	Name   string `json:"name"`
	Branch string `json:"branch,omitempty"`

	// Folders are the repository-relative directories scanned for icons.
	// Each folder becomes an icon category.
	Folders []string `json:"folders,omitempty"`

	// BaseURL optionally overrides the derived raw content host, for icon
	// sets served by a plain file server instead of a hosting provider.
	BaseURL string `json:"baseUrl,omitempty"`
}

// Validate returns ENOTCONFIGURED when the repository identity is unset.
// A BaseURL alone is sufficient: self-hosted icon sets have no owner/name.
func (r *Repo) Validate() error {
	if r.BaseURL != "" {
		return nil
	}
	if r.Owner == "" || r.Name == "" {
		return Errorf(ENOTCONFIGURED, "repository owner and name required")
	}
	return nil
}

// BranchName returns the configured branch or DefaultBranch.
func (r *Repo) BranchName() string {
	if r.Branch == "" {
		return DefaultBranch
	}
	return r.Branch
}

// FolderList returns the configured folders or a single DefaultFolder.
func (r *Repo) FolderList() []string {
	if len(r.Folders) == 0 {
		return []string{DefaultFolder}
	}
	return r.Folders
}

// RawURL returns the raw content URL for a repository-relative path.
func (r *Repo) RawURL(path string) string {
	path = strings.TrimPrefix(path, "/")
	if r.BaseURL != "" {
		return strings.TrimSuffix(r.BaseURL, "/") + "/" + path
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s",
		r.Owner, r.Name, r.BranchName(), path)
}

// ListingURL returns the URL whose directory-listing HTML covers a folder.
// Self-hosted sets list folders under BaseURL; hosted sets fall back to the
// project pages site.
func (r *Repo) ListingURL(folder string) string {
	folder = strings.Trim(folder, "/")
	if r.BaseURL != "" {
		return strings.TrimSuffix(r.BaseURL, "/") + "/" + folder + "/"
	}
	return fmt.Sprintf("https://%s.github.io/%s/%s/", r.Owner, r.Name, folder)
}
