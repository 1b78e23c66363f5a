// Package fetch - platform.go recognizes document hosts and rewrites share links to downloads.
package fetch

import (
	"net/url"
	"regexp"
	"strings"
)

// Host represents a known document hosting platform.
type Host string

const (
	// HostGoogleDocs is a Google Docs document
	HostGoogleDocs Host = "google_docs"
	// HostGoogleDrive is a file stored on Google Drive
	HostGoogleDrive Host = "google_drive"
	// HostDropbox is a Dropbox share link
	HostDropbox Host = "dropbox"
	// HostGitHub is a file viewed on github.com
	HostGitHub Host = "github"
	// HostUnknown is any other site
	HostUnknown Host = "unknown"
)

var (
	googleDocIDRe   = regexp.MustCompile(`^/document/d/([^/]+)`)
	googleDriveIDRe = regexp.MustCompile(`^/file/d/([^/]+)`)
	githubBlobRe    = regexp.MustCompile(`^/([^/]+)/([^/]+)/blob/(.+)$`)
)

// DetectHost identifies the hosting platform from a URL.
func DetectHost(urlStr string) Host {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return HostUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case host == "docs.google.com" && strings.HasPrefix(parsed.Path, "/document/"):
		return HostGoogleDocs
	case host == "drive.google.com":
		return HostGoogleDrive
	case host == "dropbox.com" || strings.HasSuffix(host, ".dropbox.com"):
		return HostDropbox
	case host == "github.com":
		return HostGitHub
	default:
		return HostUnknown
	}
}

// ResolveDownloadURL rewrites share and viewer links into URLs that return the raw document.
// Unknown URLs are returned unchanged.
func ResolveDownloadURL(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}

	switch DetectHost(urlStr) {
	case HostGoogleDocs:
		if m := googleDocIDRe.FindStringSubmatch(parsed.Path); m != nil {
			return "https://docs.google.com/document/d/" + m[1] + "/export?format=docx"
		}
	case HostGoogleDrive:
		if m := googleDriveIDRe.FindStringSubmatch(parsed.Path); m != nil {
			return "https://drive.google.com/uc?export=download&id=" + m[1]
		}
	case HostDropbox:
		q := parsed.Query()
		q.Set("dl", "1")
		parsed.RawQuery = q.Encode()
		return parsed.String()
	case HostGitHub:
		if m := githubBlobRe.FindStringSubmatch(parsed.Path); m != nil {
			return "https://raw.githubusercontent.com/" + m[1] + "/" + m[2] + "/" + m[3]
		}
	}
	return urlStr
}
