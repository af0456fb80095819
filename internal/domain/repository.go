// Package domain contains the core data structures and domain errors for the application.
package domain

import "errors"

var (
	// ErrFetch reports a non-2xx response or malformed payload from the GitHub API.
	ErrFetch = errors.New("fetch error")
	// ErrRender reports a failure to decode, encode, measure or draw an image.
	ErrRender = errors.New("render error")
	// ErrIO reports a missing asset or a failed write.
	ErrIO = errors.New("io error")
	// ErrConfig reports missing or invalid configuration.
	ErrConfig = errors.New("config error")
	// ErrNoRepositories is returned when there is nothing to put on a card.
	ErrNoRepositories = errors.New("no public repositories found")
)

// Repository is a public repository as shown on a readme card.
// It is the core domain entity of this application.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	License     string `json:"license"`
	OpenIssues  int    `json:"open_issues"`
	UpdatedAt   string `json:"updated_at"`
}

// Gist is a public gist with a description.
type Gist struct {
	Description string   `json:"description"`
	Comments    int      `json:"comments"`
	UpdatedAt   string   `json:"updated_at"`
	Languages   []string `json:"language"`
}
