package domain

import (
	"strings"
	"time"
)

// Template is a remote layout that accepts named field substitutions.
type Template struct {
	Name string `json:"name"` // e.g. "Stories 9:16"
	UID  string `json:"uid"`  // Bannerbear template UID
}

// Slug returns the filesystem-friendly form of the template name:
// lower-cased, spaces as underscores and ratio colons as "x".
func (t Template) Slug() string {
	s := strings.ToLower(t.Name)
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, ":", "x")
}

// Named is a single ordered key/value entry, used for asset URLs and copy text.
type Named struct {
	Name  string
	Value string
}

// Modification is one field substitution applied to a template instance.
// Exactly one of Text or ImageURL is set.
type Modification struct {
	Name     string `json:"name"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// JobResult holds the outcome of a single template render.
// A failed job carries neither a file path nor a URL.
type JobResult struct {
	Template  Template  `json:"template"`
	FilePath  string    `json:"file_path,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Success   bool      `json:"success"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
}

// BatchResult holds the outcome of a full campaign run.
type BatchResult struct {
	RunID       string      `json:"run_id"`
	Campaign    string      `json:"campaign"`
	Results     []JobResult `json:"results"`
	ReportPath  string      `json:"report_path,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt time.Time   `json:"completed_at"`
}

// Succeeded returns the results that produced an image, in template order.
func (b *BatchResult) Succeeded() []JobResult {
	var out []JobResult
	for _, r := range b.Results {
		if r.Success {
			out = append(out, r)
		}
	}
	return out
}
