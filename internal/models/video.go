package models

import "fmt"

const (
	// NotAvailable stands in for views and likes when the statistics lookup returns nothing.
	NotAvailable = "N/A"

	DefaultMaxResults = 50

	watchURLTemplate = "https://www.youtube.com/watch?v=%s"
)

type SearchQuery struct {
	Keyword    string `json:"keyword"`
	MaxResults int    `json:"maxResults"`
}

// NewSearchQuery applies the default result-set size when maxResults is not positive.
func NewSearchQuery(keyword string, maxResults int) SearchQuery {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return SearchQuery{Keyword: keyword, MaxResults: maxResults}
}

type VideoRecord struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Views string `json:"views"`
	Likes string `json:"likes"`
}

// String renders the record the way it is embedded in generation prompts.
func (v VideoRecord) String() string {
	return fmt.Sprintf("Title: %s, URL: %s, Views: %s, Likes: %s", v.Title, v.URL, v.Views, v.Likes)
}

type PlanRequest struct {
	Theme      string        `json:"theme"`
	ClientName string        `json:"clientName"`
	Videos     []VideoRecord `json:"videos"`
}

type StoryboardImage struct {
	RowText  string `json:"rowText"`
	ImageURL string `json:"imageUrl"`
}

// PlanOptions are the selector labels shown next to a generated plan. They are
// placeholders and are not parsed out of the plan text.
var PlanOptions = []string{"構成案1", "構成案2", "構成案3"}

// IsPlanOption reports whether label is one of PlanOptions.
func IsPlanOption(label string) bool {
	for _, opt := range PlanOptions {
		if opt == label {
			return true
		}
	}
	return false
}

// WatchURL builds the public watch URL for a video id.
func WatchURL(videoID string) string {
	return fmt.Sprintf(watchURLTemplate, videoID)
}
