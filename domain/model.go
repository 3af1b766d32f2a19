package domain

import (
	"strings"
	"time"
)

type NewsItem struct {
	Title       string
	Description string
}

// ParseNewsItem splits a combined "Title. Description" string on the first
// ". " occurrence. The description may be empty.
func ParseNewsItem(raw string) NewsItem {
	title, description, _ := strings.Cut(raw, ". ")
	return NewsItem{
		Title:       title,
		Description: description,
	}
}

func (n NewsItem) String() string {
	return n.Title + ". " + n.Description
}

type Location struct {
	City  string
	State string
}

// Query is the search string sent to the news upstream.
func (l Location) Query() string {
	if l.State == "" {
		return l.City
	}
	return l.City + " " + l.State
}

// Label names the location in the summary prompt and the output filename.
func (l Location) Label() string {
	return l.Query()
}

// CandidateSet is the list of headlines shown to a user for selection,
// stored server-side under Token until the selection is submitted or the
// set expires.
type CandidateSet struct {
	Token     string
	Location  Location
	Items     []NewsItem
	CreatedAt time.Time
}

// Select filters the candidate items by index, preserving input order.
// Out-of-range indices are rejected, never silently dropped.
func (c CandidateSet) Select(indices []int) ([]NewsItem, error) {
	if len(indices) == 0 {
		return nil, &InvalidSelectionError{Reason: "select at least one story"}
	}

	selected := make([]NewsItem, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(c.Items) {
			return nil, &InvalidSelectionError{Reason: "selected story does not exist"}
		}
		selected = append(selected, c.Items[idx])
	}

	return selected, nil
}
