package domain

import (
	"errors"
	"testing"
)

func TestParseNewsItem(t *testing.T) {
	item := ParseNewsItem("Council approves budget. The vote passed 5-2 on Tuesday.")
	if item.Title != "Council approves budget" {
		t.Errorf("unexpected title: %q", item.Title)
	}
	if item.Description != "The vote passed 5-2 on Tuesday." {
		t.Errorf("unexpected description: %q", item.Description)
	}
}

func TestParseNewsItem_NoDescription(t *testing.T) {
	item := ParseNewsItem("Council approves budget")
	if item.Title != "Council approves budget" {
		t.Errorf("unexpected title: %q", item.Title)
	}
	if item.Description != "" {
		t.Errorf("expected empty description, got %q", item.Description)
	}
}

func TestNewsItem_StringStartsWithTitle(t *testing.T) {
	item := NewsItem{Title: "Road closed", Description: "Repairs until Friday."}
	if got := item.String(); got != "Road closed. Repairs until Friday." {
		t.Errorf("unexpected string form: %q", got)
	}

	empty := NewsItem{Title: "Road closed"}
	if got := empty.String(); got != "Road closed. " {
		t.Errorf("unexpected string form without description: %q", got)
	}
}

func TestLocation_Query(t *testing.T) {
	withState := Location{City: "State College", State: "PA"}
	if got := withState.Query(); got != "State College PA" {
		t.Errorf("unexpected query: %q", got)
	}

	cityOnly := Location{City: "State College"}
	if got := cityOnly.Query(); got != "State College" {
		t.Errorf("unexpected query: %q", got)
	}
}

func TestCandidateSet_Select(t *testing.T) {
	set := CandidateSet{
		Items: []NewsItem{
			{Title: "first"},
			{Title: "second"},
			{Title: "third"},
		},
	}

	selected, err := set.Select([]int{0, 2})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(selected) != 2 || selected[0].Title != "first" || selected[1].Title != "third" {
		t.Errorf("unexpected selection: %+v", selected)
	}
}

func TestCandidateSet_SelectRejectsOutOfRange(t *testing.T) {
	set := CandidateSet{Items: []NewsItem{{Title: "only"}}}

	for _, indices := range [][]int{{1}, {-1}, {0, 3}} {
		_, err := set.Select(indices)
		var invalid *InvalidSelectionError
		if !errors.As(err, &invalid) {
			t.Errorf("indices %v: expected InvalidSelectionError, got %v", indices, err)
		}
	}
}

func TestCandidateSet_SelectRejectsEmpty(t *testing.T) {
	set := CandidateSet{Items: []NewsItem{{Title: "only"}}}

	_, err := set.Select(nil)
	var invalid *InvalidSelectionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSelectionError, got %v", err)
	}
}
