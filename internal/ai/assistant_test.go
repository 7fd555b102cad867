package ai

import (
	"errors"
	"testing"
)

func TestSortMatchesIsStableAndDescending(t *testing.T) {
	matches := []AIMatch{
		{ID: 1, MatchScore: 70},
		{ID: 2, MatchScore: 95},
		{ID: 3, MatchScore: 70},
		{ID: 4, MatchScore: 88},
	}

	SortMatches(matches)

	want := []int{2, 4, 1, 3}
	for i, id := range want {
		if matches[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, matches[i].ID)
		}
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("connection reset")

	var err error = &ExternalServiceError{Provider: "gemini", Attempts: 2, Err: cause}
	if !errors.Is(err, ErrExternalService) {
		t.Fatalf("expected ErrExternalService")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if errors.Is(err, ErrResponseParse) {
		t.Fatalf("external error must not match parse error")
	}
	if got := err.Error(); got != "gemini request failed after 2 attempts: connection reset" {
		t.Fatalf("unexpected message: %q", got)
	}

	err = &ResponseParseError{Stage: "matcher", Reason: "missing career_matches"}
	if !errors.Is(err, ErrResponseParse) {
		t.Fatalf("expected ErrResponseParse")
	}
	if got := err.Error(); got != "matcher response: missing career_matches" {
		t.Fatalf("unexpected message: %q", got)
	}
}
