package match

import (
	"testing"
)

func TestSuggest(t *testing.T) {
	pool := NewPool(candidates("Paul Martin", "Marie Dupond", "Mari Dupont", ""))

	list := Suggest(NewKey(0, "Marie Dupont"), pool)

	if len(list) != 3 {
		t.Fatalf("Expected 3 suggestions (blank name skipped), got %d", len(list))
	}

	// "dupond marie" and "dupont mari" are both one edit away; row order breaks the tie.
	if list[0].Candidate.RawName != "Marie Dupond" {
		t.Errorf("Expected best suggestion 'Marie Dupond', got '%s'", list[0].Candidate.RawName)
	}
	if list[1].Candidate.RawName != "Mari Dupont" {
		t.Errorf("Expected second suggestion 'Mari Dupont', got '%s'", list[1].Candidate.RawName)
	}
	if list[2].Candidate.RawName != "Paul Martin" {
		t.Errorf("Expected last suggestion 'Paul Martin', got '%s'", list[2].Candidate.RawName)
	}

	if pool.Len() != 4 {
		t.Errorf("Suggest must not consume candidates, pool length = %d", pool.Len())
	}
}

func TestSuggest_EmptyName(t *testing.T) {
	pool := NewPool(candidates("Marie Dupont"))

	if list := Suggest(NewKey(0, ""), pool); list != nil {
		t.Errorf("Expected no suggestions for a blank name, got %v", list)
	}
}

func TestSuggestionList_Top(t *testing.T) {
	list := SuggestionList{
		{Candidate: Candidate{RawName: "A"}, Similarity: 0.9},
		{Candidate: Candidate{RawName: "B"}, Similarity: 0.8},
		{Candidate: Candidate{RawName: "C"}, Similarity: 0.7},
	}

	if top2 := list.Top(2); len(top2) != 2 {
		t.Errorf("Expected 2 suggestions, got %d", len(top2))
	}

	// Request more than available
	if top10 := list.Top(10); len(top10) != 3 {
		t.Errorf("Expected 3 suggestions (all), got %d", len(top10))
	}

	if top0 := list.Top(0); len(top0) != 0 {
		t.Errorf("Expected no suggestions, got %d", len(top0))
	}

	names := list.Top(2).Names()
	if !stringSliceEqual(names, []string{"A", "B"}) {
		t.Errorf("Names() = %v", names)
	}
}

func TestSuggestionList_Best(t *testing.T) {
	var empty SuggestionList
	if empty.Best() != nil {
		t.Error("Expected nil best for empty list")
	}

	list := SuggestionList{{Candidate: Candidate{RawName: "A"}, Similarity: 0.4}}
	if best := list.Best(); best == nil || best.Candidate.RawName != "A" {
		t.Errorf("Best() = %v", best)
	}
}

func TestSuggestionList_AboveThreshold(t *testing.T) {
	list := SuggestionList{
		{Similarity: 0.9},
		{Similarity: 0.7},
		{Similarity: 0.5},
		{Similarity: 0.3},
	}

	if above := list.AboveThreshold(0.6); len(above) != 2 {
		t.Errorf("Expected 2 suggestions above 0.6, got %d", len(above))
	}
}
