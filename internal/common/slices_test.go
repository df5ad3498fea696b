package common

import "testing"

func TestContains(t *testing.T) {
	codes := []string{"unmatched_entry", "unused_candidate"}

	if !Contains(codes, "unused_candidate") {
		t.Errorf("Contains(%v, unused_candidate) = false, want true", codes)
	}

	if Contains(codes, "empty_name") {
		t.Errorf("Contains(%v, empty_name) = true, want false", codes)
	}

	if Contains([]int(nil), 0) {
		t.Error("Contains(nil, 0) = true, want false")
	}
}
