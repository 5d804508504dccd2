package service

import (
	"regexp"
	"testing"
)

func TestNewStudentCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^STU-\d+-[A-HJ-NP-Z2-9]{5}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := NewStudentCode()
		if !pattern.MatchString(code) {
			t.Fatalf("NewStudentCode() = %q, does not match %s", code, pattern)
		}
		seen[code] = true
	}

	// Random suffixes should not collide across a small sample
	if len(seen) < 95 {
		t.Errorf("only %d distinct codes out of 100", len(seen))
	}
}
