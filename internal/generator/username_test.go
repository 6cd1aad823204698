package generator

import (
	"regexp"
	"testing"
)

var usernamePattern = regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+\d{1,2}$`)

func TestUsername(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		username, err := Username()
		if err != nil {
			t.Fatalf("Username() error = %v", err)
		}
		if !usernamePattern.MatchString(username) {
			t.Errorf("Username() = %q, does not match adjective+noun+number shape", username)
		}
		if len(username) < 3 || len(username) > 12 {
			t.Errorf("Username() = %q, length %d outside 3-12", username, len(username))
		}
		seen[username] = true
	}
	// Not a strict guarantee, but 50 draws from the pool collapsing to a
	// single value would mean the randomness is broken.
	if len(seen) < 2 {
		t.Errorf("50 generated usernames produced %d distinct values", len(seen))
	}
}
