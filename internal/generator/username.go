// Package generator produces usernames locally, without the AI service.
// It is the deterministic fallback when Gemini is unavailable.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var adjectives = []string{
	"Quick", "Smart", "Wise", "Bold", "Calm", "Cool", "Bright",
}

var nouns = []string{
	"Wolf", "Star", "Bird", "Fish", "Cat", "Bear", "Fox",
}

// Username generates a username in the adjective+noun+number template, e.g.
// "QuickWolf42". The result always fits the 3-12 character username rules.
func Username() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	num, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%s%d", adjective, noun, num.Int64()), nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}
	return slice[num.Int64()], nil
}
