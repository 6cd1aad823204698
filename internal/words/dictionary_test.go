package words

import "testing"

func TestDictionaryLookup(t *testing.T) {
	d := NewDictionary()

	tests := []struct {
		name  string
		word  string
		valid bool
	}{
		{name: "known word uppercase", word: "ABOUT", valid: true},
		{name: "known word lowercase", word: "about", valid: true},
		{name: "known word mixed case", word: "AbOuT", valid: true},
		{name: "surrounding whitespace", word: " ABOUT ", valid: true},
		{name: "unknown word", word: "ZZZZZ", valid: false},
		{name: "empty", word: "", valid: false},
		{name: "wrong length", word: "CAT", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsValidWord(tt.word); got != tt.valid {
				t.Errorf("IsValidWord(%q) = %v, want %v", tt.word, got, tt.valid)
			}
		})
	}
}

func TestNewDictionaryFromFiltersEntries(t *testing.T) {
	d := NewDictionaryFrom([]string{"plant", "CAT", "plants", "CREST", "crest", ""})

	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	if !d.IsValidWord("PLANT") || !d.IsValidWord("CREST") {
		t.Error("expected PLANT and CREST to be valid")
	}
	if d.IsValidWord("CAT") || d.IsValidWord("PLANTS") {
		t.Error("entries with wrong length should have been dropped")
	}
}

func TestDefaultDictionarySize(t *testing.T) {
	d := NewDictionary()
	if d.Len() < 500 {
		t.Errorf("Len() = %d, want at least 500 words", d.Len())
	}
}
