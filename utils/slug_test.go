package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Arabica Beans", "arabica-beans"},
		{"trims space", "  Cold Brew  ", "cold-brew"},
		{"punctuation", "Mom's Choice! (2024)", "mom-s-choice-2024"},
		{"collapses separators", "a -- b", "a-b"},
		{"digits", "V60 Dripper 02", "v60-dripper-02"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
