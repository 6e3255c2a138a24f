package text

import "testing"

func TestRemoveSubstring(t *testing.T) {
	tests := []struct {
		s      string
		needle string
		want   string
	}{
		{"Lorem ipsum dolor sic amet.", "dolor", "Lorem ipsum  sic amet."},
		{"03. Artist - Song", "03.", "Artist - Song"},
		{"Song (2024)", "(2024)", "Song"},
		{"Song", "absent", "Song"},
		{"  padded  ", "", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got := RemoveSubstring(tt.s, tt.needle)
			if got != tt.want {
				t.Errorf("RemoveSubstring(%q, %q) = %q, want %q", tt.s, tt.needle, got, tt.want)
			}
		})
	}
}

func TestTrimBrackets(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(official video)", "official video"},
		{"[hard remix]", "hard remix"},
		{"{instrumental}", "instrumental"},
		{"<remix>", "remix"},
		{"【MV】", "MV"},
		{" (2024) ", "2024"},
		{"(2024", "2024"},
		{"2024)", "2024"},
		{"no brackets", "no brackets"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := TrimBrackets(tt.input)
			if got != tt.want {
				t.Errorf("TrimBrackets(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemoveEmptyBracketPairs(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Song ()", "Song "},
		{"Song () []", "Song  "},
		{"(<>)", ""},
		{"[{}]", ""},
		{"([()])", ""},
		{"Song (feat)", "Song (feat)"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := RemoveEmptyBracketPairs(tt.input)
			if got != tt.want {
				t.Errorf("RemoveEmptyBracketPairs(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a  b", "a b"},
		{"a    b   c", "a b c"},
		{"a b", "a b"},
		{"    ", " "},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := CollapseWhitespace(tt.input)
			if got != tt.want {
				t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Both fixpoint transforms must be no-ops on their own output.
func TestFixpointIdempotence(t *testing.T) {
	inputs := []string{
		"Song ([{<>}])  extra   spaces",
		"((()))",
		"a  b   c    d",
		"plain",
		"",
	}

	for _, input := range inputs {
		once := RemoveEmptyBracketPairs(input)
		if twice := RemoveEmptyBracketPairs(once); twice != once {
			t.Errorf("RemoveEmptyBracketPairs not idempotent on %q: %q != %q", input, twice, once)
		}

		once = CollapseWhitespace(input)
		if twice := CollapseWhitespace(once); twice != once {
			t.Errorf("CollapseWhitespace not idempotent on %q: %q != %q", input, twice, once)
		}
	}
}
