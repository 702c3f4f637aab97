package normalize

import "testing"

func TestDate_RecognisedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short month/day", "4/11/2024", "2024-04-11"},
		{"zero-padded month/day", "04/11/2024", "2024-04-11"},
		{"slash date with time discarded", "04/11/2024,1:30 PM", "2024-04-11"},
		{"compact timestamp", "20231010051008", "2023-10-10 05:10:08"},
		{"header style", "E202310100510083031R ", "2023-10-10 05:10:08"},
		{"empty", "", ""},
		{"unrecognised", "not-a-date", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.input); got != tt.want {
				t.Errorf("Date(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate_Idempotent(t *testing.T) {
	inputs := []string{"4/11/2024", "20231010051008", "E202310100510083031R "}
	for _, in := range inputs {
		once := Date(in)
		twice := Date(once)
		if once != twice {
			t.Errorf("Date not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
