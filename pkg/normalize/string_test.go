package normalize

import "testing"

func TestString_StripsPunctuation(t *testing.T) {
	input := `This [isn't] a \$tring th*t i've (liked) until_now} `
	want := `This isnt a tring tht ive liked until_now `

	got := String(input, false)
	if got != want {
		t.Fatalf("String(%q, false) = %q, want %q", input, got, want)
	}
}

func TestString_FoldSpaces(t *testing.T) {
	input := `This [isn't] a \$tring th*t i've (liked) until_now} `
	want := "this_isnt_a_tring_tht_ive_liked_until_now"

	got := String(input, true)
	if got != want {
		t.Fatalf("String(%q, true) = %q, want %q", input, got, want)
	}
}

func TestString_Idempotent(t *testing.T) {
	inputs := []string{
		`Disch[arge] It*em`,
		`RIV Branch (Main)`,
		"",
		"already_clean",
	}

	for _, fold := range []bool{false, true} {
		for _, in := range inputs {
			once := String(in, fold)
			twice := String(once, fold)
			if once != twice {
				t.Errorf("String not idempotent for %q (fold=%v): once=%q twice=%q", in, fold, once, twice)
			}
		}
	}
}
