package rangegate

import "testing"

func header(ts string) string {
	return "E" + ts + "0000R "
}

func TestGate_BothBoundsAbsent(t *testing.T) {
	g := Gate{}
	if !g.Admit(header("20230410051008")) {
		t.Fatal("expected admit with no bounds configured")
	}
}

func TestGate_UnparseableHeaderPasses(t *testing.T) {
	g := Gate{Start: "20230412", End: "20230413"}
	if !g.Admit("not a header at all") {
		t.Fatal("expected a malformed header to pass the gate")
	}
}

// TestGate_RangeFilter mirrors spec.md scenario 5: bounds 20230412/20230413
// admit only 2023-04-12 headers.
func TestGate_RangeFilter(t *testing.T) {
	g := Gate{Start: "20230412", End: "20230413"}

	cases := map[string]bool{
		"20230410000000": false,
		"20230412000000": true,
		"20230412235959": true,
		"20230413000000": false,
		"20230414000000": false,
	}
	for ts, want := range cases {
		if got := g.Admit(header(ts)); got != want {
			t.Errorf("Admit(%s) = %v, want %v", ts, got, want)
		}
	}
}

func TestGate_EndOnly(t *testing.T) {
	g := Gate{End: "20230411"}
	if !g.Admit(header("20230410235959")) {
		t.Fatal("expected admit strictly before end bound")
	}
	if g.Admit(header("20230411000000")) {
		t.Fatal("expected reject at end bound (half-open)")
	}
}

func TestGate_NonNumericStartTreatedAsAbsent(t *testing.T) {
	g := Gate{Start: "abcd", End: "20230413"}
	if !g.Admit(header("20230401000000")) {
		t.Fatal("expected non-numeric start to be treated as absent")
	}
}
