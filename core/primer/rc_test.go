// core/primer/rc_test.go
package primer

import "testing"

func TestRevComp(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"A", "T"},
		{"AACC", "GGTT"},
		{"ACGT", "ACGT"},
		{"GATTACA", "TGTAATC"},
		{"RYSWKM", "KMWSRY"},
		{"BDHVN", "NBDHV"},
		{"ACXGT", "ACNGT"}, // unrecognized symbols complement to N
	}
	for _, tc := range tests {
		if got := RevCompString(tc.in); got != tc.want {
			t.Errorf("RevCompString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRevCompRoundTrip(t *testing.T) {
	in := "ACGTRYSWKMBDHVN"
	if got := RevCompString(RevCompString(in)); got != in {
		t.Errorf("double RevComp of %q = %q", in, got)
	}
}
