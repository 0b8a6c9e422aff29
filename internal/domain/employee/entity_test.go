package employee

import "testing"

func TestFormatCode(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "EMP0001"},
		{42, "EMP0042"},
		{9999, "EMP9999"},
		{10000, "EMP10000"},
	}
	for _, c := range cases {
		if got := FormatCode(c.n); got != c.want {
			t.Errorf("FormatCode(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
