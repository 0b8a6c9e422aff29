package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical ranges", date(2025, 3, 10), date(2025, 3, 12), date(2025, 3, 10), date(2025, 3, 12), true},
		{"partial overlap", date(2025, 3, 10), date(2025, 3, 12), date(2025, 3, 12), date(2025, 3, 15), true},
		{"contained range", date(2025, 3, 10), date(2025, 3, 20), date(2025, 3, 12), date(2025, 3, 14), true},
		{"adjacent days", date(2025, 3, 10), date(2025, 3, 11), date(2025, 3, 12), date(2025, 3, 13), false},
		{"disjoint", date(2025, 3, 1), date(2025, 3, 5), date(2025, 3, 20), date(2025, 3, 25), false},
	}
	for _, c := range cases {
		if got := Overlaps(c.s1, c.e1, c.s2, c.e2); got != c.want {
			t.Errorf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
		// Overlap is symmetric.
		if got := Overlaps(c.s2, c.e2, c.s1, c.e1); got != c.want {
			t.Errorf("%s (swapped): Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTotalDays(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		halfDay    bool
		want       float64
	}{
		{"single day", date(2025, 3, 10), date(2025, 3, 10), false, 1},
		{"three days inclusive", date(2025, 3, 10), date(2025, 3, 12), false, 3},
		{"half day", date(2025, 3, 10), date(2025, 3, 10), true, 0.5},
		{"half day ignores range", date(2025, 3, 10), date(2025, 3, 14), true, 0.5},
	}
	for _, c := range cases {
		if got := TotalDays(c.start, c.end, c.halfDay); got != c.want {
			t.Errorf("%s: TotalDays = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
		StatusApproved: {StatusCancelled},
	}

	for _, from := range []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled} {
		for _, to := range []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled} {
			want := false
			for _, target := range allowed[from] {
				if target == to {
					want = true
				}
			}
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}
