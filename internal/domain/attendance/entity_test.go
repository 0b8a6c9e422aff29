package attendance

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	ts := time.Date(2025, 3, 14, 18, 45, 12, 500, loc)
	day := DayOf(ts)

	want := time.Date(2025, 3, 14, 0, 0, 0, 0, loc)
	if !day.Equal(want) {
		t.Errorf("DayOf = %v, want %v", day, want)
	}
	if day.Location() != loc {
		t.Errorf("DayOf location = %v, want %v", day.Location(), loc)
	}

	// One minute before midnight still belongs to the same day.
	lateTS := time.Date(2025, 3, 14, 23, 59, 0, 0, loc)
	if !DayOf(lateTS).Equal(want) {
		t.Errorf("DayOf(23:59) = %v, want %v", DayOf(lateTS), want)
	}
}

func TestComputeWorkHours(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		checkOut     time.Time
		wantTotal    float64
		wantOvertime float64
	}{
		{"standard day", base.Add(8 * time.Hour), 8, 0},
		{"nine and a half hours", base.Add(9*time.Hour + 30*time.Minute), 9.5, 1.5},
		{"short day", base.Add(4 * time.Hour), 4, 0},
		{"rounds to two decimals", base.Add(8*time.Hour + 10*time.Minute), 8.17, 0.17},
	}
	for _, c := range cases {
		total, overtime := ComputeWorkHours(base, c.checkOut)
		if total != c.wantTotal || overtime != c.wantOvertime {
			t.Errorf("%s: ComputeWorkHours = (%v, %v), want (%v, %v)",
				c.name, total, overtime, c.wantTotal, c.wantOvertime)
		}
	}
}

func TestComputeWorkHours_Deterministic(t *testing.T) {
	in := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	out := in.Add(9*time.Hour + 17*time.Minute)

	t1, o1 := ComputeWorkHours(in, out)
	t2, o2 := ComputeWorkHours(in, out)
	if t1 != t2 || o1 != o2 {
		t.Errorf("recompute diverged: (%v, %v) vs (%v, %v)", t1, o1, t2, o2)
	}
}
