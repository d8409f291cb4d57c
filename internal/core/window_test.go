package core

import (
	"testing"
	"time"
)

func TestWindowRange(t *testing.T) {
	now := time.Date(2025, 3, 15, 13, 45, 0, 0, time.UTC)

	cases := []struct {
		w        Window
		from, to string
	}{
		{Daily, "2025-03-15", "2025-03-15"},
		{Weekly, "2025-03-08", "2025-03-15"},
		{Monthly, "2025-03-01", "2025-03-31"},
	}
	for _, tc := range cases {
		from, to := tc.w.Range(now)
		if from.ISO() != tc.from || to.ISO() != tc.to {
			t.Fatalf("%s: got [%s, %s], want [%s, %s]",
				tc.w, from.ISO(), to.ISO(), tc.from, tc.to)
		}
	}
}

func TestWindowRangeCrossesMonth(t *testing.T) {
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	from, to := Weekly.Range(now)
	if from.ISO() != "2025-02-24" || to.ISO() != "2025-03-03" {
		t.Fatalf("got [%s, %s]", from.ISO(), to.ISO())
	}
}

func TestWindowIsValid(t *testing.T) {
	for _, w := range []Window{Daily, Weekly, Monthly} {
		if !w.IsValid() {
			t.Fatalf("%s should be valid", w)
		}
	}
	if Window("yearly").IsValid() {
		t.Fatal("yearly should be invalid")
	}
}
