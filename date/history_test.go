package date

import "testing"

func days(strs ...string) []Date {
	out := make([]Date, 0, len(strs))
	for _, s := range strs {
		out = append(out, MustParse(s))
	}
	return out
}

func TestHistoryAppendKeepsOrder(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("2020-01-03"), 3)
	h.Append(MustParse("2020-01-01"), 1)
	h.Append(MustParse("2020-01-02"), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	for i, want := range []float64{1, 2, 3} {
		if got[i] != want {
			t.Fatalf("values[%d] = %v, want %v", i, got[i], want)
		}
	}

	// Appending on an existing day overwrites.
	h.Append(MustParse("2020-01-02"), 20)
	if v, _ := h.Get(MustParse("2020-01-02")); v != 20 {
		t.Errorf("Get after overwrite = %v, want 20", v)
	}
	if h.Len() != 3 {
		t.Errorf("Len = %d, want 3", h.Len())
	}
}

func TestValueAsOf(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("2020-01-02"), 2)
	h.Append(MustParse("2020-01-05"), 5)

	testCases := []struct {
		name  string
		on    string
		want  float64
		found bool
	}{
		{"Exact day", "2020-01-02", 2, true},
		{"Gap forward fills", "2020-01-04", 2, true},
		{"After the end", "2020-02-01", 5, true},
		{"Before the start", "2020-01-01", 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, found := h.ValueAsOf(MustParse(tc.on))
			if got != tc.want || found != tc.found {
				t.Errorf("ValueAsOf(%s) = %v, %v want %v, %v", tc.on, got, found, tc.want, tc.found)
			}
		})
	}
}

func TestReindex(t *testing.T) {
	h := &History[float64]{}
	h.Append(MustParse("2020-01-02"), 2)
	h.Append(MustParse("2020-01-05"), 5)

	calendar := func(yield func(Date) bool) {
		for _, on := range days("2020-01-01", "2020-01-02", "2020-01-03", "2020-01-05", "2020-01-07") {
			if !yield(on) {
				return
			}
		}
	}

	t.Run("Zero leading gap", func(t *testing.T) {
		out := h.Reindex(calendar, false)
		want := []float64{0, 2, 2, 5, 5}
		i := 0
		for on, v := range out.Values() {
			if v != want[i] {
				t.Errorf("reindexed[%s] = %v, want %v", on, v, want[i])
			}
			i++
		}
		if i != len(want) {
			t.Errorf("reindexed length = %d, want %d", i, len(want))
		}
	})

	t.Run("Backfill leading gap", func(t *testing.T) {
		out := h.Reindex(calendar, true)
		if v, _ := out.Get(MustParse("2020-01-01")); v != 2 {
			t.Errorf("backfilled leading value = %v, want 2", v)
		}
	})

	t.Run("Empty history yields zeros", func(t *testing.T) {
		empty := &History[float64]{}
		out := empty.Reindex(calendar, true)
		if out.Len() != 5 {
			t.Fatalf("Len = %d, want 5", out.Len())
		}
		for on, v := range out.Values() {
			if v != 0 {
				t.Errorf("reindexed[%s] = %v, want 0", on, v)
			}
		}
	})
}
