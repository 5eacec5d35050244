package reports

import "testing"

func TestClampScore(t *testing.T) {
	cases := []struct {
		raw  float64
		want int
	}{
		{82, 82},
		{137.8, 100},
		{-5, 0},
		{0, 0},
		{100, 100},
		{49.5, 50},
		{49.4, 49},
	}
	for _, tc := range cases {
		if got := clampScore(tc.raw); got != tc.want {
			t.Errorf("clampScore(%v) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestTruncateKeepsOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}
	got := truncate(items, 5)
	if len(got) != 5 {
		t.Fatalf("len = %d", len(got))
	}
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if got[i] != want {
			t.Fatalf("got[%d] = %q, want %q", i, got[i], want)
		}
	}
}

func TestTruncateShortListUnchanged(t *testing.T) {
	items := []string{"a", "b"}
	if got := truncate(items, 5); len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
}
