package prompt

import (
	"slices"
	"testing"
)

func TestPickIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a, err := New(42, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(42, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		x, y := a.Pick(), b.Pick()
		if x != y {
			t.Fatalf("pick %d: %q != %q", i, x, y)
		}
		if !slices.Contains(Encouragements, x) {
			t.Fatalf("pick %d: %q not in Encouragements", i, x)
		}
	}
}

func TestPickCoversLines(t *testing.T) {
	t.Parallel()

	lines := []string{"a", "b", "c"}
	p, err := New(7, lines)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[p.Pick()] = true
	}
	for _, l := range lines {
		if !seen[l] {
			t.Errorf("line %q never picked in 300 draws", l)
		}
	}
}

func TestZeroSeedUsesCryptoSeed(t *testing.T) {
	t.Parallel()

	p, err := New(0, []string{"only"})
	if err != nil {
		t.Fatalf("New(0): %v", err)
	}
	if got := p.Pick(); got != "only" {
		t.Errorf("Pick = %q, want only", got)
	}
}
