package cache

import "testing"

func TestHashIP(t *testing.T) {
	t.Parallel()

	h1 := hashIP("203.0.113.10")
	h2 := hashIP("203.0.113.10")
	h3 := hashIP("203.0.113.11")

	if h1 != h2 {
		t.Error("same IP should hash identically")
	}
	if h1 == h3 {
		t.Error("different IPs should hash differently")
	}
	if len(h1) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(h1))
	}
}
