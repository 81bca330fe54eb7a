package adapters

import "testing"

func TestParseBullets(t *testing.T) {
	output := "- Point one\n* Point two\n• Point three\n\n  - Indented point\n"

	bullets := parseBullets(output)

	want := []string{"Point one", "Point two", "Point three", "Indented point"}
	if len(bullets) != len(want) {
		t.Fatalf("Expected %d bullets, got %d: %v", len(want), len(bullets), bullets)
	}
	for i := range want {
		if bullets[i] != want[i] {
			t.Fatalf("Bullet %d: got %q, want %q", i, bullets[i], want[i])
		}
	}
}

func TestParseBullets_Empty(t *testing.T) {
	if bullets := parseBullets("\n   \n"); len(bullets) != 0 {
		t.Fatalf("Expected no bullets, got %v", bullets)
	}
}
