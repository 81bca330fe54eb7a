package services

import "testing"

func TestCleanForNarration(t *testing.T) {
	input := "# Heading\n\nThis is **bold** and *italic* and _underlined_.\n> quoted `code` ~strike~"
	got := cleanForNarration(input)
	want := "Heading\n\nThis is bold and italic and underlined.\n quoted code strike"

	if got != want {
		t.Fatalf("Unexpected cleaned text:\ngot:  %q\nwant: %q", got, want)
	}
}
