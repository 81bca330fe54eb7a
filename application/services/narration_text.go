package services

import (
	"regexp"
	"strings"
)

var (
	emphasisRegexp = regexp.MustCompile(`(\*\*|\*|__|_)`)
	headingRegexp  = regexp.MustCompile(`(?m)^#+\s*`)
	artifactRegexp = regexp.MustCompile("[`>~]")
)

// cleanForNarration strips markdown artifacts the rewrite model tends to
// emit so they are not read aloud by the TTS service.
func cleanForNarration(text string) string {
	text = emphasisRegexp.ReplaceAllString(text, "")
	text = headingRegexp.ReplaceAllString(text, "")
	text = artifactRegexp.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
