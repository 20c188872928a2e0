package srv3

import "strings"

const (
	zeroWidthSpace = "​"

	// YTSubConverter wraps significant leading/trailing whitespace in
	// zero-width spaces so YouTube does not trim it. The whole three
	// character idiom has to go as a unit or the protected space would leak
	// into the output.
	paddingSpace = zeroWidthSpace + " " + zeroWidthSpace
)

// CleanSegmentText strips the invisible padding markers YTSubConverter
// inserts into segment text: every zero-width space goes, and the
// marker-space-marker padding sequence is removed whole. Cleaning already
// clean text changes nothing.
func CleanSegmentText(text string) string {
	i := strings.Index(text, zeroWidthSpace)
	if i < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i >= 0 {
		b.WriteString(text[:i])
		if strings.HasPrefix(text[i:], paddingSpace) {
			text = text[i+len(paddingSpace):]
		} else {
			text = text[i+len(zeroWidthSpace):]
		}
		i = strings.Index(text, zeroWidthSpace)
	}
	b.WriteString(text)
	return b.String()
}
