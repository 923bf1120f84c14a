// Package hashtag extracts #tag tokens from free-form card content.
package hashtag

// A token is '#' followed by a maximal run of word runes. WordRune decides
// membership and is a variable so callers can widen coverage for additional
// scripts without touching the scanner.
var WordRune = func(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	case r >= 0x4E00 && r <= 0x9FAF: // CJK unified ideographs
		return true
	}
	return false
}

// Extract returns tag names in order of occurrence. Duplicates are kept as
// found; the tag synchronizer dedupes via set membership.
func Extract(content string) []string {
	var tags []string
	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '#' {
			continue
		}
		j := i + 1
		for j < len(runes) && WordRune(runes[j]) {
			j++
		}
		if j > i+1 {
			tags = append(tags, string(runes[i+1:j]))
		}
		i = j - 1
	}
	return tags
}
