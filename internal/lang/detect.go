// Package lang classifies text spans as English or Arabic.
//
// Detection is a character-class frequency heuristic, not a linguistic
// classifier: it counts runes in the Arabic Unicode block against ASCII
// letters. Mixed or transliterated input can be misclassified. The result
// is ephemeral and recomputed per message, never stored.
package lang

// Language is the detected response/input language of a text span.
type Language int

const (
	English Language = iota
	Arabic
)

// String returns the lowercase language name.
func (l Language) String() string {
	if l == Arabic {
		return "arabic"
	}
	return "english"
}

// Arabic Unicode block boundaries (U+0600..U+06FF).
const (
	arabicLo rune = 0x0600
	arabicHi rune = 0x06FF
)

// Detect classifies text as Arabic or English by counting Arabic-block
// runes against ASCII letters (case-insensitive). Arabic wins only when
// its count strictly exceeds the Latin count; ties and empty input yield
// English.
func Detect(text string) Language {
	var arabicCount, latinCount int
	for _, r := range text {
		switch {
		case r >= arabicLo && r <= arabicHi:
			arabicCount++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latinCount++
		}
	}
	if arabicCount > latinCount {
		return Arabic
	}
	return English
}
