package dict

import "strings"

// Entry is one dictionary record: a headword in both scripts with its
// readings and senses.
type Entry struct {
	Traditional string
	Simplified  string
	Pinyin      string   // numbered syllables, space separated ("zhong1 guo2")
	Jyutping    string   // numbered syllables, "" when the source has none
	Senses      []string // glosses without the classifier senses
	Classifiers []string // "個|个[ge4]" style classifier markers
}

// English formats the senses for a Meaning field.
func (e Entry) English() string {
	return strings.Join(e.Senses, "; ")
}

// ClassifierText formats the classifier markers for a Classifier field.
func (e Entry) ClassifierText() string {
	return strings.Join(e.Classifiers, ", ")
}

// HeadwordFor returns the headword in the requested script.
func (e Entry) HeadwordFor(simplified bool) string {
	if simplified {
		return e.Simplified
	}
	return e.Traditional
}

// TaiwanPinyin returns the Taiwan-specific reading when the senses carry a
// "Taiwan pr. [...]" note, or "" when the mainland reading applies everywhere.
func (e Entry) TaiwanPinyin() string {
	for _, sense := range e.Senses {
		idx := strings.Index(sense, "Taiwan pr. [")
		if idx < 0 {
			continue
		}
		rest := sense[idx+len("Taiwan pr. ["):]
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			continue
		}
		return normalizePinyin(rest[:end])
	}
	return ""
}

// MeaningText returns a compact Meaning built from all entries for a term:
// entries are separated by line breaks, senses within an entry by "; ".
func MeaningText(entries []Entry) string {
	var parts []string
	for _, e := range entries {
		if s := e.English(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "<br>")
}
