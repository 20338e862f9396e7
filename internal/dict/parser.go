package dict

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize is the scanner buffer limit. CC-CEDICT lines are short, but a
// corrupt download should fail loudly rather than truncate silently.
const maxLineSize = 1 << 20

// Stats summarises a parse run.
type Stats struct {
	TotalLines     int
	CommentLines   int
	MalformedLines int
	Entries        int
}

// ParseFile reads a CC-CEDICT file (plain or gzip, decided by filename)
// and returns all entries.
func ParseFile(path string) ([]Entry, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open dictionary source: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return Parse(r)
}

// Parse streams CC-CEDICT lines from r. Malformed lines are counted and
// skipped; only I/O errors are fatal.
func Parse(r io.Reader) ([]Entry, Stats, error) {
	var (
		entries []Entry
		stats   Stats
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		stats.TotalLines++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			stats.CommentLines++
			continue
		}

		entry, ok := ParseLine(line)
		if !ok {
			stats.MalformedLines++
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read dictionary source: %w", err)
	}

	stats.Entries = len(entries)
	return entries, stats, nil
}

// ParseLine parses a single dictionary line:
//
//	Traditional Simplified [pin1 yin1] /sense/sense/
//
// with the CC-Canto extension of an optional {jyut6 ping3} group before the
// senses. Returns ok=false for anything that does not match.
func ParseLine(line string) (Entry, bool) {
	// Headwords: two space-separated tokens before the pinyin bracket.
	bracket := strings.Index(line, "[")
	if bracket < 0 {
		return Entry{}, false
	}
	head := strings.Fields(strings.TrimSpace(line[:bracket]))
	if len(head) != 2 {
		return Entry{}, false
	}

	rest := line[bracket:]
	closeBracket := strings.Index(rest, "]")
	if closeBracket < 0 {
		return Entry{}, false
	}
	pinyin := normalizePinyin(rest[1:closeBracket])
	rest = strings.TrimSpace(rest[closeBracket+1:])

	jyutping := ""
	if strings.HasPrefix(rest, "{") {
		closeBrace := strings.Index(rest, "}")
		if closeBrace < 0 {
			return Entry{}, false
		}
		jyutping = strings.TrimSpace(rest[1:closeBrace])
		rest = strings.TrimSpace(rest[closeBrace+1:])
	}

	if !strings.HasPrefix(rest, "/") || !strings.HasSuffix(rest, "/") || len(rest) < 2 {
		return Entry{}, false
	}

	var senses, classifiers []string
	for _, sense := range strings.Split(strings.Trim(rest, "/"), "/") {
		sense = strings.TrimSpace(sense)
		if sense == "" {
			continue
		}
		if cl, ok := strings.CutPrefix(sense, "CL:"); ok {
			for _, c := range strings.Split(cl, ",") {
				if c = strings.TrimSpace(c); c != "" {
					classifiers = append(classifiers, c)
				}
			}
			continue
		}
		senses = append(senses, sense)
	}
	if len(senses) == 0 && len(classifiers) == 0 {
		return Entry{}, false
	}

	return Entry{
		Traditional: head[0],
		Simplified:  head[1],
		Pinyin:      pinyin,
		Jyutping:    jyutping,
		Senses:      senses,
		Classifiers: classifiers,
	}, true
}

// normalizePinyin lowercases the CEDICT "u:" spelling to "v" so syllables
// have a single canonical numbered form ("lu:4" → "lv4"). Tone numbers and
// capitalisation of proper nouns are kept.
func normalizePinyin(s string) string {
	s = strings.ReplaceAll(s, "u:", "v")
	s = strings.ReplaceAll(s, "U:", "V")
	return strings.Join(strings.Fields(s), " ")
}
