package dict

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
		ok   bool
	}{
		{
			name: "basic entry",
			line: "你好 你好 [ni3 hao3] /hello/hi/",
			want: Entry{
				Traditional: "你好",
				Simplified:  "你好",
				Pinyin:      "ni3 hao3",
				Senses:      []string{"hello", "hi"},
			},
			ok: true,
		},
		{
			name: "differing scripts",
			line: "書 书 [shu1] /book/letter/",
			want: Entry{
				Traditional: "書",
				Simplified:  "书",
				Pinyin:      "shu1",
				Senses:      []string{"book", "letter"},
			},
			ok: true,
		},
		{
			name: "jyutping group",
			line: "你好 你好 [ni3 hao3] {nei5 hou2} /hello/",
			want: Entry{
				Traditional: "你好",
				Simplified:  "你好",
				Pinyin:      "ni3 hao3",
				Jyutping:    "nei5 hou2",
				Senses:      []string{"hello"},
			},
			ok: true,
		},
		{
			name: "classifier sense",
			line: "書 书 [shu1] /book/CL:本[ben3],冊|册[ce4]/",
			want: Entry{
				Traditional: "書",
				Simplified:  "书",
				Pinyin:      "shu1",
				Senses:      []string{"book"},
				Classifiers: []string{"本[ben3]", "冊|册[ce4]"},
			},
			ok: true,
		},
		{
			name: "u-umlaut spelling",
			line: "綠 绿 [lu:4] /green/",
			want: Entry{
				Traditional: "綠",
				Simplified:  "绿",
				Pinyin:      "lv4",
				Senses:      []string{"green"},
			},
			ok: true,
		},
		{
			name: "missing brackets",
			line: "你好 你好 /hello/",
			ok:   false,
		},
		{
			name: "missing senses",
			line: "你好 你好 [ni3 hao3]",
			ok:   false,
		},
		{
			name: "one headword",
			line: "你好 [ni3 hao3] /hello/",
			ok:   false,
		},
		{
			name: "unterminated jyutping",
			line: "你好 你好 [ni3 hao3] {nei5 hou2 /hello/",
			ok:   false,
		},
		{
			name: "empty line",
			line: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Traditional != tt.want.Traditional {
				t.Errorf("Traditional = %q, want %q", got.Traditional, tt.want.Traditional)
			}
			if got.Simplified != tt.want.Simplified {
				t.Errorf("Simplified = %q, want %q", got.Simplified, tt.want.Simplified)
			}
			if got.Pinyin != tt.want.Pinyin {
				t.Errorf("Pinyin = %q, want %q", got.Pinyin, tt.want.Pinyin)
			}
			if got.Jyutping != tt.want.Jyutping {
				t.Errorf("Jyutping = %q, want %q", got.Jyutping, tt.want.Jyutping)
			}
			if strings.Join(got.Senses, "/") != strings.Join(tt.want.Senses, "/") {
				t.Errorf("Senses = %v, want %v", got.Senses, tt.want.Senses)
			}
			if strings.Join(got.Classifiers, ",") != strings.Join(tt.want.Classifiers, ",") {
				t.Errorf("Classifiers = %v, want %v", got.Classifiers, tt.want.Classifiers)
			}
		})
	}
}

func TestParse(t *testing.T) {
	input := `# CC-CEDICT
# Some header comment
你好 你好 [ni3 hao3] /hello/hi/

書 书 [shu1] /book/CL:本[ben3]/
garbage line without structure
好 好 [hao3] /good/`

	entries, stats, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if stats.CommentLines != 2 {
		t.Errorf("Expected 2 comment lines, got %d", stats.CommentLines)
	}
	if stats.MalformedLines != 1 {
		t.Errorf("Expected 1 malformed line, got %d", stats.MalformedLines)
	}
	if stats.Entries != 3 {
		t.Errorf("Expected Entries stat 3, got %d", stats.Entries)
	}

	if entries[0].Simplified != "你好" {
		t.Errorf("First entry simplified = %q, want 你好", entries[0].Simplified)
	}
	if entries[1].Classifiers[0] != "本[ben3]" {
		t.Errorf("Second entry classifier = %q, want 本[ben3]", entries[1].Classifiers[0])
	}
}

func TestEntryEnglish(t *testing.T) {
	e := Entry{Senses: []string{"hello", "hi"}}
	if got := e.English(); got != "hello; hi" {
		t.Errorf("English() = %q, want %q", got, "hello; hi")
	}

	empty := Entry{}
	if got := empty.English(); got != "" {
		t.Errorf("English() on empty entry = %q, want empty", got)
	}
}

func TestMeaningText(t *testing.T) {
	entries := []Entry{
		{Senses: []string{"hello", "hi"}},
		{Senses: []string{"hey"}},
	}
	want := "hello; hi<br>hey"
	if got := MeaningText(entries); got != want {
		t.Errorf("MeaningText = %q, want %q", got, want)
	}

	if got := MeaningText(nil); got != "" {
		t.Errorf("MeaningText(nil) = %q, want empty", got)
	}
}

func TestEntryTaiwanPinyin(t *testing.T) {
	tests := []struct {
		name   string
		senses []string
		want   string
	}{
		{
			name:   "taiwan pronunciation note",
			senses: []string{"France", "French", "Taiwan pr. [Fa4 guo2]"},
			want:   "Fa4 guo2",
		},
		{
			name:   "note embedded in a sense",
			senses: []string{"garbage (Taiwan pr. [le4 se4])"},
			want:   "le4 se4",
		},
		{
			name:   "umlaut normalised",
			senses: []string{"Taiwan pr. [nu:3 er2]"},
			want:   "nv3 er2",
		},
		{
			name:   "no note",
			senses: []string{"hello"},
			want:   "",
		},
		{
			name:   "unterminated note ignored",
			senses: []string{"Taiwan pr. [fa4"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Senses: tt.senses}
			if got := e.TaiwanPinyin(); got != tt.want {
				t.Errorf("TaiwanPinyin() = %q, want %q", got, tt.want)
			}
		})
	}
}
