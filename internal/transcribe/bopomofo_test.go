package transcribe

import "testing"

func TestBopomofoSyllable(t *testing.T) {
	tests := []struct {
		name     string
		syllable string
		want     string
		ok       bool
	}{
		{"tone one unmarked", "zhong1", "ㄓㄨㄥ", true},
		{"tone two", "guo2", "ㄍㄨㄛˊ", true},
		{"tone three", "hao3", "ㄏㄠˇ", true},
		{"tone four", "si4", "ㄙˋ", true},
		{"neutral prefix", "ma5", "˙ㄇㄚ", true},
		{"whole syllable zhi", "zhi1", "ㄓ", true},
		{"whole syllable ri", "ri4", "ㄖˋ", true},
		{"y form", "yi1", "ㄧ", true},
		{"w form", "wo3", "ㄨㄛˇ", true},
		{"yu form", "yuan2", "ㄩㄢˊ", true},
		{"u after j is umlaut", "jun1", "ㄐㄩㄣ", true},
		{"u after x is umlaut", "xue2", "ㄒㄩㄝˊ", true},
		{"explicit umlaut", "lv4", "ㄌㄩˋ", true},
		{"iu final", "xiu4", "ㄒㄧㄡˋ", true},
		{"er final", "er4", "ㄦˋ", true},
		{"bare final", "ai4", "ㄞˋ", true},
		{"capitalised", "Zhong1", "ㄓㄨㄥ", true},
		{"not pinyin", "hello", "hello", false},
		{"bare initial", "zh1", "zh1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BopomofoSyllable(tt.syllable)
			if ok != tt.ok {
				t.Fatalf("BopomofoSyllable(%q) ok = %v, want %v", tt.syllable, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("BopomofoSyllable(%q) = %q, want %q", tt.syllable, got, tt.want)
			}
		})
	}
}

func TestBopomofo(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zhong1 guo2", "ㄓㄨㄥ ㄍㄨㄛˊ"},
		{"ni3 hao3", "ㄋㄧˇ ㄏㄠˇ"},
		{"xie4 xie5", "ㄒㄧㄝˋ ˙ㄒㄧㄝ"},
		{"hello shi4", "hello ㄕˋ"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Bopomofo(tt.in); got != tt.want {
			t.Errorf("Bopomofo(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
