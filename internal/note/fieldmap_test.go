package note

import "testing"

func TestResolve(t *testing.T) {
	m := NewFieldMap()

	tests := []struct {
		field    string
		wantRole Role
		wantOK   bool
	}{
		{"Hanzi", RoleHanzi, true},
		{"hanzi", RoleHanzi, true},
		{"CHINESE", RoleHanzi, true},
		{"汉字", RoleHanzi, true},
		{"Meaning", RoleMeaning, true},
		{"English", RoleMeaning, true},
		{"Pinyin", RolePinyin, true},
		{"Reading", RolePinyin, true},
		{"Bopomofo", RoleBopomofo, true},
		{"Zhuyin", RoleBopomofo, true},
		{"Jyutping", RoleJyutping, true},
		{"Sound", RoleSound, true},
		{"Audio", RoleSound, true},
		{"Simplified", RoleSimplified, true},
		{"Traditional", RoleTraditional, true},
		{"Measure Word", RoleClassifier, true},
		{"Notes", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			role, ok := m.Resolve(tt.field)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.field, ok, tt.wantOK)
			}
			if ok && role != tt.wantRole {
				t.Errorf("Resolve(%q) = %v, want %v", tt.field, role, tt.wantRole)
			}
		})
	}
}

func TestFieldFor(t *testing.T) {
	m := NewFieldMap()
	n := New("Expression", "English", "Reading", "Audio")

	tests := []struct {
		role      Role
		wantField string
		wantOK    bool
	}{
		{RoleHanzi, "Expression", true},
		{RoleMeaning, "English", true},
		{RolePinyin, "Reading", true},
		{RoleSound, "Audio", true},
		{RoleBopomofo, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			field, ok := m.FieldFor(n, tt.role)
			if ok != tt.wantOK {
				t.Fatalf("FieldFor(%v) ok = %v, want %v", tt.role, ok, tt.wantOK)
			}
			if field != tt.wantField {
				t.Errorf("FieldFor(%v) = %q, want %q", tt.role, field, tt.wantField)
			}
		})
	}
}

func TestFieldForPriorityOrder(t *testing.T) {
	m := NewFieldMap()
	// Both "Hanzi" and "Front" resolve to the hanzi role; "Hanzi" has
	// higher alias priority regardless of field position.
	n := New("Front", "Hanzi")

	field, ok := m.FieldFor(n, RoleHanzi)
	if !ok || field != "Hanzi" {
		t.Errorf("FieldFor(hanzi) = %q, %v; want %q, true", field, ok, "Hanzi")
	}
}

func TestFieldMapOverrides(t *testing.T) {
	m := NewFieldMapWithOverrides(map[string][]string{
		"hanzi": {"Vocab"},
	})

	role, ok := m.Resolve("Vocab")
	if !ok || role != RoleHanzi {
		t.Errorf("Resolve(Vocab) = %v, %v; want hanzi, true", role, ok)
	}

	// Defaults still apply
	if _, ok := m.Resolve("Hanzi"); !ok {
		t.Error("override should not remove built-in aliases")
	}

	// Override priority beats defaults
	n := New("Hanzi", "Vocab")
	field, ok := m.FieldFor(n, RoleHanzi)
	if !ok || field != "Vocab" {
		t.Errorf("FieldFor(hanzi) = %q, %v; want Vocab, true", field, ok)
	}
}
