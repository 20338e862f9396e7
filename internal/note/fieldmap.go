package note

import "strings"

// Role is the semantic meaning of a note field. The fill pipeline works in
// roles; FieldMap translates between roles and the deck's actual field names.
type Role string

const (
	RoleHanzi        Role = "hanzi"
	RoleMeaning      Role = "meaning"
	RolePinyin       Role = "pinyin"
	RolePinyinTaiwan Role = "pinyinTaiwan"
	RoleBopomofo     Role = "bopomofo"
	RoleJyutping     Role = "jyutping"
	RoleColor        Role = "color"
	RoleSound        Role = "sound"
	RoleSimplified   Role = "simplified"
	RoleTraditional  Role = "traditional"
	RoleRuby         Role = "ruby"
	RoleSilhouette   Role = "silhouette"
	RoleClassifier   Role = "classifier"
)

// defaultAliases lists the accepted field names per role, in priority order.
// Matching is case-insensitive.
var defaultAliases = map[Role][]string{
	RoleHanzi:        {"Hanzi", "Chinese", "汉字", "漢字", "Front", "Expression", "Word"},
	RoleMeaning:      {"Meaning", "English", "Translation", "Definition", "Back"},
	RolePinyin:       {"Pinyin", "Reading", "Pronunciation", "拼音"},
	RolePinyinTaiwan: {"PinyinTW", "Pinyin (Taiwan)", "PinyinTaiwan", "Taiwan Pinyin"},
	RoleBopomofo:     {"Bopomofo", "Zhuyin", "注音"},
	RoleJyutping:     {"Jyutping", "Cantonese", "粤拼"},
	RoleColor:        {"Color", "Colour", "ColorHanzi", "Colored Hanzi"},
	RoleSound:        {"Sound", "Audio", "Sound (Mandarin)", "Pronunciation Audio"},
	RoleSimplified:   {"Simplified", "Simp", "简体"},
	RoleTraditional:  {"Traditional", "Trad", "繁體", "繁体"},
	RoleRuby:         {"Ruby", "RubyHanzi"},
	RoleSilhouette:   {"Silhouette", "Blanks"},
	RoleClassifier:   {"Classifier", "Measure Word", "MW", "量词"},
}

// FieldMap resolves deck field names to roles.
type FieldMap struct {
	aliases map[Role][]string
}

// NewFieldMap returns a field map with the built-in aliases.
func NewFieldMap() *FieldMap {
	return &FieldMap{aliases: defaultAliases}
}

// NewFieldMapWithOverrides merges user-configured aliases on top of the
// defaults. Override aliases take priority over the built-in ones.
func NewFieldMapWithOverrides(overrides map[string][]string) *FieldMap {
	merged := make(map[Role][]string, len(defaultAliases))
	for role, names := range defaultAliases {
		if extra, ok := overrides[string(role)]; ok {
			combined := make([]string, 0, len(extra)+len(names))
			combined = append(combined, extra...)
			combined = append(combined, names...)
			merged[role] = combined
		} else {
			merged[role] = names
		}
	}
	return &FieldMap{aliases: merged}
}

// Resolve returns the role a field name belongs to.
func (m *FieldMap) Resolve(fieldName string) (Role, bool) {
	for role, names := range m.aliases {
		for _, name := range names {
			if strings.EqualFold(name, fieldName) {
				return role, true
			}
		}
	}
	return "", false
}

// FieldFor finds the first field in the note that carries the given role,
// honouring the alias priority order.
func (m *FieldMap) FieldFor(n *Note, role Role) (string, bool) {
	names, ok := m.aliases[role]
	if !ok {
		return "", false
	}
	for _, alias := range names {
		for _, field := range n.Fields() {
			if strings.EqualFold(alias, field) {
				return field, true
			}
		}
	}
	return "", false
}
