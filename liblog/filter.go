package liblog

import "strings"

// Filter matches console lines like Dear ImGui's text filter: terms are
// comma separated and case-insensitive, and a leading '-' excludes.
type Filter struct {
	text     string
	includes []string
	excludes []string
}

func NewFilter(text string) *Filter {
	f := &Filter{}
	f.Set(text)
	return f
}

func (f *Filter) Text() string {
	return f.text
}

func (f *Filter) Set(text string) {
	if f.text == text {
		return
	}
	f.text = text
	f.includes = f.includes[:0]
	f.excludes = f.excludes[:0]
	for _, term := range strings.Split(text, ",") {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if term[0] == '-' {
			if term = term[1:]; term != "" {
				f.excludes = append(f.excludes, term)
			}
			continue
		}
		f.includes = append(f.includes, term)
	}
}

func (f *Filter) Active() bool {
	return len(f.includes) > 0 || len(f.excludes) > 0
}

func (f *Filter) Pass(line string) bool {
	if !f.Active() {
		return true
	}
	lower := strings.ToLower(line)
	for _, term := range f.excludes {
		if strings.Contains(lower, term) {
			return false
		}
	}
	if len(f.includes) == 0 {
		return true
	}
	for _, term := range f.includes {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
