package writer

import "strings"

// SharedStrings deduplicates cell text across a whole workbook. Indexes are
// dense, zero-based and assigned in first-seen order.
type SharedStrings struct {
	index map[string]int
	items []string
}

// NewSharedStrings returns an empty table.
func NewSharedStrings() *SharedStrings {
	return &SharedStrings{index: make(map[string]int)}
}

// Intern returns the index of text, appending it on first sight.
func (s *SharedStrings) Intern(text string) int {
	if i, ok := s.index[text]; ok {
		return i
	}
	i := len(s.items)
	s.items = append(s.items, text)
	s.index[text] = i
	return i
}

// Len returns the number of distinct strings.
func (s *SharedStrings) Len() int {
	return len(s.items)
}

// Items returns the strings in index order.
func (s *SharedStrings) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// part builds the shared strings part, or nil when nothing was interned.
func (s *SharedStrings) part() *xlsxSST {
	if len(s.items) == 0 {
		return nil
	}
	sst := &xlsxSST{
		Xmlns:       nsMain,
		Count:       len(s.items),
		UniqueCount: len(s.items),
		SI:          make([]xlsxSI, len(s.items)),
	}
	for i, v := range s.items {
		sst.SI[i].T = xlsxT{Value: v}
		if needsPreserve(v) {
			sst.SI[i].T.Space = "preserve"
		}
	}
	return sst
}

func needsPreserve(s string) bool {
	return s != "" && (strings.TrimSpace(s[:1]) == "" || strings.TrimSpace(s[len(s)-1:]) == "")
}
