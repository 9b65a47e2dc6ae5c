package doctree

import (
	"sort"
	"strings"
)

// Sections maps a recognized key to the text span between that key's
// first occurrence and the next recognized key. Keys are kept in order
// of first occurrence in the source text; that order carries meaning
// for inlet and outlet declarations.
type Sections struct {
	keys   []string
	values map[string]string
}

// Keys returns the recognized keys in order of first occurrence.
func (s *Sections) Keys() []string {
	return s.keys
}

// Lookup returns the span for key and whether the key was found.
func (s *Sections) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key was found in the source text.
func (s *Sections) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of keys found.
func (s *Sections) Len() int {
	return len(s.keys)
}

// SplitSections splits text into labeled spans. For every key in keys it
// finds the first occurrence of "key:" in text; keys not found are
// dropped. Each found key's span runs from the character after its colon
// to the start of the next found key (the last span runs to end of
// text). Spans are trimmed of one leading newline, surrounding
// whitespace, and one layer of surrounding double quotes.
//
// Keys may carry a leading newline (e.g. "\ntitle") to anchor the match
// at a line start; the stored key name is trimmed.
//
// Section boundaries are purely positional. A key token appearing inside
// another section's free text re-delimits the sections; nested keys are
// not supported.
func SplitSections(text string, keys []string) *Sections {
	type match struct {
		key string
		pos int
	}

	var found []match
	for _, key := range keys {
		if pos := strings.Index(text, key+":"); pos >= 0 {
			found = append(found, match{key: key, pos: pos})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	sections := &Sections{values: make(map[string]string, len(found))}
	for i, m := range found {
		start := m.pos + len(m.key) + 1 // past the colon
		end := len(text)
		if i+1 < len(found) {
			end = found[i+1].pos
		}

		span := text[start:end]
		span = strings.TrimPrefix(span, "\n")
		span = strings.TrimSpace(span)
		span = strings.TrimPrefix(span, `"`)
		span = strings.TrimSuffix(span, `"`)

		name := strings.TrimSpace(m.key)
		sections.keys = append(sections.keys, name)
		sections.values[name] = span
	}

	return sections
}

// SplitHyphens splits text into blocks at top-level "-" bullets. A block
// starts at the character after a bullet's leading "-" and absorbs
// subsequent lines (trimmed, joined with newlines) until the next
// bullet. Lines before the first bullet are dropped, as are blocks that
// end up empty.
func SplitHyphens(text string) []string {
	var blocks []string
	current := -1

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-") {
			blocks = append(blocks, strings.TrimSpace(line[1:]))
			current = len(blocks) - 1
			continue
		}
		if current < 0 {
			continue
		}
		blocks[current] += "\n" + line
	}

	out := blocks[:0]
	for _, block := range blocks {
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}
