// Package braces implements bash-style brace expansion
package braces

// Expand expands every alternation group in s, i.e., "a{b,c}d" becomes "abd", "acd".
// A group is a balanced pair of braces with at least one top-level comma; groups may nest.
// Braces that do not form a group are kept as literals
func Expand(s string) []string {
	open, close, alternatives := findGroup(s)
	if open < 0 {
		return []string{s}
	}

	prefix, suffix := s[:open], s[close+1:]

	var expansions []string
	for _, alt := range alternatives {
		expansions = append(expansions, Expand(prefix+alt+suffix)...)
	}

	return expansions
}

// findGroup returns the position of the first alternation group and its alternatives.
// open is -1 when s has none
func findGroup(s string) (open, close int, alternatives []string) {
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}

		end, commas := matchBrace(s, i)
		if end < 0 || len(commas) == 0 {
			// literal brace, keep looking inside it
			continue
		}

		start := i + 1
		for _, comma := range commas {
			alternatives = append(alternatives, s[start:comma])
			start = comma + 1
		}
		alternatives = append(alternatives, s[start:end])

		return i, end, alternatives
	}

	return -1, -1, nil
}

// matchBrace returns the position of the brace closing s[open] and the positions of the
// commas directly inside it. end is -1 if the brace is never closed
func matchBrace(s string, open int) (end int, commas []int) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, commas
			}
		case ',':
			if depth == 1 {
				commas = append(commas, i)
			}
		}
	}

	return -1, nil
}
