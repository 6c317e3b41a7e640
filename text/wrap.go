package text

import "strings"

// WrapLines greedily breaks s into lines of at most width characters by
// splitting at occurrences of delimiter. Each break consumes exactly the
// delimiter it splits at and nothing else is altered, so joining the result
// with delimiter reconstructs s.
//
// A token longer than width forces a line longer than width rather than
// being split, so no line ever breaks mid-token and no content is dropped.
// If the remaining text contains no delimiter at all it becomes the final
// line verbatim. An empty s yields no lines.
func WrapLines(s string, width int, delimiter string) []string {
	if s == "" {
		return nil
	}
	if width <= 0 || delimiter == "" {
		return []string{s}
	}

	var lines []string
	for len(s) > width {
		// Last delimiter at or before the width limit.
		breakAt := strings.LastIndex(s[:width+1], delimiter)
		if breakAt < 0 {
			// None in range; the first delimiter beyond the limit keeps us
			// moving, at the cost of an overlong line.
			breakAt = strings.Index(s[width:], delimiter)
			if breakAt < 0 {
				break
			}
			breakAt += width
		}
		lines = append(lines, s[:breakAt])
		s = s[breakAt+len(delimiter):]
	}
	return append(lines, s)
}
