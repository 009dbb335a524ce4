package stylesheet

import "strings"

const rootSelector = ":root"

// maxRootDepth bounds brace nesting inside a :root block: the block itself
// plus one level of nested rule groups. Deeper candidates are not matched.
const maxRootDepth = 2

// block locates a brace-delimited region in a stylesheet. Start is the offset
// of the selector, Open the offset of '{' and End the offset just past '}'.
type block struct {
	Start int
	Open  int
	End   int
}

// findRootBlock returns the first :root block whose braces balance within maxRootDepth.
func findRootBlock(content string) (block, bool) {
	offset := 0
	for offset < len(content) {
		idx := strings.Index(content[offset:], rootSelector)
		if idx < 0 {
			return block{}, false
		}
		start := offset + idx

		open := start + len(rootSelector)
		for open < len(content) && isSpace(content[open]) {
			open++
		}
		if open < len(content) && content[open] == '{' {
			if end, ok := matchBrace(content, open, maxRootDepth); ok {
				return block{Start: start, Open: open, End: end}, true
			}
		}

		offset = start + 1
	}
	return block{}, false
}

// matchBrace scans from the '{' at open to its matching '}'. It fails when the
// nesting exceeds maxDepth or the braces never close.
func matchBrace(content string, open, maxDepth int) (int, bool) {
	depth := 0
	for pos := open; pos < len(content); pos++ {
		switch content[pos] {
		case '{':
			depth++
			if depth > maxDepth {
				return 0, false
			}
		case '}':
			depth--
			if depth == 0 {
				return pos + 1, true
			}
		}
	}
	return 0, false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
