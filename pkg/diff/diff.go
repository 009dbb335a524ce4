package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	contextLines    = 3
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
	noNewlineMarker = "\\ No newline at end of file"
)

type line struct {
	kind diffmatchpatch.Operation
	text string
	// eol is false only for a final line without a trailing newline.
	eol bool
}

// GenerateUnifiedDiff renders a line-oriented unified diff between expected
// and actual with three lines of context. It returns an empty string for
// identical content and truncates output beyond 10,000 lines.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)
	lines := flatten(diffs)

	oldNo := make([]int, len(lines)+1)
	newNo := make([]int, len(lines)+1)
	oldNo[0], newNo[0] = 1, 1
	for i, l := range lines {
		oldNo[i+1], newNo[i+1] = oldNo[i], newNo[i]
		if l.kind != diffmatchpatch.DiffInsert {
			oldNo[i+1]++
		}
		if l.kind != diffmatchpatch.DiffDelete {
			newNo[i+1]++
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	for _, h := range hunks(lines, contextLines) {
		start, stop := h[0], h[1]
		oldCount := oldNo[stop] - oldNo[start]
		newCount := newNo[stop] - newNo[start]
		fmt.Fprintf(&buf, "@@ -%s +%s @@\n", hunkRange(oldNo[start], oldCount), hunkRange(newNo[start], newCount))

		for _, l := range lines[start:stop] {
			switch l.kind {
			case diffmatchpatch.DiffEqual:
				buf.WriteString(" ")
			case diffmatchpatch.DiffDelete:
				buf.WriteString("-")
			case diffmatchpatch.DiffInsert:
				buf.WriteString("+")
			}
			buf.WriteString(l.text)
			buf.WriteString("\n")
			if !l.eol {
				buf.WriteString(noNewlineMarker)
				buf.WriteString("\n")
			}
		}
	}

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		truncated := strings.Join(out[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

func flatten(diffs []diffmatchpatch.Diff) []line {
	var out []line
	for _, d := range diffs {
		parts := strings.SplitAfter(d.Text, "\n")
		for _, p := range parts {
			if p == "" {
				continue
			}
			out = append(out, line{
				kind: d.Type,
				text: strings.TrimSuffix(p, "\n"),
				eol:  strings.HasSuffix(p, "\n"),
			})
		}
	}
	return out
}

// hunks groups changed lines with up to ctx lines of surrounding context,
// merging groups whose context would overlap. Each hunk is a [start, stop) range.
func hunks(lines []line, ctx int) [][2]int {
	var out [][2]int
	for i := 0; i < len(lines); i++ {
		if lines[i].kind == diffmatchpatch.DiffEqual {
			continue
		}

		start := i - ctx
		if start < 0 {
			start = 0
		}

		end := i
		for {
			next := end + 1
			for next < len(lines) && lines[next].kind == diffmatchpatch.DiffEqual {
				next++
			}
			if next >= len(lines) || next-end-1 > 2*ctx {
				break
			}
			end = next
		}

		stop := end + ctx + 1
		if stop > len(lines) {
			stop = len(lines)
		}
		out = append(out, [2]int{start, stop})
		i = stop - 1
	}
	return out
}

func hunkRange(start, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", start-1)
	}
	if count == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}
