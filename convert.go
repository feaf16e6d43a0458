package doc2quarto

import "strings"

// frontmatterDelimiter terminates and opens a frontmatter region when it
// appears as an entire line.
const frontmatterDelimiter = "---"

// scanState tracks which region of the document the line scanner is in.
type scanState int

const (
	inBody scanState = iota
	inFrontmatter
)

// ConvertContent converts a full Docusaurus markdown document to Quarto
// format. It is the composition of the frontmatter and admonition
// transformers: lines between the first and second standalone "---" are
// buffered and rewritten through ConvertFrontmatter, every other line goes
// through ConvertAdmonitions.
//
// Two behaviors of the scanner are deliberate contracts, not accidents:
//
//   - The closing "---" delimiter of a frontmatter block is consumed but
//     never emitted; only the opening delimiter appears in the output.
//   - A frontmatter region that is never closed swallows its buffered
//     lines; they are absent from the output entirely.
//
// After a frontmatter block closes the scanner returns to the body state,
// so a later standalone "---" line opens a new frontmatter region.
func ConvertContent(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := inBody
	var frontmatter []string

	for _, line := range splitLines(content) {
		if line == frontmatterDelimiter {
			if state == inBody {
				state = inFrontmatter
				frontmatter = frontmatter[:0]
				continue
			}

			// Closing delimiter: emit the opening marker and the
			// transformed buffer. The closing marker itself is not
			// written back out.
			b.WriteString(frontmatterDelimiter)
			b.WriteByte('\n')
			b.WriteString(ConvertFrontmatter(frontmatter))
			frontmatter = frontmatter[:0]
			state = inBody
			continue
		}

		if state == inFrontmatter {
			frontmatter = append(frontmatter, line)
			continue
		}

		b.WriteString(ConvertAdmonitions(line))
		b.WriteByte('\n')
	}

	return b.String()
}

// splitLines splits content into lines without terminators. A trailing
// newline does not produce a final empty line, and a trailing \r left by
// CRLF endings is stripped from each line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
