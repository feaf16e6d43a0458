package doc2quarto

import "strings"

// sidebarPositionKey is the only frontmatter field with rewrite semantics.
const sidebarPositionKey = "sidebar_position"

// ConvertFrontmatter rewrites Docusaurus frontmatter lines to their Quarto
// equivalents. Input is the raw lines between the "---" delimiters, without
// the delimiters themselves; output is the rewritten block, one trailing
// newline per line.
//
// The single recognized field is sidebar_position, which becomes
// "order: <value>" where value is the trimmed text after the first colon
// (empty when the line has no colon). Every other line is preserved
// byte-for-byte, including quoting and whitespace. Line order is kept and
// no key-collision handling is performed: a document carrying both
// sidebar_position and a pre-existing order key yields both in the output.
func ConvertFrontmatter(lines []string) string {
	var b strings.Builder

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), sidebarPositionKey) {
			value := ""
			if i := strings.IndexByte(line, ':'); i >= 0 {
				value = strings.TrimSpace(line[i+1:])
			}
			b.WriteString("order: ")
			b.WriteString(value)
			b.WriteByte('\n')
			continue
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}
