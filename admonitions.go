package doc2quarto

import (
	"regexp"
	"strings"
)

// Precompiled patterns for admonition markers.
var (
	// Opening marker: three colons, a word token, optional trailing title.
	admonitionStart = regexp.MustCompile(`^:::(\w+)(.*)$`)

	// Closing marker: exactly three colons, nothing else.
	admonitionEnd = regexp.MustCompile(`^:::$`)
)

// calloutTypes maps Docusaurus admonition types to Quarto callout types.
// Lookup is case-insensitive; types absent from the table pass through
// with their original casing.
var calloutTypes = map[string]string{
	"note":    "note",
	"tip":     "tip",
	"info":    "note",
	"caution": "caution",
	"warning": "warning",
	"danger":  "important",
}

// ConvertAdmonitions rewrites a single line of Docusaurus admonition syntax
// to Quarto callout syntax. Rules apply in order, first match wins:
//
//  1. ":::type Title" becomes ":::: {.callout-type}\n## Title"; without a
//     title it becomes ":::: {type}".
//  2. A line that is exactly ":::" becomes "::::".
//  3. Anything else is returned unchanged.
//
// A titled result embeds a newline, representing two logical output lines.
// Four-colon lines match neither rule, so rewriting converges after one
// pass: feeding the output back through is a no-op.
func ConvertAdmonitions(line string) string {
	if caps := admonitionStart.FindStringSubmatch(line); caps != nil {
		admonitionType := caps[1]
		title := strings.TrimSpace(caps[2])

		calloutType, ok := calloutTypes[strings.ToLower(admonitionType)]
		if !ok {
			calloutType = admonitionType
		}

		if title == "" {
			return ":::: {" + calloutType + "}"
		}
		return ":::: {.callout-" + calloutType + "}\n## " + title
	}

	if admonitionEnd.MatchString(line) {
		return "::::"
	}

	return line
}
