// Package doc2quarto converts Docusaurus-flavored markdown documents to
// Quarto-flavored markdown.
//
// # Quick Start
//
// The conversion core is three pure functions:
//
//	converted := doc2quarto.ConvertContent(source)
//
// ConvertContent runs the full document pipeline. ConvertFrontmatter and
// ConvertAdmonitions implement its two halves and are exported for direct
// use and testing.
//
// # Conversion Pipeline
//
// A document is scanned line by line through a two-state machine:
//
//  1. Frontmatter region: lines between the first and second standalone
//     "---" are buffered, then rewritten (sidebar_position becomes order)
//     and emitted after the opening delimiter.
//  2. Body region: every other line is rewritten through the admonition
//     transformer, which turns Docusaurus ":::type Title" blocks into
//     Quarto ":::: {.callout-type}" callouts.
//
// The core performs syntactic substitution only. Frontmatter is opaque text
// with one recognized key; body content is processed as lines, never as a
// markdown AST. The functions are total: any input produces some output,
// and malformed markers degrade silently rather than failing.
//
// # File Conversion
//
// Service wraps the core with file I/O for batch use:
//
//	svc := doc2quarto.New()
//	result, err := svc.ConvertFile(ctx, doc2quarto.FileInput{
//	    SourcePath: "docs/guide/intro.md",
//	    SourceRoot: "docs",
//	    DestRoot:   "site",
//	})
//
// ConvertFile mirrors the source's relative path under the destination root,
// changes the extension to .qmd, and copies a sibling "img" directory
// alongside the output. Use WithDryRun to compute paths without writing.
//
// # Parallel Processing
//
// The core holds no cross-call state, so independent documents may be
// converted concurrently without coordination. The doc2quarto CLI does this
// with a fixed worker pool; see cmd/doc2quarto.
package doc2quarto
