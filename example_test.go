package doc2quarto_test

import (
	"fmt"

	doc2quarto "github.com/rvbug/doc2quarto"
)

func ExampleConvertContent() {
	source := "---\n" +
		"title: Intro\n" +
		"sidebar_position: 2\n" +
		"---\n" +
		":::tip Quick\n" +
		"Read this first.\n" +
		":::\n"

	fmt.Print(doc2quarto.ConvertContent(source))
	// Output:
	// ---
	// title: Intro
	// order: 2
	// :::: {.callout-tip}
	// ## Quick
	// Read this first.
	// ::::
}

func ExampleConvertAdmonitions() {
	fmt.Println(doc2quarto.ConvertAdmonitions(":::danger Stop"))
	fmt.Println(doc2quarto.ConvertAdmonitions(":::info"))
	fmt.Println(doc2quarto.ConvertAdmonitions(":::"))
	// Output:
	// :::: {.callout-important}
	// ## Stop
	// :::: {note}
	// ::::
}

func ExampleConvertFrontmatter() {
	fmt.Print(doc2quarto.ConvertFrontmatter([]string{
		`title: "Guide"`,
		"sidebar_position: 3",
	}))
	// Output:
	// title: "Guide"
	// order: 3
}
