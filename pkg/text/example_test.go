package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/classprefix/pkg/text"
)

func ExampleRewriter_Rewrite() {
	// Create a rewriter
	rewriter := text.NewRewriter()

	// Define some replacement rules
	rules := []text.ReplacementRule{
		{
			FromText:       `className="timetable-grid"`,
			ToText:         `className="editor-timetable-grid"`,
			FileFilterGlob: "**/TimetableEditor.jsx",
		},
		{
			FromText:       `className="subject-code"`,
			ToText:         `className="editor-subject-code"`,
			FileFilterGlob: "**/TimetableEditor.jsx",
		},
	}

	// Create some content
	content := strings.NewReader(`<div className="timetable-grid"><span className="subject-code">CS101</span></div>`)

	// Apply replacements
	result, err := rewriter.Rewrite(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: <div className="editor-timetable-grid"><span className="editor-subject-code">CS101</span></div>
	// Changes: 2
	// Was Modified: true
}

func ExampleFilterRulesForPath() {
	// Define rules scoped to different component files
	rules := []text.ReplacementRule{
		{
			FromText:       `className="timetable-grid"`,
			ToText:         `className="editor-timetable-grid"`,
			FileFilterGlob: "**/TimetableEditor.jsx",
		},
		{
			FromText:       `className="timetable-grid"`,
			ToText:         `className="viewer-timetable-grid"`,
			FileFilterGlob: "**/TimetableViewer.jsx",
		},
	}

	// Keep only the rules that apply to the viewer component
	matched, err := text.FilterRulesForPath(rules, "src/components/TimetableViewer.jsx")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	for _, rule := range matched {
		fmt.Printf("%s -> %s\n", rule.FromText, rule.ToText)
	}

	// Output:
	// className="timetable-grid" -> className="viewer-timetable-grid"
}
