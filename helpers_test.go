//
// Tinymark Markdown Processor
// Available at http://github.com/tinymark/tinymark
//
// Copyright © The Tinymark Authors.
// Distributed under the Simplified BSD License.
// See LICENSE for details.
//

//
// Helper functions for unit testing
//

package tinymark

import (
	"regexp"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

type TestParams struct {
	Options
	HTMLFlags
	HTMLRendererParameters
}

func runMarkdownBlock(input string, params TestParams) string {
	result := ParseOptions(input, params.Options)
	return NewHTMLRenderer(params.HTMLFlags, params.HTMLRendererParameters).Render(result.AST)
}

func doTestsBlock(t *testing.T, tests []string, extensions Extensions) {
	t.Helper()
	doTestsBlockWithRunner(t, tests, TestParams{
		Options: Options{Extensions: extensions},
	}, runMarkdownBlock)
}

func doTestsParam(t *testing.T, tests []string, params TestParams) {
	t.Helper()
	doTestsBlockWithRunner(t, tests, params, runMarkdownBlock)
}

func doTestsBlockWithRunner(t *testing.T, tests []string, params TestParams, runner func(string, TestParams) string) {
	t.Helper()
	// catch and report panics
	var candidate string
	defer func() {
		if err := recover(); err != nil {
			t.Errorf("\npanic while processing [%#v]: %s\n", candidate, err)
		}
	}()

	for i := 0; i+1 < len(tests); i += 2 {
		input := tests[i]
		candidate = input
		expected := tests[i+1]
		actual := runner(candidate, params)
		if actual != expected {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]\n%s",
				candidate, expected, actual, diff(expected, actual))
		}

		// now test every substring to stress test bounds checking
		if !testing.Short() {
			for start := 0; start < len(input); start++ {
				for end := start + 1; end <= len(input); end++ {
					candidate = input[start:end]
					runner(candidate, params)
				}
			}
		}
	}
}

func diff(expected, actual string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

func transformLinks(tests []string, prefix string) []string {
	newTests := make([]string, len(tests))
	anchorRe := regexp.MustCompile(`<a href="/(.*?)"`)
	imgRe := regexp.MustCompile(`<img src="/(.*?)"`)
	for i, test := range tests {
		if i%2 == 1 {
			test = anchorRe.ReplaceAllString(test, `<a href="`+prefix+`/$1"`)
			test = imgRe.ReplaceAllString(test, `<img src="`+prefix+`/$1"`)
		}
		newTests[i] = test
	}
	return newTests
}
