//
// Tinymark Markdown Processor
// Available at http://github.com/tinymark/tinymark
//
// Copyright © The Tinymark Authors.
// Distributed under the Simplified BSD License.
// See LICENSE for details.
//

//
// Unit tests for block parsing
//

package tinymark

import (
	"testing"
)

func TestHeading(t *testing.T) {
	var tests = []string{
		"# Header 1\n",
		"<h1>Header 1</h1>\n",

		"## Header 2\n",
		"<h2>Header 2</h2>\n",

		"### Header 3\n",
		"<h3>Header 3</h3>\n",

		"#### Header 4\n",
		"<h4>Header 4</h4>\n",

		"##### Header 5\n",
		"<h5>Header 5</h5>\n",

		"###### Header 6\n",
		"<h6>Header 6</h6>\n",

		"####### Header 7\n",
		"<p>####### Header 7</p>\n",

		"#Header 1\n",
		"<p>#Header 1</p>\n",

		"## Header 2 ##\n",
		"<h2>Header 2</h2>\n",

		"# Header #1\n",
		"<h1>Header #1</h1>\n",

		"   # Indented\n",
		"<h1>Indented</h1>\n",

		"#\tTab\n",
		"<h1>Tab</h1>\n",

		"Hello\n# Header 1\nGoodbye\n",
		"<p>Hello</p>\n<h1>Header 1</h1>\n<p>Goodbye</p>\n",

		"# Header <b> & \"x\"\n",
		"<h1>Header &lt;b&gt; &amp; &quot;x&quot;</h1>\n",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestHeadingTitle(t *testing.T) {
	var tests = []string{
		"# Title\n",
		"<h1>title</h1>\n",

		"### TITLE\n",
		"<h1>title</h1>\n",

		"## tItLe ##\n",
		"<h1>title</h1>\n",

		"# Titles\n",
		"<h1>Titles</h1>\n",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestUnorderedList(t *testing.T) {
	var tests = []string{
		"* Hello\n",
		"<ul>\n<li>Hello</li>\n</ul>\n",

		"* Yin\n* Yang\n",
		"<ul>\n<li>Yin</li>\n<li>Yang</li>\n</ul>\n",

		"- Ding\n+ Dong\n",
		"<ul>\n<li>Ding</li>\n<li>Dong</li>\n</ul>\n",

		"*Hello\n",
		"<p>*Hello</p>\n",

		"* a\n  * b\n* c\n",
		"<ul>\n<li>a\n<ul>\n<li>b</li>\n</ul>\n</li>\n<li>c</li>\n</ul>\n",

		"* a\n  * b\n    * c\n  * d\n",
		"<ul>\n<li>a\n<ul>\n<li>b\n<ul>\n<li>c</li>\n</ul>\n</li>\n<li>d</li>\n</ul>\n</li>\n</ul>\n",

		"* a\n\t* b\n",
		"<ul>\n<li>a\n<ul>\n<li>b</li>\n</ul>\n</li>\n</ul>\n",

		"* <a>\n",
		"<ul>\n<li>&lt;a&gt;</li>\n</ul>\n",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestOrderedList(t *testing.T) {
	var tests = []string{
		"1. Hello\n",
		"<ol>\n<li>Hello</li>\n</ol>\n",

		"1. Yin\n2. Yang\n",
		"<ol>\n<li>Yin</li>\n<li>Yang</li>\n</ol>\n",

		"3. Three\n4. Four\n",
		"<ol start=\"3\">\n<li>Three</li>\n<li>Four</li>\n</ol>\n",

		"1.Hello\n",
		"<p>1.Hello</p>\n",

		"1. a\n   1. b\n2. c\n",
		"<ol>\n<li>a\n<ol>\n<li>b</li>\n</ol>\n</li>\n<li>c</li>\n</ol>\n",

		"1234567890. too long\n",
		"<p>1234567890. too long</p>\n",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestMixedList(t *testing.T) {
	var tests = []string{
		"* a\n1. b\n",
		"<ul>\n<li>a</li>\n</ul>\n<ol>\n<li>b</li>\n</ol>\n",

		"* a\n  1. b\n  2. c\n* d\n",
		"<ul>\n<li>a\n<ol>\n<li>b</li>\n<li>c</li>\n</ol>\n</li>\n<li>d</li>\n</ul>\n",

		"* a\n# H\n* b\n",
		"<ul>\n<li>a</li>\n</ul>\n<h1>H</h1>\n<ul>\n<li>b</li>\n</ul>\n",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestBlockquote(t *testing.T) {
	var tests = []string{
		"> Hello\n",
		"<blockquote>Hello</blockquote>\n",

		"> Hello\n> Goodbye\n",
		"<blockquote>Hello\nGoodbye</blockquote>\n",

		"> a\ntext\n> b\n",
		"<blockquote>a</blockquote>\n<p>text</p>\n<blockquote>b</blockquote>\n",

		"> 1 < 2\n",
		"<blockquote>1 &lt; 2</blockquote>\n",

		"a > b\n",
		"<p>a&gt; b</p>\n",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestHorizontalRule(t *testing.T) {
	var tests = []string{
		"---\n",
		"<hr />\n",

		"***\n",
		"<hr />\n",

		"___\n",
		"<hr />\n",

		"* * *\n",
		"<hr />\n",

		"--\n",
		"<p>--</p>\n",

		"a\n---\nb\n",
		"<p>a</p>\n<hr />\n<p>b</p>\n",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestHorizontalRuleDisabled(t *testing.T) {
	var tests = []string{
		"---\n",
		"<p>---</p>\n",

		"* * *\n",
		"<ul>\n<li>* *</li>\n</ul>\n",
	}
	doTestsBlock(t, tests, NoExtensions)
}

func TestParagraph(t *testing.T) {
	var tests = []string{
		"Hello world\n",
		"<p>Hello world</p>\n",

		"a\nb\n",
		"<p>ab</p>\n",

		"a < b & c \"d\" 'e'\n",
		"<p>a &lt; b &amp; c &quot;d&quot; &#39;e&#39;</p>\n",

		"абвгдеёжзийклмнопрстуфх",
		"<p>абвгдеёжзийклмнопрстуфх</p>\n",

		"   \n\t\n",
		"",

		"",
		"",
	}
	doTestsBlock(t, tests, CommonExtensions)
}
