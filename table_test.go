package tinymark

import "testing"

func TestTable(t *testing.T) {
	var tests = []string{
		"| A | B |\n|:--|--:|\n| 1 | 2 |\n",
		"<table>\n<thead>\n<tr>\n<th>A</th>\n<th align=\"right\">B</th>\n</tr>\n</thead>\n" +
			"<tbody>\n<tr>\n<td>1</td>\n<td align=\"right\">2</td>\n</tr>\n</tbody>\n</table>\n",

		"| A | B | C |\n|:-:|---|--:|\n| 1 | 2 |\n| 1 | 2 | 3 | 4 |\n",
		"<table>\n<thead>\n<tr>\n<th align=\"center\">A</th>\n<th>B</th>\n<th align=\"right\">C</th>\n</tr>\n</thead>\n" +
			"<tbody>\n<tr>\n<td align=\"center\">1</td>\n<td>2</td>\n<td align=\"right\"></td>\n</tr>\n" +
			"<tr>\n<td align=\"center\">1</td>\n<td>2</td>\n<td align=\"right\">3</td>\n</tr>\n</tbody>\n</table>\n",

		"| A |\n",
		"<table>\n<thead>\n<tr>\n<th>A</th>\n</tr>\n</thead>\n<tbody>\n</tbody>\n</table>\n",

		"| A |\n| x |\n",
		"<table>\n<thead>\n<tr>\n<th>A</th>\n</tr>\n</thead>\n<tbody>\n<tr>\n<td>x</td>\n</tr>\n</tbody>\n</table>\n",

		"| A |\n|---|\n| 1 |\ntext\n",
		"<table>\n<thead>\n<tr>\n<th>A</th>\n</tr>\n</thead>\n<tbody>\n<tr>\n<td>1</td>\n</tr>\n</tbody>\n</table>\n" +
			"<p>text</p>\n",

		"| A |\n\ntext\n\n| B |\n",
		"<table>\n<thead>\n<tr>\n<th>A</th>\n</tr>\n</thead>\n<tbody>\n</tbody>\n</table>\n" +
			"<p>text</p>\n" +
			"<table>\n<thead>\n<tr>\n<th>B</th>\n</tr>\n</thead>\n<tbody>\n</tbody>\n</table>\n",

		"| <b> | a&b |\n|---|---|\n",
		"<table>\n<thead>\n<tr>\n<th>&lt;b&gt;</th>\n<th>a&amp;b</th>\n</tr>\n</thead>\n<tbody>\n</tbody>\n</table>\n",

		"  | A |\n  |---|\n  | 1 |\n",
		"<table>\n<thead>\n<tr>\n<th>A</th>\n</tr>\n</thead>\n<tbody>\n<tr>\n<td>1</td>\n</tr>\n</tbody>\n</table>\n",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestTableDisabled(t *testing.T) {
	var tests = []string{
		"| a |\n",
		"<p>| a|</p>\n",
	}
	doTestsBlock(t, tests, NoExtensions)
}
