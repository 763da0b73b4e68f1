package tinymark

import "testing"

func TestDump(t *testing.T) {
	var tests = []string{
		"# H\n* a\n  * b\n[x](/y)\n",
		"Heading[1](\"H\")\nList[*](\"a\")\n  List[*](\"b\")\nLink[/y](\"x\")\n",

		"1. one\n**b** ![i](/p.png)\n",
		"List[1.](\"one\")\nBold(\"b\")\nImage[/p.png \"i\"](\"\")\n",

		"| A | B |\n|---|---|\n| 1 | 2 |\n> q\n",
		"Table[A|B 1 rows](\"\")\nBlockquote(\"q\")\n",
	}
	for i := 0; i+1 < len(tests); i += 2 {
		actual := Dump(Parse(tests[i]).AST)
		if actual != tests[i+1] {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]\n%s",
				tests[i], tests[i+1], actual, diff(tests[i+1], actual))
		}
	}
}

func TestDumpNil(t *testing.T) {
	if got := Dump([]Node{nil}); got != "<nil>\n" {
		t.Errorf("got %q", got)
	}
}
