package diffview

import (
	"fmt"
	"strings"
	"testing"
)

func TestViewMarksChangedLines(t *testing.T) {
	before := "user.name = Old Name\nshell = bash\n"
	after := "user.name = Jane Doe\nshell = bash\n"

	out := View(before, after)
	if !strings.Contains(out, "Old Name") || !strings.Contains(out, "Jane Doe") {
		t.Fatalf("diff missing changed lines:\n%s", out)
	}
	if !strings.Contains(out, "shell = bash") {
		t.Fatalf("diff missing context line:\n%s", out)
	}
}

func TestViewNoChanges(t *testing.T) {
	doc := "user.name = Jane Doe\n"
	out := View(doc, doc)
	if !strings.Contains(out, "Nothing changed yet.") {
		t.Fatalf("expected no-change notice, got:\n%s", out)
	}
}

// A full settings summary runs a dozen lines; a single edit must still show
// up as exactly one changed pair with the rest rendered as context.
func TestViewSingleEditInLongDocument(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 11; i++ {
		fmt.Fprintf(&b, "setting%d = value%d\n", i, i)
	}
	before := "user.name = \n" + b.String()
	after := "user.name = Jane Doe\n" + b.String()

	out := View(before, after)
	if !strings.Contains(out, "Jane Doe") {
		t.Fatalf("edited value missing from diff:\n%s", out)
	}
	if got := strings.Count(out, "+ "); got != 1 {
		t.Fatalf("expected exactly one added line, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "- "); got != 1 {
		t.Fatalf("expected exactly one removed line, got %d:\n%s", got, out)
	}
	for i := 0; i < 11; i++ {
		if !strings.Contains(out, fmt.Sprintf("setting%d = value%d", i, i)) {
			t.Fatalf("context line %d missing:\n%s", i, out)
		}
	}
}

func TestViewFallsBackWhenLineCountsDiffer(t *testing.T) {
	before := "a = 1\n"
	after := "a = 1\nb = 2\n"
	out := View(before, after)
	if !strings.Contains(out, "b = 2") {
		t.Fatalf("fallback missing added document line:\n%s", out)
	}
}
