// Package diffview renders the review overlay: a line diff of the settings
// as persisted against the values currently edited in the dialog.
package diffview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	addStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"})
	addChar   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	delChar   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "203"}).Underline(true)
	ctxStyle  = lipgloss.NewStyle().Faint(true)
	headStyle = lipgloss.NewStyle().Bold(true)
)

// View diffs two newline-separated summaries and renders them with +/-
// markers. Summaries carry one setting per line in a fixed order, so lines
// pair positionally; changed pairs get a char-level highlight. Unchanged
// lines render faint for context.
func View(before, after string) string {
	head := headStyle.Render("Pending changes") + "\n\n"
	if before == after {
		return head + "Nothing changed yet.\n"
	}

	bLines := splitLines(before)
	aLines := splitLines(after)
	if len(bLines) != len(aLines) {
		return head + rawBlocks(bLines, aLines)
	}

	var out strings.Builder
	out.WriteString(head)
	for i := range bLines {
		bl, al := bLines[i], aLines[i]
		if bl == al {
			out.WriteString(ctxStyle.Render("  "+bl) + "\n")
			continue
		}
		d := diffmatchpatch.New()
		diffs := d.DiffMain(bl, al, false)
		d.DiffCleanupSemantic(diffs)

		out.WriteString(delStyle.Render("- "))
		for _, df := range diffs {
			switch df.Type {
			case diffmatchpatch.DiffDelete:
				out.WriteString(delChar.Render(df.Text))
			case diffmatchpatch.DiffEqual:
				out.WriteString(delStyle.Render(df.Text))
			}
		}
		out.WriteString("\n")

		out.WriteString(addStyle.Render("+ "))
		for _, df := range diffs {
			switch df.Type {
			case diffmatchpatch.DiffInsert:
				out.WriteString(addChar.Render(df.Text))
			case diffmatchpatch.DiffEqual:
				out.WriteString(addStyle.Render(df.Text))
			}
		}
		out.WriteString("\n")
	}
	return out.String()
}

// rawBlocks shows both documents whole when the line counts disagree and
// positional pairing would mislead.
func rawBlocks(before, after []string) string {
	var out strings.Builder
	for _, l := range before {
		out.WriteString(delStyle.Render("- "+l) + "\n")
	}
	out.WriteString("\n")
	for _, l := range after {
		out.WriteString(addStyle.Render("+ "+l) + "\n")
	}
	return out.String()
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
