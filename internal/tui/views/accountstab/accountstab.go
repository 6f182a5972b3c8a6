// Package accountstab renders the signed-in accounts pane.
package accountstab

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitprefs/internal/accounts"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type Props struct {
	Accounts []accounts.Account
}

func Render(p Props) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Accounts") + "\n\n")
	if len(p.Accounts) == 0 {
		b.WriteString("No accounts signed in.\n")
		b.WriteString(faintStyle.Render("Sign in from the main application to attribute commits automatically.") + "\n")
		return b.String()
	}
	for _, a := range p.Accounts {
		kind := "Enterprise"
		if a.Endpoint == accounts.EndpointDotCom {
			kind = "GitHub.com"
		}
		fmt.Fprintf(&b, "  %s  %s\n", a.Login, faintStyle.Render(kind))
		if email := accounts.PreferredEmail(a); email != "" {
			fmt.Fprintf(&b, "    %s\n", faintStyle.Render(email))
		}
	}
	return b.String()
}
