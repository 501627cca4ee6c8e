package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"ghseek/internal/domain"
)

// HelpSection is a titled group of key bindings
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)
	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginTop(1)
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpNoteStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
)

// RenderHelpContent generates the full key help shown in the pager
func RenderHelpContent(sections []HelpSection) string {
	var help strings.Builder

	help.WriteString(helpTitleStyle.Render(AppTitle + " Help"))
	help.WriteString("\n")

	for _, section := range sections {
		help.WriteString(helpSectionStyle.Render(section.Title))
		help.WriteString("\n")

		width := 0
		for _, b := range section.Bindings {
			if w := lipgloss.Width(b.Help().Key); w > width {
				width = w
			}
		}
		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			k := b.Help().Key
			pad := strings.Repeat(" ", width-lipgloss.Width(k)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", helpKeyStyle.Render(k), pad, helpDescStyle.Render(b.Help().Desc)))
		}
		help.WriteString("\n")
	}

	help.WriteString(helpNoteStyle.Render("  Typing edits the query; results load after a short pause."))
	help.WriteString("\n")

	return help.String()
}

// RenderUserDetails generates the detail page of one user for the pager
func RenderUserDetails(user domain.User) string {
	var b strings.Builder

	b.WriteString(helpTitleStyle.Render(user.Login))
	b.WriteString("\n")

	field := func(name, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", helpKeyStyle.Render(fmt.Sprintf("%-12s", name)), helpDescStyle.Render(value)))
	}
	field("ID", fmt.Sprintf("%d", user.ID))
	if user.Type != "" {
		field("Type", user.Type)
	}
	if user.SiteAdmin {
		field("Site admin", "yes")
	}
	field("Profile", Hyperlink(user.HTMLURL, user.HTMLURL))
	field("Avatar", user.AvatarURL)
	if user.Score != 0 {
		field("Score", fmt.Sprintf("%.2f", user.Score))
	}

	return b.String()
}
