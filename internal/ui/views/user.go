package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"ghseek/internal/domain"
)

// ProfileLinkText is the label of the profile hyperlink on every row
const ProfileLinkText = "View Profile"

// Hyperlink wraps text in an OSC 8 escape so terminals that support it make
// the text clickable.
func Hyperlink(url, text string) string {
	if url == "" {
		return text
	}
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// UserRenderer handles rendering of user rows
type UserRenderer struct {
	styles *Styles
}

// NewUserRenderer creates a new user renderer
func NewUserRenderer(styles *Styles) *UserRenderer {
	return &UserRenderer{
		styles: styles,
	}
}

// RenderUser renders one result row: handle, avatar reference and profile link
func (r *UserRenderer) RenderUser(user domain.User, isSelected bool, query string, width int) string {
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	marker := "  "
	if isSelected {
		marker = "▸ "
	}

	handleStyle := r.styles.Handle.Background(lipgloss.Color(bgColor))
	handle := r.highlightMatch(user.Login, query,
		handleStyle.Foreground(lipgloss.Color("226")), handleStyle)

	link := r.styles.Link.Background(lipgloss.Color(bgColor)).Render(Hyperlink(user.HTMLURL, ProfileLinkText))

	// The avatar gets whatever room is left on the line
	fixed := lipgloss.Width(marker) + lipgloss.Width(user.Login) + lipgloss.Width(ProfileLinkText) + 4
	avatar := user.AvatarURL
	if width > 0 {
		avatar = truncate(avatar, width-fixed)
	}

	parts := []string{
		bg.Render(marker),
		handle,
		bg.Render("  "),
	}
	if avatar != "" {
		parts = append(parts,
			r.styles.Avatar.Background(lipgloss.Color(bgColor)).Render(avatar),
			bg.Render("  "))
	}
	parts = append(parts, link)

	return strings.Join(parts, "")
}

// highlightMatch highlights matching text within a string
func (r *UserRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	start, end, ok := findFold(text, query)
	if !ok {
		return normalStyle.Render(text)
	}

	before := text[:start]
	match := text[start:end]
	after := text[end:]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}

// truncate shortens s to at most max cells, marking the cut with an ellipsis
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// findFold returns the byte range of the first case-insensitive occurrence
// of query in text. Matching is done rune by rune so the range never splits
// a character, even where case mapping changes the byte length.
func findFold(text, query string) (start, end int, ok bool) {
	n := utf8.RuneCountInString(query)
	if n == 0 {
		return 0, 0, false
	}
	var bounds []int
	for i := range text {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(text))

	for i := 0; i+n < len(bounds); i++ {
		if strings.EqualFold(text[bounds[i]:bounds[i+n]], query) {
			return bounds[i], bounds[i+n], true
		}
	}
	return 0, 0, false
}
