package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ghseek/internal/domain"
)

// Fixed text shown by the list area
const (
	AppTitle       = "GitHub User Search"
	NoResultsText  = "No results found"
	SearchingText  = "Searching..."
	LoadingMore    = "Loading more..."
	MoreAboveText  = "↑ (more above)"
	MoreBelowText  = "↓ (more below)"
	defaultWidth   = 80
	defaultHeight  = 24
	headerLines    = 5 // title, blank, input, validation, blank
	footerLines    = 2 // blank, help
	containerLines = 2 // vertical padding of the main container
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Input           string // rendered text input
	ValidationError string
	Query           string // settled query, used for match highlighting

	Users         []domain.User
	SelectedIndex int
	VisibleStart  int
	VisibleEnd    int
	Loading       bool // first page pending
	FetchingMore  bool // a later page pending
	NoResults     bool
	Spinner       string
	StatusMessage string
	Toast         string
	HelpView      string
}

// ListHeight returns how many lines the result list may occupy for a
// terminal of the given height.
func ListHeight(height int, toastVisible bool) int {
	if height <= 0 {
		height = defaultHeight
	}
	h := height - containerLines - headerLines - footerLines
	if toastVisible {
		h -= 3 // bordered one-line box
	}
	if h < 1 {
		h = 1
	}
	return h
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	userRender *UserRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		userRender: NewUserRenderer(styles),
	}
}

// Styles exposes the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = defaultWidth
	}
	termHeight := state.Height
	if termHeight <= 0 {
		termHeight = defaultHeight
	}
	innerWidth := termWidth - 4 // horizontal padding of the main container

	content := &strings.Builder{}
	content.WriteString(r.renderTitle(state, innerWidth))
	content.WriteString("\n\n")

	content.WriteString(r.styles.Prompt.Render("> "))
	content.WriteString(state.Input)
	content.WriteString("\n")
	if state.ValidationError != "" {
		content.WriteString(r.styles.ValidationError.Render(state.ValidationError))
	}
	content.WriteString("\n\n")

	content.WriteString(r.renderList(state, innerWidth))

	// Push toast and help to the bottom
	var bottom []string
	if state.Toast != "" {
		box := r.styles.Toast.Render(state.Toast)
		bottom = append(bottom, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Right, box))
	}
	bottom = append(bottom, "")
	helpText := state.HelpView
	if state.StatusMessage != "" {
		helpText = r.styles.Dim.Render(state.StatusMessage)
	}
	bottom = append(bottom, r.styles.Help.Render(helpText))
	footer := strings.Join(bottom, "\n")

	currentLines := strings.Count(content.String(), "\n") + 1
	footerHeight := strings.Count(footer, "\n") + 1
	availableLines := termHeight - containerLines
	if paddingNeeded := availableLines - currentLines - footerHeight; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main.MaxHeight(termHeight)
	return mainStyle.Render(content.String())
}

// renderTitle renders the title with right-aligned loading indicators
func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render(AppTitle)

	indicator := ""
	switch {
	case state.Loading:
		indicator = fmt.Sprintf("%s %s", state.Spinner, SearchingText)
	case state.FetchingMore:
		indicator = fmt.Sprintf("%s %s", state.Spinner, LoadingMore)
	}
	if indicator == "" {
		return logo
	}

	rightContent := r.styles.StatusLoading.Render(indicator)
	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

// renderList renders the visible window of result rows with scroll indicators
func (r *Renderer) renderList(state ViewState, width int) string {
	if state.NoResults {
		return r.styles.Dim.Render(NoResultsText)
	}
	if len(state.Users) == 0 {
		if state.Loading {
			return r.styles.Dim.Render(SearchingText)
		}
		return ""
	}

	start, end := state.VisibleStart, state.VisibleEnd
	if start < 0 {
		start = 0
	}
	if end > len(state.Users) {
		end = len(state.Users)
	}

	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(MoreAboveText))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.userRender.RenderUser(state.Users[i], i == state.SelectedIndex, state.Query, width))
	}
	if end < len(state.Users) {
		lines = append(lines, r.styles.Scroll.Render(MoreBelowText))
	}
	return strings.Join(lines, "\n")
}
