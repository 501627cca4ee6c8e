package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"ghseek/internal/ui/state"
	"ghseek/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	width  int
	height int
	help   help.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState) *ViewModel {
	return &ViewModel{
		state: appState,
		help:  help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// BuildViewState creates a ViewState for rendering. The caller supplies the
// rendered widgets and the visible window of the list.
func (vm *ViewModel) BuildViewState(inputView, spinnerView string, keys help.KeyMap, start, end int) views.ViewState {
	vs := views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		Input:           inputView,
		ValidationError: vm.state.ValidationError,
		Query:           vm.state.SettledQuery,
		Users:           vm.state.Users(),
		SelectedIndex:   vm.state.SelectedIndex,
		VisibleStart:    start,
		VisibleEnd:      end,
		Loading:         vm.state.IsLoading(),
		FetchingMore:    vm.state.IsFetchingNextPage(),
		Spinner:         spinnerView,
		StatusMessage:   vm.state.StatusMessage,
		HelpView:        vm.help.View(keys),
	}
	if r := vm.state.Current(); r != nil {
		vs.NoResults = r.IsEmpty()
	}
	if vm.state.Toast != nil {
		vs.Toast = vm.state.Toast.Message
	}
	return vs
}
