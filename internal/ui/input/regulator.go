package input

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Placeholder shown in the empty search field
const Placeholder = "Type Github Username"

// maxQueryLength is the longest query the search API accepts
const maxQueryLength = 256

// SettleMsg is delivered when the quiet period after a change has elapsed.
// Only the message carrying the latest tag settles the query.
type SettleMsg struct {
	Tag   int
	Value string
}

// Validate returns the validation message for value, or "" when it is valid.
// An empty value is valid and means "no search".
func Validate(value string, minLength int) string {
	n := utf8.RuneCountInString(value)
	if n > 0 && n < minLength {
		return fmt.Sprintf("Type at least %d characters", minLength)
	}
	return ""
}

// Regulator turns raw keystrokes into a settled query. It owns the text
// input, validates every change and emits the value only after it has been
// stable for the configured delay.
type Regulator struct {
	textInput *textinput.Model
	minLength int
	delay     time.Duration

	tag           int
	pending       bool
	settled       string
	validationErr string
}

// New creates a regulator with a focused text input
func New(minLength int, delay time.Duration) *Regulator {
	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.CharLimit = maxQueryLength
	ti.Focus()

	return &Regulator{
		textInput: &ti,
		minLength: minLength,
		delay:     delay,
	}
}

// TextInput exposes the underlying input for rendering
func (r *Regulator) TextInput() *textinput.Model {
	return r.textInput
}

// Value returns the raw query
func (r *Regulator) Value() string {
	return r.textInput.Value()
}

// Settled returns the last settled query
func (r *Regulator) Settled() string {
	return r.settled
}

// Pending reports whether a settle is scheduled
func (r *Regulator) Pending() bool {
	return r.pending
}

// ValidationError returns the message for the current value, "" when valid
func (r *Regulator) ValidationError() string {
	return r.validationErr
}

// Update forwards a message to the text input and reacts if its value changed
func (r *Regulator) Update(msg tea.Msg) tea.Cmd {
	before := r.textInput.Value()

	ti, cmd := r.textInput.Update(msg)
	*r.textInput = ti

	if ti.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, r.Change(ti.Value()))
}

// Change handles a new raw value. Invalid values cancel any scheduled settle
// and schedule nothing. An empty value settles immediately. Anything else is
// settled after the delay unless another change arrives first.
func (r *Regulator) Change(value string) tea.Cmd {
	r.tag++
	r.pending = false
	r.validationErr = Validate(value, r.minLength)

	if r.validationErr != "" {
		return nil
	}
	if value == "" {
		r.settled = ""
		return nil
	}

	r.pending = true
	tag := r.tag
	return tea.Tick(r.delay, func(time.Time) tea.Msg {
		return SettleMsg{Tag: tag, Value: value}
	})
}

// Fire applies a settle message. It returns the settled value and true when
// the message is the live one; stale messages return false.
func (r *Regulator) Fire(msg SettleMsg) (string, bool) {
	if !r.pending || msg.Tag != r.tag {
		return "", false
	}
	r.pending = false
	r.settled = msg.Value
	return msg.Value, true
}

// Prime sets the input to value and, when valid, settles it right away
func (r *Regulator) Prime(value string) bool {
	r.textInput.SetValue(value)
	r.tag++
	r.pending = false
	r.validationErr = Validate(value, r.minLength)
	if r.validationErr != "" {
		return false
	}
	r.settled = value
	return true
}

// Clear resets raw and settled values immediately and drops any scheduled
// settle.
func (r *Regulator) Clear() {
	r.tag++
	r.pending = false
	r.settled = ""
	r.validationErr = ""
	r.textInput.Reset()
}
