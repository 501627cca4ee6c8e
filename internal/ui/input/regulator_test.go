package input

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDelay = time.Millisecond

func settleOf(t *testing.T, cmd tea.Cmd) SettleMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(SettleMsg)
	require.True(t, ok, "expected a SettleMsg")
	return msg
}

func typeRunes(r *Regulator, s string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, ch := range s {
		cmds = append(cmds, r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ch}}))
	}
	return cmds
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate("", 3))
	assert.Equal(t, "Type at least 3 characters", Validate("a", 3))
	assert.Equal(t, "Type at least 3 characters", Validate("ab", 3))
	assert.Empty(t, Validate("abc", 3))
	assert.Empty(t, Validate("octocat", 3))
	// counted in characters, not bytes
	assert.Equal(t, "Type at least 3 characters", Validate("éé", 3))
	assert.Empty(t, Validate("ééé", 3))
}

func TestShortInputSchedulesNothing(t *testing.T) {
	r := New(3, testDelay)

	assert.Nil(t, r.Change("ab"))
	assert.False(t, r.Pending())
	assert.Equal(t, "Type at least 3 characters", r.ValidationError())
	assert.Empty(t, r.Settled())
}

func TestRapidChangesCollapseToLastValue(t *testing.T) {
	r := New(3, testDelay)

	var msgs []SettleMsg
	for _, v := range []string{"oct", "octo", "octoc", "octocat"} {
		msgs = append(msgs, settleOf(t, r.Change(v)))
	}

	var emitted []string
	for _, m := range msgs {
		if v, ok := r.Fire(m); ok {
			emitted = append(emitted, v)
		}
	}
	assert.Equal(t, []string{"octocat"}, emitted)
	assert.Equal(t, "octocat", r.Settled())
	assert.False(t, r.Pending())
}

func TestSettleFiresOnlyOnce(t *testing.T) {
	r := New(3, testDelay)
	msg := settleOf(t, r.Change("octocat"))

	_, ok := r.Fire(msg)
	require.True(t, ok)
	_, ok = r.Fire(msg)
	assert.False(t, ok)
}

func TestInvalidChangeCancelsPendingSettle(t *testing.T) {
	r := New(3, testDelay)
	msg := settleOf(t, r.Change("octo"))

	assert.Nil(t, r.Change("oc"))
	_, ok := r.Fire(msg)
	assert.False(t, ok, "a value that became invalid must not settle")
	assert.Empty(t, r.Settled())
}

func TestEmptyValueSettlesImmediately(t *testing.T) {
	r := New(3, time.Hour)
	msg := settleOf(t, r.Change("octocat"))
	_, ok := r.Fire(msg)
	require.True(t, ok)

	pending := r.Change("torvalds")
	require.NotNil(t, pending)

	assert.Nil(t, r.Change(""), "no delay window for an empty value")
	assert.Empty(t, r.Settled())
	assert.False(t, r.Pending())
	assert.Empty(t, r.ValidationError())
}

func TestClearResetsImmediately(t *testing.T) {
	r := New(3, testDelay)
	typeRunes(r, "octocat")
	require.Equal(t, "octocat", r.Value())
	msg := settleOf(t, r.Change("octocat"))

	r.Clear()
	assert.Empty(t, r.Value())
	assert.Empty(t, r.Settled())
	assert.False(t, r.Pending())

	_, ok := r.Fire(msg)
	assert.False(t, ok, "a settle scheduled before clear is discarded")
}

func TestUpdateTracksTextInput(t *testing.T) {
	r := New(3, testDelay)

	typeRunes(r, "ab")
	assert.Equal(t, "ab", r.Value())
	assert.Equal(t, "Type at least 3 characters", r.ValidationError())
	assert.False(t, r.Pending())

	typeRunes(r, "c")
	assert.Empty(t, r.ValidationError())
	assert.True(t, r.Pending())

	// a message that does not change the value schedules nothing new
	before := r.tag
	r.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, before, r.tag)
}

func TestBackspaceToEmptySettlesEmpty(t *testing.T) {
	r := New(3, testDelay)
	r.Prime("abc")
	require.Equal(t, "abc", r.Settled())

	for i := 0; i < 3; i++ {
		r.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	assert.Empty(t, r.Value())
	assert.Empty(t, r.Settled())
}

func TestPrime(t *testing.T) {
	r := New(3, testDelay)
	assert.True(t, r.Prime("octocat"))
	assert.Equal(t, "octocat", r.Value())
	assert.Equal(t, "octocat", r.Settled())

	r = New(3, testDelay)
	assert.False(t, r.Prime("ab"))
	assert.Equal(t, "ab", r.Value())
	assert.Empty(t, r.Settled())
	assert.NotEmpty(t, r.ValidationError())
}
