package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/frameloop/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActionFor(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey("s"), core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"f", runeKey("f"), core.ActionShoot},
		{"z", runeKey("z"), core.ActionShoot},
		{"pause is a host key", runeKey("p"), core.ActionNone},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.ActionFor(tt.msg))
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionDifficultyPrev},
		{runeKey("l"), MenuActionDifficultyNext},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, MapKeyToMenuAction(tt.msg))
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	keys := DefaultKeyMap()
	n := 0
	for _, column := range keys.FullHelp() {
		n += len(column)
	}
	assert.Equal(t, 12, n)
	assert.NotEmpty(t, keys.ShortHelp())
}
