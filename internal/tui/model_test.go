package tui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frabecrazy/digital-footprint/internal/community"
	"github.com/frabecrazy/digital-footprint/internal/footprint"
	"github.com/frabecrazy/digital-footprint/internal/session"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	store := community.NewCSVStore(filepath.Join(t.TempDir(), "community.csv"))
	stats := community.NewService(store, zerolog.Nop())
	return New(footprint.NewCalculator(), stats, rand.New(rand.NewSource(1)), zerolog.Nop())
}

func press(m tea.Model, key string) tea.Model {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next
}

func TestModel_IntroToForm(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "select your role")
	assert.Contains(t, view, "Student")

	next := press(m, "enter").(*Model)
	assert.Equal(t, session.ScreenForm, next.sess.Screen())
	assert.Equal(t, "Student", next.sess.Role())
	assert.Contains(t, next.View(), "Digital Usage Form")
}

func TestModel_IntroRoleCursor(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "down").(*Model)
	m = press(m, "enter").(*Model)
	assert.Equal(t, "Professor", m.sess.Role())
}

func TestModel_AddDeviceFromForm(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter").(*Model) // intro -> form, cursor on "Add a device"

	m = press(m, "enter").(*Model) // add the focused device type
	devices := m.sess.Devices()
	require.Len(t, devices, 1)
	assert.Contains(t, m.View(), devices[0].Entry.Type)

	m = press(m, "d").(*Model)
	assert.Empty(t, m.sess.Devices())
}

func TestModel_CalculateToResults(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter").(*Model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = next.(*Model)
	require.NotNil(t, cmd)

	msg := cmd()
	res, ok := msg.(resultsMsg)
	require.True(t, ok)

	next, _ = m.Update(res)
	m = next.(*Model)

	assert.Equal(t, session.ScreenResults, m.sess.Screen())
	view := m.View()
	assert.Contains(t, view, "Your Digital Carbon Footprint")
	assert.Contains(t, view, "Tips")
}

func TestModel_ResultsShowMediansFromStore(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter").(*Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	msg := cmd().(resultsMsg)

	// The just-saved submission is itself the first community record.
	assert.False(t, msg.noData)
	assert.Contains(t, msg.medians, community.ColTotal)
}

func TestModel_RestartKeepsForm(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter").(*Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	next, _ := m.Update(cmd())
	m = next.(*Model)
	require.Equal(t, session.ScreenResults, m.sess.Screen())

	m = press(m, "a").(*Model)
	assert.Equal(t, session.ScreenForm, m.sess.Screen())
}

func TestModel_EditActivityHours(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter").(*Model)

	// Move to the first activity row (row 0 is the device picker and no
	// devices are added yet).
	var activityIdx int
	for i, r := range m.rows {
		if r.kind == rowActivity {
			activityIdx = i
			break
		}
	}
	m.cursor = activityIdx
	label := m.rows[activityIdx].label

	m = press(m, "enter").(*Model) // open editor
	require.True(t, m.editing)

	m.input.SetValue("2")
	m = press(m, "enter").(*Model) // commit
	assert.False(t, m.editing)
	assert.Equal(t, 2.0, m.sess.Submission().Activities[label])
}

func TestModel_EditRejectsOutOfRangeHours(t *testing.T) {
	m := newTestModel(t)
	m = press(m, "enter").(*Model)

	for i, r := range m.rows {
		if r.kind == rowActivity {
			m.cursor = i
			break
		}
	}
	m = press(m, "enter").(*Model)
	m.input.SetValue("30")
	m = press(m, "enter").(*Model)

	assert.True(t, strings.Contains(m.flash, "hours"))
	assert.Empty(t, m.sess.Submission().Activities)
}
