// Package tui implements the interactive questionnaire: an intro screen
// for role selection, a form screen collecting devices, activities, habits,
// and AI usage, and a results screen with the community comparison.
package tui

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/frabecrazy/digital-footprint/internal/community"
	"github.com/frabecrazy/digital-footprint/internal/footprint"
	"github.com/frabecrazy/digital-footprint/internal/session"
	"github.com/frabecrazy/digital-footprint/internal/tips"
)

// rowKind identifies what a focusable form row edits.
type rowKind int

const (
	rowDeviceAdd rowKind = iota
	rowDeviceField
	rowActivity
	rowHabit
	rowAITask
)

// Device row fields, in display order.
const (
	fieldYears = iota
	fieldCondition
	fieldOwnership
	fieldEndOfLife
)

// Habit row fields, in display order.
const (
	habitPlainEmails = iota
	habitAttachmentEmails
	habitCloudStorage
	habitWiFiHours
	habitPages
	habitIdle
	habitFieldCount
)

// row is one focusable line on the form screen.
type row struct {
	kind   rowKind
	device int    // device index for rowDeviceField
	field  int    // device or habit field
	label  string // activity or AI task key
}

// resultsMsg carries the outcome of finalizing a submission.
type resultsMsg struct {
	result      footprint.EmissionResult
	saveWarning string
	medians     community.Medians
	noData      bool
}

const defaultTipCount = 3

// Model is the Bubble Tea model for the questionnaire.
type Model struct {
	sess   *session.Session
	calc   *footprint.Calculator
	stats  *community.Service
	picker *tips.Picker
	log    zerolog.Logger

	// Intro screen.
	roles      []string
	roleCursor int

	// Form screen.
	rows        []row
	cursor      int
	deviceTypes []string
	deviceIdx   int
	eolChoices  []string
	habits      footprint.HabitProfile
	activities  map[string]float64
	aiCounts    map[string]int

	// Numeric editing.
	input   textinput.Model
	editing bool

	// Results screen.
	result      footprint.EmissionResult
	medians     community.Medians
	noData      bool
	saveWarning string
	shownTips   []string

	calculating bool
	flash       string

	width  int
	height int
}

// New creates a questionnaire model. The random source drives tip
// selection and is injected for reproducible tests.
func New(calc *footprint.Calculator, stats *community.Service, rng *rand.Rand, log zerolog.Logger) *Model {
	input := textinput.New()
	input.CharLimit = 8
	input.Width = 8

	return &Model{
		sess:        session.New(),
		calc:        calc,
		stats:       stats,
		picker:      tips.NewPicker(rng),
		log:         log,
		roles:       footprint.Roles(),
		deviceTypes: sortedKeys(footprint.DeviceFootprints),
		eolChoices:  sortedKeys(footprint.EndOfLifeModifiers),
		activities:  map[string]float64{},
		aiCounts:    map[string]int{},
		input:       input,
		width:       100,
		height:      30,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resultsMsg:
		m.calculating = false
		m.result = msg.result
		m.medians = msg.medians
		m.noData = msg.noData
		m.saveWarning = msg.saveWarning
		m.shownTips = m.picker.Pick(defaultTipCount)
		if err := m.sess.Finalize(msg.result); err != nil {
			m.flash = err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.sess.Screen() {
		case session.ScreenIntro:
			return m.updateIntro(msg)
		case session.ScreenForm:
			return m.updateForm(msg)
		case session.ScreenResults:
			return m.updateResults(msg)
		}
	}
	return m, nil
}

func (m *Model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.roleCursor > 0 {
			m.roleCursor--
		}
	case "down", "j":
		if m.roleCursor < len(m.roles)-1 {
			m.roleCursor++
		}
	case "enter":
		if err := m.sess.SelectRole(m.roles[m.roleCursor]); err != nil {
			m.flash = err.Error()
			return m, nil
		}
		if err := m.sess.Start(); err != nil {
			m.flash = err.Error()
			return m, nil
		}
		m.flash = ""
		m.rebuildRows()
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEdit(msg)
	}
	if m.calculating {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "left", "h":
		m.cycle(-1)
	case "right", "l":
		m.cycle(1)
	case "enter":
		return m.activateRow()
	case "d":
		m.sess.RemoveAllDevices()
		m.rebuildRows()
		m.flash = "all devices removed"
	case "c":
		m.calculating = true
		m.flash = ""
		return m, m.finalizeCmd()
	}
	return m, nil
}

// activateRow handles enter on the focused row: adds a device or opens the
// numeric editor for value rows.
func (m *Model) activateRow() (tea.Model, tea.Cmd) {
	if len(m.rows) == 0 {
		return m, nil
	}
	r := m.rows[m.cursor]

	switch r.kind {
	case rowDeviceAdd:
		id, err := m.sess.AddDevice(m.deviceTypes[m.deviceIdx])
		if err != nil {
			m.flash = err.Error()
			return m, nil
		}
		m.flash = id + " added"
		m.rebuildRows()
		return m, nil

	case rowDeviceField:
		if r.field == fieldYears {
			return m.startEdit(formatYears(m.deviceEntry(r.device).Years))
		}
		m.cycle(1)
		return m, nil

	case rowActivity:
		return m.startEdit(trimFloat(m.activities[r.label]))

	case rowAITask:
		return m.startEdit(strconv.Itoa(m.aiCounts[r.label]))

	case rowHabit:
		switch r.field {
		case habitWiFiHours:
			return m.startEdit(trimFloat(m.habits.WiFiHoursPerDay))
		case habitPages:
			return m.startEdit(trimFloat(m.habits.PagesPerDay))
		default:
			m.cycle(1)
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) startEdit(current string) (tea.Model, tea.Cmd) {
	m.editing = true
	m.input.SetValue(current)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commitEdit()
		m.editing = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitEdit parses and clamps the edited value into the focused row.
func (m *Model) commitEdit() {
	r := m.rows[m.cursor]
	raw := m.input.Value()

	switch r.kind {
	case rowDeviceField: // years
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.flash = "not a number: " + raw
			return
		}
		entry := m.deviceEntry(r.device)
		entry.Years = footprint.ClampYears(v)
		m.updateDevice(r.device, entry)

	case rowActivity:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 24 {
			m.flash = "hours must be between 0 and 24"
			return
		}
		m.activities[r.label] = v
		m.sess.SetHours(r.label, v)

	case rowAITask:
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 1000 {
			m.flash = "queries must be between 0 and 1000"
			return
		}
		m.aiCounts[r.label] = v
		m.sess.SetAIQueries(r.label, v)

	case rowHabit:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			m.flash = "not a valid value: " + raw
			return
		}
		if r.field == habitWiFiHours {
			if v > 24 {
				v = 24
			}
			m.habits.WiFiHoursPerDay = v
		} else {
			m.habits.PagesPerDay = v
		}
		m.sess.SetHabits(m.habits)
	}
	m.flash = ""
}

// cycle steps the focused row's discrete choice by delta.
func (m *Model) cycle(delta int) {
	if len(m.rows) == 0 {
		return
	}
	r := m.rows[m.cursor]

	switch r.kind {
	case rowDeviceAdd:
		m.deviceIdx = wrap(m.deviceIdx+delta, len(m.deviceTypes))

	case rowDeviceField:
		entry := m.deviceEntry(r.device)
		switch r.field {
		case fieldCondition:
			if entry.Condition == footprint.ConditionNew {
				entry.Condition = footprint.ConditionUsed
			} else {
				entry.Condition = footprint.ConditionNew
			}
		case fieldOwnership:
			if entry.Ownership == footprint.OwnershipPersonal {
				entry.Ownership = footprint.OwnershipShared
			} else {
				entry.Ownership = footprint.OwnershipPersonal
			}
		case fieldEndOfLife:
			entry.EndOfLife = cycleChoice(m.eolChoices, entry.EndOfLife, delta)
		}
		m.updateDevice(r.device, entry)

	case rowHabit:
		switch r.field {
		case habitPlainEmails:
			m.habits.PlainEmails = footprint.VolumeBucket(wrap(int(m.habits.PlainEmails)+delta, 5))
		case habitAttachmentEmails:
			m.habits.AttachmentEmails = footprint.VolumeBucket(wrap(int(m.habits.AttachmentEmails)+delta, 5))
		case habitCloudStorage:
			m.habits.CloudStorage = footprint.StorageBucket(wrap(int(m.habits.CloudStorage)+delta, 5))
		case habitIdle:
			m.habits.Idle = footprint.IdleBehavior(wrap(int(m.habits.Idle)+delta, 3))
		}
		m.sess.SetHabits(m.habits)
	}
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "enter":
		return m, tea.Quit
	case "a":
		if err := m.sess.Restart(); err != nil {
			m.flash = err.Error()
			return m, nil
		}
		m.flash = ""
		m.rebuildRows()
	}
	return m, nil
}

// finalizeCmd computes the result, saves it best-effort, and loads the
// community medians off the update loop.
func (m *Model) finalizeCmd() tea.Cmd {
	sub := m.sess.Submission()
	return func() tea.Msg {
		ctx := context.Background()

		result, err := m.calc.Estimate(sub)
		if err != nil {
			// Role is validated on the intro screen; reaching this means
			// the factor tables changed underneath us.
			m.log.Warn().Err(err).Msg("estimate failed")
			return resultsMsg{noData: true}
		}

		msg := resultsMsg{result: result}
		if err := m.stats.Save(ctx, result, time.Now().UTC()); err != nil {
			msg.saveWarning = "could not save your result to the community store"
		}

		medians, err := m.stats.Medians(ctx)
		if err != nil {
			msg.noData = true
		} else {
			msg.medians = medians
		}
		return msg
	}
}

// rebuildRows lays out the form rows for the current session state.
func (m *Model) rebuildRows() {
	rows := []row{{kind: rowDeviceAdd}}

	for i := range m.sess.Devices() {
		for _, f := range []int{fieldYears, fieldCondition, fieldOwnership, fieldEndOfLife} {
			rows = append(rows, row{kind: rowDeviceField, device: i, field: f})
		}
	}

	for _, activity := range sortedKeys(footprint.ActivityFactors[m.sess.Role()]) {
		rows = append(rows, row{kind: rowActivity, label: activity})
	}

	for f := 0; f < habitFieldCount; f++ {
		rows = append(rows, row{kind: rowHabit, field: f})
	}

	for _, task := range sortedKeys(footprint.AITaskFactors) {
		rows = append(rows, row{kind: rowAITask, label: task})
	}

	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
}

func (m *Model) deviceEntry(i int) footprint.DeviceEntry {
	return m.sess.Devices()[i].Entry
}

func (m *Model) updateDevice(i int, entry footprint.DeviceEntry) {
	devices := m.sess.Devices()
	if err := m.sess.UpdateDevice(devices[i].ID, entry); err != nil {
		m.flash = err.Error()
	}
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func cycleChoice(choices []string, current string, delta int) string {
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	return choices[wrap(idx+delta, len(choices))]
}

func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
