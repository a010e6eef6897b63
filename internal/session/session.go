// Package session holds the questionnaire state for one respondent and the
// three-screen flow that moves it from introduction to results. The
// calculators stay pure; everything mutable lives here, owned explicitly
// by the caller rather than by package-level state.
package session

import (
	"errors"
	"fmt"

	"github.com/frabecrazy/digital-footprint/internal/footprint"
)

// Screen identifies one of the three questionnaire screens.
type Screen int

const (
	// ScreenIntro greets the respondent and asks for their role.
	ScreenIntro Screen = iota
	// ScreenForm collects devices, activity hours, habits, and AI usage.
	ScreenForm
	// ScreenResults shows the finalized result and community comparison.
	ScreenResults
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenIntro:
		return "intro"
	case ScreenForm:
		return "form"
	case ScreenResults:
		return "results"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// Errors surfaced as user-flow warnings by the UI layers.
var (
	ErrWrongScreen = errors.New("session: operation not valid on current screen")
	ErrNoRole      = errors.New("session: no role selected")
	ErrUnknownRole = errors.New("session: unknown role")
	ErrNoResult    = errors.New("session: no finalized result")
)

// DefaultEndOfLife is the disposal choice a freshly added device starts
// with.
const DefaultEndOfLife = "I bring it to a certified e-waste collection center"

// Device is one in-progress device entry, identified by a synthetic id so
// the respondent can own several devices of the same type.
type Device struct {
	ID    string
	Entry footprint.DeviceEntry
}

// Session is the explicit context for one respondent's pass through the
// questionnaire. Zero value is not usable; create with New.
type Session struct {
	screen Screen
	role   string

	devices []Device

	activities footprint.ActivityProfile
	habits     footprint.HabitProfile
	aiUsage    footprint.AIUsageProfile

	result *footprint.EmissionResult
}

// New creates a session positioned on the intro screen.
func New() *Session {
	return &Session{
		screen:     ScreenIntro,
		activities: footprint.ActivityProfile{},
		aiUsage:    footprint.AIUsageProfile{},
	}
}

// Screen returns the current screen.
func (s *Session) Screen() Screen { return s.screen }

// Role returns the selected role, empty until SelectRole succeeds.
func (s *Session) Role() string { return s.role }

// SelectRole records the respondent's role. Only valid on the intro
// screen; the role must be one the factor tables define.
func (s *Session) SelectRole(role string) error {
	if s.screen != ScreenIntro {
		return ErrWrongScreen
	}
	if _, ok := footprint.ActivityFactors[role]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	s.role = role
	return nil
}

// Start moves intro → form. A role must have been selected first.
func (s *Session) Start() error {
	if s.screen != ScreenIntro {
		return ErrWrongScreen
	}
	if s.role == "" {
		return ErrNoRole
	}
	s.screen = ScreenForm
	return nil
}

// AddDevice appends a device of the given type with default settings and
// returns its synthetic id. Ids combine the type with an ordinal, so two
// laptops become "Laptop Computer_0" and "Laptop Computer_1".
func (s *Session) AddDevice(deviceType string) (string, error) {
	if s.screen != ScreenForm {
		return "", ErrWrongScreen
	}

	ordinal := 0
	for _, d := range s.devices {
		if d.Entry.Type == deviceType {
			ordinal++
		}
	}
	id := fmt.Sprintf("%s_%d", deviceType, ordinal)

	s.devices = append(s.devices, Device{
		ID: id,
		Entry: footprint.DeviceEntry{
			Type:      deviceType,
			Years:     1.0,
			Condition: footprint.ConditionNew,
			Ownership: footprint.OwnershipPersonal,
			EndOfLife: DefaultEndOfLife,
		},
	})
	return id, nil
}

// UpdateDevice replaces the entry for the device with the given id. The
// device type itself is fixed at add time.
func (s *Session) UpdateDevice(id string, entry footprint.DeviceEntry) error {
	if s.screen != ScreenForm {
		return ErrWrongScreen
	}
	for i := range s.devices {
		if s.devices[i].ID == id {
			entry.Type = s.devices[i].Entry.Type
			s.devices[i].Entry = entry
			return nil
		}
	}
	return fmt.Errorf("session: no device %q", id)
}

// RemoveAllDevices clears the device list.
func (s *Session) RemoveAllDevices() {
	s.devices = nil
}

// Devices returns the device list in add order.
func (s *Session) Devices() []Device {
	out := make([]Device, len(s.devices))
	copy(out, s.devices)
	return out
}

// SetHours records daily hours for one activity.
func (s *Session) SetHours(activity string, hours float64) {
	s.activities[activity] = hours
}

// SetHabits replaces the auxiliary habit selections.
func (s *Session) SetHabits(habits footprint.HabitProfile) {
	s.habits = habits
}

// SetAIQueries records the daily query count for one AI task.
func (s *Session) SetAIQueries(task string, queries int) {
	s.aiUsage[task] = queries
}

// Submission assembles the sanitized calculator input from the current
// state.
func (s *Session) Submission() footprint.Submission {
	devices := make([]footprint.DeviceEntry, 0, len(s.devices))
	for _, d := range s.devices {
		devices = append(devices, d.Entry)
	}
	return footprint.Submission{
		Role:       s.role,
		Devices:    devices,
		Activities: s.activities,
		Habits:     s.habits,
		AIUsage:    s.aiUsage,
	}
}

// Finalize stores the computed result and moves form → results.
func (s *Session) Finalize(result footprint.EmissionResult) error {
	if s.screen != ScreenForm {
		return ErrWrongScreen
	}
	s.result = &result
	s.screen = ScreenResults
	return nil
}

// Result returns the finalized result.
func (s *Session) Result() (footprint.EmissionResult, error) {
	if s.result == nil {
		return footprint.EmissionResult{}, ErrNoResult
	}
	return *s.result, nil
}

// Restart moves results → form for another pass, keeping the entered
// inputs but discarding the finalized result.
func (s *Session) Restart() error {
	if s.screen != ScreenResults {
		return ErrWrongScreen
	}
	s.result = nil
	s.screen = ScreenForm
	return nil
}
