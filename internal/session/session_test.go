package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frabecrazy/digital-footprint/internal/footprint"
)

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := New()
	require.NoError(t, s.SelectRole("Student"))
	require.NoError(t, s.Start())
	return s
}

func TestSession_Flow(t *testing.T) {
	s := New()
	assert.Equal(t, ScreenIntro, s.Screen())

	// Starting without a role is a user-flow error.
	assert.ErrorIs(t, s.Start(), ErrNoRole)

	require.NoError(t, s.SelectRole("Professor"))
	require.NoError(t, s.Start())
	assert.Equal(t, ScreenForm, s.Screen())

	require.NoError(t, s.Finalize(footprint.EmissionResult{Total: 10}))
	assert.Equal(t, ScreenResults, s.Screen())

	result, err := s.Result()
	require.NoError(t, err)
	assert.InDelta(t, 10, result.Total, 1e-9)

	require.NoError(t, s.Restart())
	assert.Equal(t, ScreenForm, s.Screen())
	_, err = s.Result()
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestSession_SelectRole(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.SelectRole("Janitor"), ErrUnknownRole)
	require.NoError(t, s.SelectRole("Staff Member"))
	assert.Equal(t, "Staff Member", s.Role())
}

func TestSession_TransitionsGuardScreen(t *testing.T) {
	s := startedSession(t)

	// Intro-only operations fail once on the form.
	assert.ErrorIs(t, s.SelectRole("Student"), ErrWrongScreen)
	assert.ErrorIs(t, s.Start(), ErrWrongScreen)
	assert.ErrorIs(t, s.Restart(), ErrWrongScreen)
}

func TestSession_DeviceIDsAllowDuplicateTypes(t *testing.T) {
	s := startedSession(t)

	first, err := s.AddDevice("Laptop Computer")
	require.NoError(t, err)
	second, err := s.AddDevice("Laptop Computer")
	require.NoError(t, err)
	third, err := s.AddDevice("Smartphone")
	require.NoError(t, err)

	assert.Equal(t, "Laptop Computer_0", first)
	assert.Equal(t, "Laptop Computer_1", second)
	assert.Equal(t, "Smartphone_0", third)
	assert.Len(t, s.Devices(), 3)
}

func TestSession_AddDeviceDefaults(t *testing.T) {
	s := startedSession(t)

	id, err := s.AddDevice("Tablet")
	require.NoError(t, err)

	devices := s.Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, id, devices[0].ID)
	assert.Equal(t, 1.0, devices[0].Entry.Years)
	assert.Equal(t, footprint.ConditionNew, devices[0].Entry.Condition)
	assert.Equal(t, footprint.OwnershipPersonal, devices[0].Entry.Ownership)
	assert.Equal(t, DefaultEndOfLife, devices[0].Entry.EndOfLife)
}

func TestSession_UpdateDeviceKeepsType(t *testing.T) {
	s := startedSession(t)

	id, err := s.AddDevice("Printer")
	require.NoError(t, err)

	require.NoError(t, s.UpdateDevice(id, footprint.DeviceEntry{
		Type:      "Desktop Computer", // ignored: type is fixed at add time
		Years:     5,
		Condition: footprint.ConditionUsed,
		Ownership: footprint.OwnershipShared,
		EndOfLife: "I store it at home, unused",
	}))

	devices := s.Devices()
	assert.Equal(t, "Printer", devices[0].Entry.Type)
	assert.Equal(t, 5.0, devices[0].Entry.Years)
	assert.Equal(t, footprint.ConditionUsed, devices[0].Entry.Condition)
}

func TestSession_RemoveAllDevices(t *testing.T) {
	s := startedSession(t)

	_, err := s.AddDevice("Headphones")
	require.NoError(t, err)
	_, err = s.AddDevice("Router/Modem")
	require.NoError(t, err)

	s.RemoveAllDevices()
	assert.Empty(t, s.Devices())

	// Ordinals restart after a wipe, matching a fresh list.
	id, err := s.AddDevice("Headphones")
	require.NoError(t, err)
	assert.Equal(t, "Headphones_0", id)
}

func TestSession_SubmissionAssembly(t *testing.T) {
	s := startedSession(t)

	_, err := s.AddDevice("Laptop Computer")
	require.NoError(t, err)
	s.SetHours("Web browsing", 2)
	s.SetAIQueries("Generate images", 3)
	s.SetHabits(footprint.HabitProfile{WiFiHoursPerDay: 6})

	sub := s.Submission()
	assert.Equal(t, "Student", sub.Role)
	require.Len(t, sub.Devices, 1)
	assert.Equal(t, 2.0, sub.Activities["Web browsing"])
	assert.Equal(t, 3, sub.AIUsage["Generate images"])
	assert.Equal(t, 6.0, sub.Habits.WiFiHoursPerDay)
}
