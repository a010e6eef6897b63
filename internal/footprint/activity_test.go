package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateActivities(t *testing.T) {
	profile := ActivityProfile{
		"Web browsing":                           2,
		"Online classes streaming or video call": 1.5,
	}

	got, err := EstimateActivities("Student", profile, 250)
	require.NoError(t, err)

	want := 2*250*0.0264 + 1.5*250*0.112
	assert.InDelta(t, want, got, 1e-9)
}

func TestEstimateActivities_UnknownRole(t *testing.T) {
	_, err := EstimateActivities("Visitor", ActivityProfile{"Web browsing": 2}, 250)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestEstimateActivities_UnknownActivityContributesZero(t *testing.T) {
	got, err := EstimateActivities("Professor", ActivityProfile{
		"Web browsing":       1,
		"Competitive gaming": 8, // not in the Professor table
	}, 250)
	require.NoError(t, err)
	assert.InDelta(t, 1*250*0.0264, got, 1e-9)
}

func TestEstimateActivities_LinearInHours(t *testing.T) {
	profile := ActivityProfile{
		"Web browsing":                       1.25,
		"MS Office (e.g. Excel, Word, PPT…)": 3,
	}
	doubled := ActivityProfile{}
	for k, v := range profile {
		doubled[k] = v * 2
	}

	base, err := EstimateActivities("Student", profile, 250)
	require.NoError(t, err)
	twice, err := EstimateActivities("Student", doubled, 250)
	require.NoError(t, err)

	assert.InDelta(t, base*2, twice, 1e-9)
}

func TestEstimateHabits(t *testing.T) {
	tests := []struct {
		name   string
		habits HabitProfile
		days   float64
		want   float64
	}{
		{
			name:   "zero profile contributes nothing",
			habits: HabitProfile{},
			days:   250,
			want:   0,
		},
		{
			name: "email terms use bucket midpoints",
			habits: HabitProfile{
				PlainEmails:      Volume4To10,
				AttachmentEmails: Volume1To3,
			},
			days: 250,
			want: 7*0.004*250 + 2*0.035*250,
		},
		{
			name:   "cloud storage is a standing footprint, not day-scaled",
			habits: HabitProfile{CloudStorage: Storage20To100GB},
			days:   250,
			want:   60 * 0.01,
		},
		{
			name: "wifi and printing scale with days",
			habits: HabitProfile{
				WiFiHoursPerDay: 6,
				PagesPerDay:     4,
			},
			days: 250,
			want: 6*0.00584*250 + 4*0.0045*250,
		},
		{
			name:   "leaving the computer on idle",
			habits: HabitProfile{Idle: IdleLeaveOn},
			days:   250,
			want:   0.012 * 16 * 250,
		},
		{
			name:   "turning the computer off",
			habits: HabitProfile{Idle: IdleTurnOff},
			days:   250,
			want:   0.002 * 16 * 250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateHabits(tt.habits, tt.days), 1e-9)
		})
	}
}

func TestEstimateHabits_IdleOrdering(t *testing.T) {
	on := EstimateHabits(HabitProfile{Idle: IdleLeaveOn}, 250)
	off := EstimateHabits(HabitProfile{Idle: IdleTurnOff}, 250)
	none := EstimateHabits(HabitProfile{Idle: IdleNoComputer}, 250)

	assert.Greater(t, on, off)
	assert.Greater(t, off, none)
	assert.Zero(t, none)
}
