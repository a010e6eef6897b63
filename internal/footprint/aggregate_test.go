package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCalculator_StudentScenario pins the reference scenario: one student,
// one new personal laptop kept two years and brought to an e-waste center,
// two hours of web browsing per day, no AI usage.
func TestCalculator_StudentScenario(t *testing.T) {
	calc := NewCalculator()

	result, err := calc.Estimate(Submission{
		Role: "Student",
		Devices: []DeviceEntry{{
			Type:      "Laptop Computer",
			Years:     2,
			Condition: ConditionNew,
			Ownership: OwnershipPersonal,
			EndOfLife: "I bring it to a certified e-waste collection center",
		}},
		Activities: ActivityProfile{"Web browsing": 2},
	})
	require.NoError(t, err)

	assert.InDelta(t, 339.9616, result.Devices, 1e-9)
	assert.InDelta(t, 13.2, result.DigitalActivities, 1e-9)
	assert.Zero(t, result.AITools)
	assert.Zero(t, result.EWaste)
	assert.InDelta(t, 353.1616, result.Total, 1e-9)
}

func TestCalculator_UnknownRoleShortCircuits(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.Estimate(Submission{
		Role:       "Dean",
		Activities: ActivityProfile{"Web browsing": 2},
	})
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestCalculator_SplitLifespanSeparatesEWaste(t *testing.T) {
	calc := &Calculator{Policy: PolicySplitLifespan, Days: 250}

	result, err := calc.Estimate(Submission{
		Role: "Professor",
		Devices: []DeviceEntry{{
			Type:      "Desktop Computer",
			Years:     4,
			Condition: ConditionNew,
			Ownership: OwnershipPersonal,
			EndOfLife: "I throw it away in general waste",
		}},
		Activities: ActivityProfile{},
	})
	require.NoError(t, err)

	assert.InDelta(t, 296.0/4, result.Devices, 1e-9)
	assert.InDelta(t, 296*0.0595/4, result.EWaste, 1e-9)
	assert.InDelta(t, result.Devices+result.EWaste, result.Total, 1e-9)
}

func TestCalculator_TotalSumsSubtotals(t *testing.T) {
	calc := NewCalculator()

	result, err := calc.Estimate(Submission{
		Role: "Staff Member",
		Devices: []DeviceEntry{
			{Type: "Smartphone", Years: 3, Condition: ConditionUsed, Ownership: OwnershipPersonal, EndOfLife: "I sell or donate it to someone else"},
			{Type: "Printer", Years: 5, Condition: ConditionNew, Ownership: OwnershipShared, EndOfLife: "I store it at home, unused"},
		},
		Activities: ActivityProfile{"Web browsing": 1, "Management software (e.g. SAP)": 4},
		Habits:     HabitProfile{PlainEmails: Volume11To25, WiFiHoursPerDay: 8, Idle: IdleTurnOff},
		AIUsage:    AIUsageProfile{"Summarize texts or articles": 3},
	})
	require.NoError(t, err)

	assert.InDelta(t, result.Devices+result.DigitalActivities+result.AITools, result.Total, 1e-9)
	assert.Positive(t, result.AITools)
}

func TestCalculator_DefaultDays(t *testing.T) {
	calc := &Calculator{} // zero value: combined policy, default days

	result, err := calc.Estimate(Submission{
		Role:       "Student",
		Activities: ActivityProfile{"Web browsing": 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1*DaysPerYear*0.0264, result.Total, 1e-9)
}
