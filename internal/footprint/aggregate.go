package footprint

// Calculator runs the full emission pipeline: devices, digital activities
// with auxiliary habits, and AI usage, aggregated into one EmissionResult.
type Calculator struct {
	// Policy selects the device accounting policy. Zero value is
	// PolicyCombined, the system of record.
	Policy DevicePolicy

	// Days is the annual day count used to annualize daily measurements.
	// Zero means DaysPerYear.
	Days float64
}

// NewCalculator creates a Calculator with the default policy and day count.
func NewCalculator() *Calculator {
	return &Calculator{Policy: PolicyCombined, Days: DaysPerYear}
}

func (c *Calculator) days() float64 {
	if c.Days <= 0 {
		return DaysPerYear
	}
	return c.Days
}

// Submission is the sanitized input of one completed questionnaire. The
// form layer validates numeric ranges before constructing it.
type Submission struct {
	Role       string
	Devices    []DeviceEntry
	Activities ActivityProfile
	Habits     HabitProfile
	AIUsage    AIUsageProfile
}

// Estimate computes the annual footprint for a submission. No rounding is
// applied; presentation layers round for display. Returns ErrUnknownRole
// when the submission names a role the factor tables do not define.
func (c *Calculator) Estimate(sub Submission) (EmissionResult, error) {
	days := c.days()

	activities, err := EstimateActivities(sub.Role, sub.Activities, days)
	if err != nil {
		return EmissionResult{}, err
	}
	activities += EstimateHabits(sub.Habits, days)

	var devices, ewaste float64
	for _, entry := range sub.Devices {
		em := EstimateDevice(entry, c.Policy)
		devices += em.Production
		ewaste += em.EndOfLife
	}

	ai := EstimateAIUsage(sub.AIUsage, days)

	return EmissionResult{
		Total:             devices + ewaste + activities + ai,
		Devices:           devices,
		DigitalActivities: activities,
		AITools:           ai,
		EWaste:            ewaste,
	}, nil
}
