package footprint

// Condition describes whether the respondent was the first owner of a
// device.
type Condition string

const (
	// ConditionNew means the respondent bought the device new.
	ConditionNew Condition = "New"
	// ConditionUsed means the device was previously owned or refurbished.
	ConditionUsed Condition = "Used"
)

// Ownership describes whether a device is used by one person or shared.
type Ownership string

const (
	// OwnershipPersonal means the respondent is the only regular user.
	OwnershipPersonal Ownership = "Personal"
	// OwnershipShared means the device is shared with a household or team.
	OwnershipShared Ownership = "Shared"
)

// DeviceEntry describes one device a respondent owns and how they use it.
type DeviceEntry struct {
	// Type is a key into DeviceFootprints (e.g. "Laptop Computer").
	Type string

	// Years is the total expected years of use. Clamped to
	// [MinDeviceYears, MaxDeviceYears] before any calculation.
	Years float64

	Condition Condition
	Ownership Ownership

	// EndOfLife is a key into EndOfLifeModifiers.
	EndOfLife string
}

// ActivityProfile maps activity labels (scoped to a role) to daily hours.
type ActivityProfile map[string]float64

// AIUsageProfile maps AI task labels to daily query counts.
type AIUsageProfile map[string]int

// EmissionResult is the immutable outcome of one completed questionnaire,
// in kg CO2e per year. Subtotals may legitimately be slightly negative when
// end-of-life credits outweigh a small device footprint.
type EmissionResult struct {
	Total             float64
	Devices           float64
	DigitalActivities float64
	AITools           float64

	// EWaste holds the separate end-of-life subtotal produced by
	// PolicySplitLifespan. It is zero under PolicyCombined, where the
	// end-of-life term is folded into Devices.
	EWaste float64
}
