package footprint

const (
	// MinDeviceYears is the shortest accepted device lifetime. Non-positive
	// lifetimes would make per-year amortization meaningless.
	MinDeviceYears = 0.1

	// MaxDeviceYears is the longest accepted device lifetime.
	MaxDeviceYears = 10.0

	// usedConditionModifier discounts the embodied footprint of a device
	// bought second-hand under PolicyCombined.
	usedConditionModifier = 0.7

	// sharedOwnershipModifier halves the attributed footprint of a device
	// shared with other people under PolicyCombined.
	sharedOwnershipModifier = 0.5
)

// DevicePolicy selects between the two device accounting policies.
type DevicePolicy int

const (
	// PolicyCombined attributes the full embodied footprint scaled by
	// condition, ownership, and years of use, and folds the end-of-life
	// adjustment into the same figure:
	//
	//	emission = footprint × conditionMod × years × ownershipMod + eolMod
	//
	// This is the system-of-record policy and the default.
	PolicyCombined DevicePolicy = iota

	// PolicySplitLifespan amortizes the embodied footprint over an adjusted
	// lifespan derived from condition and ownership, and keeps production
	// and end-of-life as separate per-year figures:
	//
	//	production = footprint / adjustedYears
	//	endOfLife  = footprint × eolMod / adjustedYears
	PolicySplitLifespan
)

// DeviceEmission holds the per-device output of the device calculator.
// Under PolicyCombined, Production carries the single combined figure and
// EndOfLife is zero.
type DeviceEmission struct {
	Production float64
	EndOfLife  float64
}

// Total returns the combined device contribution in kg CO2e.
func (d DeviceEmission) Total() float64 {
	return d.Production + d.EndOfLife
}

// ClampYears clips a device lifetime into the accepted range.
func ClampYears(years float64) float64 {
	if years < MinDeviceYears {
		return MinDeviceYears
	}
	if years > MaxDeviceYears {
		return MaxDeviceYears
	}
	return years
}

// EstimateDevice calculates the emission contribution of a single device
// under the given policy. Unknown device types and unknown end-of-life
// choices contribute zero. Pure, no side effects.
func EstimateDevice(entry DeviceEntry, policy DevicePolicy) DeviceEmission {
	footprint := DeviceFootprint(entry.Type)
	eolMod := EndOfLifeModifier(entry.EndOfLife)
	years := ClampYears(entry.Years)

	if policy == PolicySplitLifespan {
		adj := adjustedLifespan(years, entry.Condition, entry.Ownership)
		return DeviceEmission{
			Production: footprint / adj,
			EndOfLife:  footprint * eolMod / adj,
		}
	}

	conditionMod := 1.0
	if entry.Condition == ConditionUsed {
		conditionMod = usedConditionModifier
	}
	ownershipMod := 1.0
	if entry.Ownership == OwnershipShared {
		ownershipMod = sharedOwnershipModifier
	}

	return DeviceEmission{
		Production: footprint*conditionMod*years*ownershipMod + eolMod,
	}
}

// adjustedLifespan derives the amortization horizon used by
// PolicySplitLifespan. Second-hand devices already lived part of their
// life elsewhere and shared devices split their footprint across users, so
// both stretch the effective lifespan:
//
//	New/Personal  → years
//	Used/Personal → years × 1.5
//	New/Shared    → years × 3
//	Used/Shared   → years × 4.5
func adjustedLifespan(years float64, condition Condition, ownership Ownership) float64 {
	used := condition == ConditionUsed
	shared := ownership == OwnershipShared

	switch {
	case used && shared:
		return years * 4.5
	case shared:
		return years * 3
	case used:
		return years * 1.5
	default:
		return years
	}
}
