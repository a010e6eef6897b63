package footprint

import "errors"

// ErrUnknownRole is returned when an activity profile is evaluated against
// a role the factor tables do not define. Callers surface it as a warning
// instead of computing a partial figure.
var ErrUnknownRole = errors.New("footprint: unknown role")

// Per-unit coefficients for the auxiliary habit terms, in kg CO2e.
const (
	// plainEmailFactor is kg CO2e per plain-text email sent.
	plainEmailFactor = 0.004

	// attachmentEmailFactor is kg CO2e per email with attachments.
	attachmentEmailFactor = 0.035

	// cloudStorageFactor is kg CO2e per GB of standing cloud storage.
	// Storage is a standing footprint and is not scaled by the day count.
	cloudStorageFactor = 0.01

	// wifiHourFactor is kg CO2e per hour connected to Wi-Fi.
	wifiHourFactor = 0.00584

	// printedPageFactor is kg CO2e per printed page.
	printedPageFactor = 0.0045

	// idleOnFactor is kg CO2e per standby hour for a computer left on idle.
	idleOnFactor = 0.012

	// idleOffFactor is kg CO2e per off-hour for a computer switched off
	// but still plugged in.
	idleOffFactor = 0.002

	// idleHoursPerDay is the non-use window a computer spends either idle
	// or switched off each day.
	idleHoursPerDay = 16.0
)

// VolumeBucket is a discrete daily-volume selection (emails sent). Buckets
// map to representative midpoints rather than exact counts.
type VolumeBucket int

const (
	VolumeNone     VolumeBucket = iota // 0 per day
	Volume1To3                         // midpoint 2
	Volume4To10                        // midpoint 7
	Volume11To25                       // midpoint 18
	VolumeOver25                       // midpoint 40
)

// volumeMidpoints maps each bucket to its representative daily count.
var volumeMidpoints = map[VolumeBucket]float64{
	VolumeNone:   0,
	Volume1To3:   2,
	Volume4To10:  7,
	Volume11To25: 18,
	VolumeOver25: 40,
}

// Count returns the representative daily count for the bucket. Unknown
// buckets resolve to zero.
func (b VolumeBucket) Count() float64 {
	return volumeMidpoints[b]
}

// StorageBucket is a discrete cloud-storage selection. Buckets map to
// representative sizes in GB.
type StorageBucket int

const (
	StorageUnder5GB   StorageBucket = iota // midpoint 2.5 GB
	Storage5To20GB                         // midpoint 12.5 GB
	Storage20To100GB                       // midpoint 60 GB
	Storage100To500GB                      // midpoint 300 GB
	StorageOver500GB                       // midpoint 750 GB
)

// storageMidpoints maps each bucket to its representative size in GB.
var storageMidpoints = map[StorageBucket]float64{
	StorageUnder5GB:   2.5,
	Storage5To20GB:    12.5,
	Storage20To100GB:  60,
	Storage100To500GB: 300,
	StorageOver500GB:  750,
}

// Gigabytes returns the representative stored volume for the bucket.
func (b StorageBucket) Gigabytes() float64 {
	return storageMidpoints[b]
}

// IdleBehavior is the three-way choice of what happens to the respondent's
// computer outside active use.
type IdleBehavior int

const (
	// IdleNoComputer contributes nothing.
	IdleNoComputer IdleBehavior = iota
	// IdleLeaveOn means the computer idles in standby overnight.
	IdleLeaveOn
	// IdleTurnOff means the computer is switched off outside use.
	IdleTurnOff
)

// HabitProfile carries the auxiliary habit selections that accompany the
// per-activity hours on the questionnaire form.
type HabitProfile struct {
	PlainEmails      VolumeBucket
	AttachmentEmails VolumeBucket
	CloudStorage     StorageBucket
	WiFiHoursPerDay  float64
	PagesPerDay      float64
	Idle             IdleBehavior
}

// EstimateActivities annualizes a role-scoped activity profile:
//
//	contribution = dailyHours × days × factor[role][activity]
//
// summed over every activity in the profile. Activities the role's table
// does not define contribute zero. An unrecognized role returns
// ErrUnknownRole and no figure. Pure, no side effects.
func EstimateActivities(role string, profile ActivityProfile, days float64) (float64, error) {
	factors, ok := ActivityFactors[role]
	if !ok {
		return 0, ErrUnknownRole
	}

	var total float64
	for activity, hours := range profile {
		total += hours * days * factors[activity]
	}
	return total, nil
}

// EstimateHabits annualizes the auxiliary habit selections. Each term is
// additive and independent; cloud storage is a standing footprint and is
// the only term not scaled by the day count.
func EstimateHabits(habits HabitProfile, days float64) float64 {
	total := habits.PlainEmails.Count() * plainEmailFactor * days
	total += habits.AttachmentEmails.Count() * attachmentEmailFactor * days
	total += habits.CloudStorage.Gigabytes() * cloudStorageFactor
	total += habits.WiFiHoursPerDay * wifiHourFactor * days
	total += habits.PagesPerDay * printedPageFactor * days

	switch habits.Idle {
	case IdleLeaveOn:
		total += idleOnFactor * idleHoursPerDay * days
	case IdleTurnOff:
		total += idleOffFactor * idleHoursPerDay * days
	case IdleNoComputer:
		// nothing to add
	}

	return total
}
