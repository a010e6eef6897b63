package api

import (
	"fmt"

	"github.com/frabecrazy/digital-footprint/internal/footprint"
)

// Validation bounds for submission payloads. Everything past these checks
// reaches the calculators sanitized.
const (
	maxDailyHours   = 24.0
	maxDailyQueries = 1000
	maxDailyPages   = 500.0
)

// deviceRequest is one device in a submission payload.
type deviceRequest struct {
	Type      string  `json:"type"`
	Years     float64 `json:"years"`
	Condition string  `json:"condition"`
	Ownership string  `json:"ownership"`
	EndOfLife string  `json:"end_of_life"`
}

// habitsRequest carries the auxiliary habit selections. Bucket fields are
// ordinal indexes into the corresponding bucket enumerations.
type habitsRequest struct {
	PlainEmails      int     `json:"plain_emails"`
	AttachmentEmails int     `json:"attachment_emails"`
	CloudStorage     int     `json:"cloud_storage"`
	WiFiHoursPerDay  float64 `json:"wifi_hours_per_day"`
	PagesPerDay      float64 `json:"pages_per_day"`
	Idle             string  `json:"idle"`
}

// submissionRequest is the POST /api/v1/footprint payload.
type submissionRequest struct {
	Role       string             `json:"role"`
	Devices    []deviceRequest    `json:"devices"`
	Activities map[string]float64 `json:"activities"`
	Habits     habitsRequest      `json:"habits"`
	AIUsage    map[string]int     `json:"ai_usage"`
}

// resultResponse mirrors footprint.EmissionResult for the wire.
type resultResponse struct {
	Total             float64 `json:"total"`
	Devices           float64 `json:"devices"`
	DigitalActivities float64 `json:"digital_activities"`
	AITools           float64 `json:"ai_tools"`
	EWaste            float64 `json:"e_waste,omitempty"`
}

// submissionResponse is the POST /api/v1/footprint reply. Saved is false
// with a warning when the community store could not be reached; the result
// is returned regardless.
type submissionResponse struct {
	SubmissionID string             `json:"submission_id"`
	Result       resultResponse     `json:"result"`
	Saved        bool               `json:"saved"`
	Warning      string             `json:"warning,omitempty"`
	Medians      map[string]float64 `json:"medians,omitempty"`
}

// mediansResponse is the GET /api/v1/community/medians reply.
type mediansResponse struct {
	Available bool               `json:"available"`
	Medians   map[string]float64 `json:"medians,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// validate range-checks the payload and converts it into a calculator
// submission.
func (r submissionRequest) validate() (footprint.Submission, error) {
	devices := make([]footprint.DeviceEntry, 0, len(r.Devices))
	for i, d := range r.Devices {
		if d.Years <= 0 {
			return footprint.Submission{}, fmt.Errorf("device %d: years must be positive", i)
		}
		condition := footprint.Condition(d.Condition)
		if condition != footprint.ConditionNew && condition != footprint.ConditionUsed {
			return footprint.Submission{}, fmt.Errorf("device %d: condition must be New or Used", i)
		}
		ownership := footprint.Ownership(d.Ownership)
		if ownership != footprint.OwnershipPersonal && ownership != footprint.OwnershipShared {
			return footprint.Submission{}, fmt.Errorf("device %d: ownership must be Personal or Shared", i)
		}
		devices = append(devices, footprint.DeviceEntry{
			Type:      d.Type,
			Years:     footprint.ClampYears(d.Years),
			Condition: condition,
			Ownership: ownership,
			EndOfLife: d.EndOfLife,
		})
	}

	activities := footprint.ActivityProfile{}
	for activity, hours := range r.Activities {
		if hours < 0 || hours > maxDailyHours {
			return footprint.Submission{}, fmt.Errorf("activity %q: hours out of range [0, %v]", activity, maxDailyHours)
		}
		activities[activity] = hours
	}

	aiUsage := footprint.AIUsageProfile{}
	for task, queries := range r.AIUsage {
		if queries < 0 || queries > maxDailyQueries {
			return footprint.Submission{}, fmt.Errorf("ai task %q: queries out of range [0, %d]", task, maxDailyQueries)
		}
		aiUsage[task] = queries
	}

	habits, err := r.Habits.validate()
	if err != nil {
		return footprint.Submission{}, err
	}

	return footprint.Submission{
		Role:       r.Role,
		Devices:    devices,
		Activities: activities,
		Habits:     habits,
		AIUsage:    aiUsage,
	}, nil
}

func (h habitsRequest) validate() (footprint.HabitProfile, error) {
	if h.WiFiHoursPerDay < 0 || h.WiFiHoursPerDay > maxDailyHours {
		return footprint.HabitProfile{}, fmt.Errorf("wifi hours out of range [0, %v]", maxDailyHours)
	}
	if h.PagesPerDay < 0 || h.PagesPerDay > maxDailyPages {
		return footprint.HabitProfile{}, fmt.Errorf("printed pages out of range [0, %v]", maxDailyPages)
	}

	var idle footprint.IdleBehavior
	switch h.Idle {
	case "", "none":
		idle = footprint.IdleNoComputer
	case "leave_on":
		idle = footprint.IdleLeaveOn
	case "turn_off":
		idle = footprint.IdleTurnOff
	default:
		return footprint.HabitProfile{}, fmt.Errorf("idle must be none, leave_on, or turn_off")
	}

	return footprint.HabitProfile{
		PlainEmails:      footprint.VolumeBucket(h.PlainEmails),
		AttachmentEmails: footprint.VolumeBucket(h.AttachmentEmails),
		CloudStorage:     footprint.StorageBucket(h.CloudStorage),
		WiFiHoursPerDay:  h.WiFiHoursPerDay,
		PagesPerDay:      h.PagesPerDay,
		Idle:             idle,
	}, nil
}

func toResultResponse(r footprint.EmissionResult) resultResponse {
	return resultResponse{
		Total:             r.Total,
		Devices:           r.Devices,
		DigitalActivities: r.DigitalActivities,
		AITools:           r.AITools,
		EWaste:            r.EWaste,
	}
}
