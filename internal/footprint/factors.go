// Package footprint estimates a person's annual digital carbon footprint
// from device ownership, digital-activity habits, and AI-tool usage.
//
// All calculators in this package are pure functions over their inputs and
// the static factor tables below: no I/O, no shared mutable state, safe to
// call concurrently.
package footprint

// DaysPerYear is the default number of active use-days per year used to
// annualize daily habit measurements. 250 approximates a typical academic
// or working year.
const DaysPerYear = 250.0

// DeviceFootprints maps device types to their embodied production footprint
// in kg CO2e per device.
//
// Values are cradle-to-gate manufacturing estimates drawn from published
// manufacturer LCA reports (Apple, Dell, HP environmental product reports).
var DeviceFootprints = map[string]float64{
	"Desktop Computer": 296,
	"Laptop Computer":  170,
	"Smartphone":       38.4,
	"Tablet":           87.1,
	"External Monitor": 235,
	"Headphones":       12.17,
	"Printer":          62.3,
	"Router/Modem":     106,
}

// EndOfLifeModifiers maps disposal choices to a signed emission adjustment
// in kg CO2e. Negative values credit avoided emissions (reuse, recycling);
// positive values charge landfill or idle storage.
var EndOfLifeModifiers = map[string]float64{
	"I bring it to a certified e-waste collection center": -0.0384,
	"I throw it away in general waste":                    0.0595,
	"I return it to manufacturer for recycling or reuse":  -0.3461,
	"I sell or donate it to someone else":                 -0.6991,
	"I store it at home, unused":                          0.0113,
}

// ActivityFactors maps each respondent role to its digital activities and
// their emission factors in kg CO2e per hour of use.
//
// The activity keys double as the labels shown on the questionnaire form,
// so they must stay in sync with the form layer.
var ActivityFactors = map[string]map[string]float64{
	"Student": {
		"MS Office (e.g. Excel, Word, PPT…)":       0.00901,
		"Technical softwares (e.g. Matlab, Python…)": 0.00901,
		"Web browsing":                             0.0264,
		"Watching lecture recordings":              0.0439,
		"Online classes streaming or video call":   0.112,
		"Reading study materials on your computer (e.g. slides, articles, digital textbooks)": 0.00901,
	},
	"Professor": {
		"MS Office (e.g. Excel, Word, PPT…)":       0.00901,
		"Web browsing":                             0.0264,
		"Videocall (e.g. Zoom, Teams…)":            0.112,
		"Online classes streaming":                 0.112,
		"Reading materials on your computer (e.g. slides, articles, digital textbooks)": 0.00901,
		"Technical softwares (e.g. Matlab, Python…)": 0.00901,
	},
	"Staff Member": {
		"MS Office (e.g. Excel, Word, PPT…)": 0.00901,
		"Management software (e.g. SAP)":     0.00901,
		"Web browsing":                       0.0264,
		"Videocall (e.g. Zoom, Teams…)":      0.112,
		"Reading materials on your computer (e.g. documents)": 0.00901,
	},
}

// AITaskFactors maps AI-assisted tasks to emission factors in kg CO2e per
// query. Values scale with the typical inference cost of each task class:
// short text completions are cheapest, long-context and image generation
// most expensive.
var AITaskFactors = map[string]float64{
	"Summarize texts or articles":       0.000711936,
	"Translate sentences or texts":      0.000363008,
	"Explain a concept":                 0.000310784,
	"Generate quizzes or questions":     0.000539136,
	"Write formal emails or messages":   0.000107776,
	"Correct grammar or style":          0.000107776,
	"Analyze long PDF documents":        0.001412608,
	"Write or test code":                0.002337024,
	"Generate images":                   0.00206,
	"Brainstorm for thesis or projects": 0.000310784,
	"Explain code step-by-step":         0.003542528,
	"Prepare lessons or presentations":  0.000539136,
}

// Roles returns the set of roles the questionnaire recognizes.
func Roles() []string {
	return []string{"Student", "Professor", "Staff Member"}
}

// DeviceFootprint returns the embodied footprint for the given device type
// in kg CO2e. Unknown device types contribute zero rather than failing, so
// a stale form label can never break a computation.
func DeviceFootprint(deviceType string) float64 {
	return DeviceFootprints[deviceType]
}

// EndOfLifeModifier returns the signed disposal adjustment for the given
// end-of-life choice in kg CO2e. Unknown choices contribute zero.
func EndOfLifeModifier(choice string) float64 {
	return EndOfLifeModifiers[choice]
}

// ActivityFactor returns the per-hour emission factor for an activity
// within a role. Unknown roles and unknown activities both resolve to zero.
func ActivityFactor(role, activity string) float64 {
	return ActivityFactors[role][activity]
}

// AITaskFactor returns the per-query emission factor for an AI task.
// Unknown tasks resolve to zero.
func AITaskFactor(task string) float64 {
	return AITaskFactors[task]
}
