package footprint

// EstimateAIUsage annualizes an AI usage profile:
//
//	contribution = queriesPerDay × factor[task] × days
//
// summed over every task in the profile. Unknown tasks contribute zero.
// Pure, no side effects.
func EstimateAIUsage(profile AIUsageProfile, days float64) float64 {
	var total float64
	for task, queries := range profile {
		total += float64(queries) * AITaskFactor(task) * days
	}
	return total
}
