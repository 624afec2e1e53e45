package agent

import "github.com/abhisek/quizchat/internal/progress"

var topics = map[progress.Subject]map[progress.Difficulty][]string{
	progress.SubjectMathematics: {
		progress.Beginner:     {"Basic arithmetic", "Fractions and decimals", "Percentages"},
		progress.Intermediate: {"Linear equations", "Ratios and proportions", "Geometry basics"},
		progress.Advanced:     {"Quadratic equations", "Statistics and probability", "Calculus fundamentals"},
	},
	progress.SubjectFinance: {
		progress.Beginner:     {"Budgeting basics", "Simple interest", "Saving strategies"},
		progress.Intermediate: {"Compound interest", "Loans and EMIs", "Banking products"},
		progress.Advanced:     {"Investment portfolios", "Risk management", "Tax planning"},
	},
	progress.SubjectAgriculture: {
		progress.Beginner:     {"Soil types", "Crop seasons", "Irrigation basics"},
		progress.Intermediate: {"Crop rotation", "Fertilizer management", "Pest control"},
		progress.Advanced:     {"Precision farming", "Agricultural economics", "Sustainable practices"},
	},
}

// Topics returns the suggested study topics for a subject and level. The
// returned slice is a copy.
func Topics(subject progress.Subject, d progress.Difficulty) []string {
	return append([]string{}, topics[subject][d]...)
}
