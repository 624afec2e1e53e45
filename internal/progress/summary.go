package progress

// Summary is an overview of all of a user's practice.
type Summary struct {
	TotalSessions      int       `json:"totalSessions"`
	TotalQuestions     int       `json:"totalQuestions"`
	OverallSuccessRate float64   `json:"overallSuccessRate"`
	SubjectsStudied    []Subject `json:"subjectsStudied"`
	StrongestSubject   Subject   `json:"strongestSubject,omitempty"`
	WeakestSubject     Subject   `json:"weakestSubject,omitempty"`
}

// Summary aggregates totals across subjects. Ties for strongest and weakest
// go to the subject seen first.
func (t *Tracker) Summary() Summary {
	sum := Summary{TotalSessions: len(t.history)}

	correct := 0
	var best, worst *PerformanceMetrics
	for _, sub := range Subjects {
		m, ok := t.performance[sub]
		if !ok {
			continue
		}
		sum.SubjectsStudied = append(sum.SubjectsStudied, sub)
		sum.TotalQuestions += m.TotalAttempts
		correct += m.TotalCorrect

		if best == nil || m.SuccessRate > best.SuccessRate {
			best = m
		}
		if worst == nil || m.SuccessRate < worst.SuccessRate {
			worst = m
		}
	}

	sum.OverallSuccessRate = percent(correct, sum.TotalQuestions)
	if best != nil {
		sum.StrongestSubject = best.Subject
		sum.WeakestSubject = worst.Subject
	}
	return sum
}
