package scheduler

// ComputeSoCSchedule derives the state-of-charge trajectory implied by a net
// power schedule: charging power p adds eta*p to the store, discharging
// removes |p|/eta. The result has one more entry than the schedule and
// starts at socStart.
func ComputeSoCSchedule(powerSchedule []float64, socStart, conversionEfficiency float64) []float64 {
	soc := make([]float64, len(powerSchedule)+1)
	soc[0] = socStart
	for t, p := range powerSchedule {
		delta := p / conversionEfficiency
		if p > 0 {
			delta = p * conversionEfficiency
		}
		soc[t+1] = soc[t] + delta
	}
	return soc
}
