package genetic

// Population is one generation's ordered set of individuals. The engine owns
// it exclusively; its size stays constant across generations.
type Population []*Individual

// Best returns the highest-fitness individual. Ties keep the earliest
// individual in insertion order so runs stay reproducible. Unevaluated
// individuals never win.
func (p Population) Best() *Individual {
	var best *Individual
	bestScore := -1
	for _, in := range p {
		score, ok := in.Fitness().Score()
		if !ok {
			continue
		}
		if score > bestScore {
			best = in
			bestScore = score
		}
	}
	return best
}

// TotalFitness sums every evaluated score; used by roulette selection.
func (p Population) TotalFitness() int {
	total := 0
	for _, in := range p {
		if score, ok := in.Fitness().Score(); ok {
			total += score
		}
	}
	return total
}

// Evaluated reports whether every member carries a cached fitness. This is
// the barrier condition between the Evaluating and Selecting phases.
func (p Population) Evaluated() bool {
	for _, in := range p {
		if !in.Evaluated() {
			return false
		}
	}
	return true
}
