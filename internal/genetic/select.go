package genetic

import "methuselah/internal/core"

// Selector picks one parent from an evaluated population. The engine calls it
// twice per pair.
type Selector interface {
	Select(p Population, rng *core.RNG) *Individual
}

// RouletteSelector implements fitness-proportionate selection: each
// individual is chosen with probability proportional to its score.
type RouletteSelector struct{}

// Select spins the wheel once. When every score is zero the pick degenerates
// to uniform so an all-dead population still produces parents.
func (RouletteSelector) Select(p Population, rng *core.RNG) *Individual {
	total := p.TotalFitness()
	if total <= 0 {
		return p[rng.IntN(len(p))]
	}
	spin := rng.Float64() * float64(total)
	acc := 0.0
	for _, in := range p {
		score, _ := in.Fitness().Score()
		acc += float64(score)
		if spin <= acc {
			return in
		}
	}
	return p[len(p)-1]
}

// TournamentSelector samples Size individuals with replacement and returns
// the fittest. Ties go to the earliest sampled candidate, which keeps the
// outcome deterministic for a fixed RNG stream.
type TournamentSelector struct {
	Size int
}

func (t TournamentSelector) Select(p Population, rng *core.RNG) *Individual {
	size := t.Size
	if size < 2 {
		size = 2
	}
	if size > len(p) {
		size = len(p)
	}
	winner := p[rng.IntN(len(p))]
	winnerScore, _ := winner.Fitness().Score()
	for i := 1; i < size; i++ {
		in := p[rng.IntN(len(p))]
		if score, _ := in.Fitness().Score(); score > winnerScore {
			winner = in
			winnerScore = score
		}
	}
	return winner
}

func init() {
	RegisterSelector("roulette", func(Config) Selector { return RouletteSelector{} })
	RegisterSelector("tournament", func(cfg Config) Selector {
		return TournamentSelector{Size: cfg.TournamentSize}
	})
}
