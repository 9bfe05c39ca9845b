package genetic

import (
	"tetris/heuristic"
	"tetris/meta"

	"golang.org/x/exp/rand"
)

func sampleStd(r *rand.Rand) float64 {
	return r.NormFloat64() * meta.WEIGHT_STD_DEV
}

// RandomWeights draws every weight from a normal distribution with mean 0
// and standard deviation WEIGHT_STD_DEV.
func RandomWeights(r *rand.Rand) heuristic.Weights {
	var w heuristic.Weights
	for i := range w {
		w[i] = sampleStd(r)
	}
	return w
}

// Breed takes each weight from a with probability p, otherwise from b.
func Breed(a, b heuristic.Weights, p float64, r *rand.Rand) heuristic.Weights {
	var child heuristic.Weights
	for i := range child {
		if r.Float64() < p {
			child[i] = a[i]
		} else {
			child[i] = b[i]
		}
	}
	return child
}

// Nudge perturbs one random weight by a standard normal sample.
func Nudge(w heuristic.Weights, r *rand.Rand) heuristic.Weights {
	i := r.Intn(len(w))
	w[i] += sampleStd(r) / meta.WEIGHT_STD_DEV
	return w
}

// Mutate replaces one random weight with a fresh sample.
func Mutate(w heuristic.Weights, r *rand.Rand) heuristic.Weights {
	i := r.Intn(len(w))
	w[i] = sampleStd(r)
	return w
}

// Normalize scales fitness in place so it sums to one. A population whose
// fitness sums to zero gets a uniform distribution.
func Normalize(fitness []float64) {
	sum := 0.0
	for _, f := range fitness {
		sum += f
	}
	for i := range fitness {
		if sum == 0 {
			fitness[i] = 1 / float64(len(fitness))
		} else {
			fitness[i] /= sum
		}
	}
}

// RouletteWheel returns the first index whose cumulative probability
// exceeds draw. ps must be normalized and draw in [0, 1).
func RouletteWheel(ps []float64, draw float64) int {
	total := 0.0
	for i, p := range ps {
		total += p
		if total > draw {
			return i
		}
	}
	panic("roulette wheel called on unnormalized probabilities")
}
