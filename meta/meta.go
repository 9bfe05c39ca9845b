// meta/meta.go
package meta

// EVAL_ITERATIONS defines the number of games averaged into one fitness value.
const EVAL_ITERATIONS = 5

// NUM_GENERATIONS defines the number of genetic generations.
const NUM_GENERATIONS = 3

// POPULATION_SIZE defines the number of weight vectors per generation.
const POPULATION_SIZE = 500

// SELECTION_SIZE defines the size of the roulette wheel selection pool.
const SELECTION_SIZE = POPULATION_SIZE / 10

// MUTATION_PROBABILITY defines the chance that a child has one weight nudged.
const MUTATION_PROBABILITY = 0.15

// CROSSOVER_PROBABILITY defines the chance each weight is inherited from the first parent.
const CROSSOVER_PROBABILITY = 0.5

// WEIGHT_STD_DEV defines the spread of freshly sampled weights.
const WEIGHT_STD_DEV = 100.0

// GO_ROUTINES defines the number of goroutines evaluating candidates.
const GO_ROUTINES = 1
