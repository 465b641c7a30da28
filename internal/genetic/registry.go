package genetic

import "sort"

// Strategy factories are registered by name so the CLI can select them with a
// flag. Registration happens in init funcs next to each implementation.

// SelectorFactory builds a selection strategy from the run configuration.
type SelectorFactory func(cfg Config) Selector

// CrossoverFactory builds a crossover strategy from the run configuration.
type CrossoverFactory func(cfg Config) Crossover

var (
	selectors  = map[string]SelectorFactory{}
	crossovers = map[string]CrossoverFactory{}
)

// RegisterSelector adds a selection strategy under the provided name.
func RegisterSelector(name string, f SelectorFactory) {
	if name == "" || f == nil {
		return
	}
	selectors[name] = f
}

// RegisterCrossover adds a crossover strategy under the provided name.
func RegisterCrossover(name string, f CrossoverFactory) {
	if name == "" || f == nil {
		return
	}
	crossovers[name] = f
}

// SelectorNames lists the registered selection strategies.
func SelectorNames() []string {
	return sortedKeys(selectors)
}

// CrossoverNames lists the registered crossover strategies.
func CrossoverNames() []string {
	return sortedKeys(crossovers)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
