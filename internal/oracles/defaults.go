package oracles

import "illuminate/pkg/oracle"

// Defaults returns the built-in oracles in their canonical registration
// order: dataset, interpret, adapt, vulnerability.
func Defaults() []oracle.Oracle {
	return []oracle.Oracle{Dataset{}, Interpret{}, Adapt{}, Vulnerability{}}
}

// DefaultRegistry returns a registry pre-loaded with the built-ins.
func DefaultRegistry() *oracle.Registry {
	return oracle.NewRegistry(Defaults()...)
}
