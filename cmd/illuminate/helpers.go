package main

import (
	"encoding/json"
	"fmt"
	"os"

	"illuminate/internal/engine"
	"illuminate/internal/oracles"
	"illuminate/internal/profile"
	"illuminate/internal/store"
	"illuminate/pkg/oracle"
)

// loadProfile reads the --profile file if one was given. A nil profile
// means defaults everywhere.
func loadProfile() (*profile.Profile, error) {
	if rootFlags.profile == "" {
		return nil, nil
	}
	return profile.LoadFromPath(rootFlags.profile)
}

// buildEngine assembles the engine and default registry from the profile.
func buildEngine(p *profile.Profile) (*engine.Engine, *oracle.Registry) {
	eng := engine.New(p.EngineConfig(), p.PatternDefs())
	return eng, oracles.DefaultRegistry()
}

// openStore opens the analytics store at the profile's DB path.
func openStore(p *profile.Profile) (store.Store, error) {
	st, err := store.Open(p.DB())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadPayload parses the payload from --payload (inline JSON) or
// --payload-file. Exactly one of the two must be set.
func loadPayload(inline, path string) (oracle.Payload, error) {
	if inline != "" && path != "" {
		return nil, fmt.Errorf("provide either --payload or --payload-file, not both")
	}
	var data []byte
	switch {
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		data = b
	case inline != "":
		data = []byte(inline)
	default:
		return nil, fmt.Errorf("a payload is required: use --payload or --payload-file")
	}

	var payload oracle.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON payload: %w", err)
	}
	return payload, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
