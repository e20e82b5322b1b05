// Shared helpers for panel CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/knobs/internal/memstore"
	"github.com/mesh-intelligence/knobs/internal/paths"
	"github.com/mesh-intelligence/knobs/pkg/params"
	"github.com/mesh-intelligence/knobs/pkg/types"
)

// openStore builds the registry and an attached in-memory store seeded with
// every parameter's default value. The backend name comes from config.yaml
// so a misconfigured backend fails the same way an unimplemented one would.
func openStore() (*memstore.Store, error) {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}

	reg, err := params.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	store, err := memstore.New(reg, types.Config{Backend: cfg.GetString(cfgKeyBackend)})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.RestoreAll(); err != nil {
		return nil, fmt.Errorf("restore defaults: %w", err)
	}
	return store, nil
}

// resolveKey maps a machine key to its parameter ID, printing a helpful
// error listing valid keys on a miss.
func resolveKey(reg *types.Registry, key string) (types.ID, bool) {
	id, ok := reg.Find(key)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown parameter %q (valid: %s)\n", key, validKeysStr(reg))
		return 0, false
	}
	return id, true
}

// validKeysStr returns a comma-separated list of registered machine keys.
func validKeysStr(reg *types.Registry) string {
	keys := make([]string, 0, reg.Len())
	for _, id := range reg.IDs() {
		keys = append(keys, reg.Handler(id).Key())
	}
	return strings.Join(keys, ", ")
}

// paramOutput is the JSON shape for a single parameter.
type paramOutput struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Value   string `json:"value,omitempty"`
	Size    int    `json:"size"`
	Storage string `json:"storage"`
}

// printParam writes one parameter in text or JSON mode.
func printParam(store *memstore.Store, id types.ID) error {
	h := store.Registry().Handler(id)
	value, err := store.FormatText(id)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(paramOutput{
			Key:     h.Key(),
			Name:    h.Name(),
			Value:   value,
			Size:    h.Size(),
			Storage: h.Storage().String(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%s = %s\n", h.Key(), value)
	return nil
}
