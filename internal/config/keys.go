package config

import (
	"fmt"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-provider").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate rejects values Set should not accept. Nil accepts anything.
	Validate func(value string) error
}

// Check runs the key's validator, if any.
func (k *KeySpec) Check(value string) error {
	if k.Validate == nil {
		return nil
	}
	return k.Validate(value)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "copy-format",
		Description: "Clipboard format: hex (RRGGBB) or hash (#RRGGBB)",
		Get:         func(cfg *Config) string { return cfg.CopyFormat },
		Set:         func(cfg *Config, v string) { cfg.CopyFormat = strings.ToLower(v) },
		Validate:    validateCopyFormat,
	},
	{
		Name:        "sample-text",
		Description: "Text rendered in each color pair preview",
		Get:         func(cfg *Config) string { return cfg.SampleText },
		Set:         func(cfg *Config, v string) { cfg.SampleText = v },
	},
}

func validateCopyFormat(v string) error {
	switch strings.ToLower(v) {
	case "", CopyFormatHex, CopyFormatHash:
		return nil
	}
	return fmt.Errorf("invalid copy-format %q (want %s or %s)", v, CopyFormatHex, CopyFormatHash)
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
