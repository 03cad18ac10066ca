package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/tmplhub/catalogd/internal/domain"
)

// Component type wire names.
const (
	TypeAgents   = "agents"
	TypeCommands = "commands"
	TypeMCPs     = "mcps"
	TypeSettings = "settings"
	TypeHooks    = "hooks"
	TypeSkills   = "skills"

	// TypePlugins is recognized but rejected: plugins are composite
	// catalog entries, not standalone files.
	TypePlugins = "plugins"
)

// componentTypes maps each valid type to its file extension. Skills are the
// exception: they are directories holding a SKILL.md.
var componentTypes = map[string]string{
	TypeAgents:   ".md",
	TypeCommands: ".md",
	TypeMCPs:     ".json",
	TypeSettings: ".json",
	TypeHooks:    ".json",
	TypeSkills:   "",
}

// Types returns the closed set of valid component types.
func Types() []string {
	return []string{TypeAgents, TypeCommands, TypeMCPs, TypeSettings, TypeHooks, TypeSkills}
}

// ValidType reports whether t is a recognized, file-backed component type.
func ValidType(t string) bool {
	_, ok := componentTypes[t]
	return ok
}

// IsJSONType reports whether artifacts of type t carry a JSON body.
func IsJSONType(t string) bool {
	return componentTypes[t] == ".json"
}

// CheckType validates a component type string.
func CheckType(t string) error {
	if t == TypePlugins {
		return domain.ErrPluginsNotSupported
	}
	if !ValidType(t) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidComponentType, t)
	}
	return nil
}

// PathFor returns the deterministic relative path for an artifact. Category
// and name must already be slugs.
func PathFor(componentType, category, name string) string {
	if componentType == TypeSkills {
		return filepath.Join(componentType, category, name, "SKILL.md")
	}
	return filepath.Join(componentType, category, name+componentTypes[componentType])
}
