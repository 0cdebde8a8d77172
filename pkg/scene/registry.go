package scene

import (
	"fmt"
	"sort"
	"strings"
)

// builtin maps scene names to their constructors. Scenes are built fresh on
// every lookup so callers can never observe shared state.
var builtin = map[string]func() *Scene{
	"default": NewDefaultScene,
	"single":  NewSingleSphereScene,
	"matte":   NewMatteScene,
}

// ByName builds the named built-in scene. Unknown names are an error listing
// the valid choices.
func ByName(name string) (*Scene, error) {
	construct, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (valid scenes: %s)", name, strings.Join(Names(), ", "))
	}
	return construct(), nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
