package providers

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/latticeconf/coordinate/spi"
)

// tomlDocument is the on-disk shape a TOMLFile provider parses: a flat
// list of scoped entries, each naming the property, the coordinates it
// applies under, the raw string value, and whether it is authoritative.
//
//	[[values]]
//	name = "timeout"
//	value = "30s"
//	authoritative = false
//	[values.coordinates]
//	region = "west"
type tomlDocument struct {
	Values []tomlValue `toml:"values"`
}

type tomlValue struct {
	Name          string            `toml:"name"`
	Value         string            `toml:"value"`
	Authoritative bool              `toml:"authoritative"`
	Coordinates   map[string]string `toml:"coordinates"`
}

// TOMLFile is a Provider backed by a manifest file parsed with
// BurntSushi/toml, the same decoder the teacher's file loader uses for
// its "toml" format branch. The file is read and parsed once, at
// NewTOMLFile time; TOMLFile does not watch the file for changes (dynamic
// reload is out of scope).
type TOMLFile struct {
	id      spi.ProviderID
	path    string
	entries map[string][]entry
}

// NewTOMLFile reads and parses path, returning a ready-to-register
// Provider, or an error if the file cannot be read or does not parse as
// valid TOML matching the tomlDocument shape.
func NewTOMLFile(path string) (*TOMLFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("coordinate/providers: reading %q: %w", path, err)
	}

	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("coordinate/providers: parsing %q as TOML: %w", path, err)
	}

	entries := make(map[string][]entry, len(doc.Values))
	for _, v := range doc.Values {
		value := v.Value
		entries[v.Name] = append(entries[v.Name], entry{
			coordinates:   spi.Coordinates(v.Coordinates),
			value:         &value,
			authoritative: v.Authoritative,
		})
	}

	return &TOMLFile{
		id:      spi.ProviderID("toml-file:" + path),
		path:    path,
		entries: entries,
	}, nil
}

func (t *TOMLFile) ID() spi.ProviderID { return t.id }

// Lookup uses the same most-specific-subset selection as StaticMap,
// since both hold a fixed, coordinate-scoped entry list; TOMLFile simply
// sources that list from a file instead of chained method calls.
func (t *TOMLFile) Lookup(ctx context.Context, callerCoordinates spi.Coordinates, name string) (*spi.Value, error) {
	candidates, ok := t.entries[name]
	if !ok {
		return nil, nil
	}

	var best *entry
	bestSpec := -1
	for i := range candidates {
		c := candidates[i]
		if !c.coordinates.Subset(callerCoordinates) {
			continue
		}
		if c.coordinates.Len() > bestSpec {
			best = &candidates[i]
			bestSpec = c.coordinates.Len()
		}
	}
	if best == nil {
		return nil, nil
	}

	v := spi.NewValue(t.id, best.coordinates, name, best.value, best.authoritative)
	return &v, nil
}
