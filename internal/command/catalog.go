package command

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// StaticCommand is one build-time command: a stable id plus the canonical
// name and the human-readable description.
type StaticCommand struct {
	ID          ID
	Name        string
	Description string
}

// ArgSpec declares one argument accepted by its owning command. Specs for
// one owner are contiguous and the first spec of a group is the default
// (positional) argument.
type ArgSpec struct {
	Owner ID
	Name  string
	Kind  Kind
}

// Catalog holds the immutable command and argument spec tables, queryable
// by name or description through two indices over the same backing slice.
type Catalog struct {
	commands []StaticCommand
	byName   map[string]int
	byDesc   map[string]int

	specs  []ArgSpec
	groups map[ID][2]int // owner -> [start, end) into specs
}

// yaml carrier types for catalog.yaml.
type yamlCatalog struct {
	Commands []yamlCommand  `yaml:"commands"`
	ArgSpecs []yamlArgGroup `yaml:"argspecs"`
}

type yamlCommand struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type yamlArgGroup struct {
	Owner string    `yaml:"owner"`
	Args  []yamlArg `yaml:"args"`
}

type yamlArg struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadCatalog builds the catalog from the embedded data file and checks
// that every well-known command is present.
func LoadCatalog() (*Catalog, error) {
	c, err := ParseCatalog(catalogYAML)
	if err != nil {
		return nil, err
	}
	for name := range wellKnownIDs {
		if _, ok := c.byName[strings.ToLower(name)]; !ok {
			return nil, fmt.Errorf("well-known command %q missing from catalog", name)
		}
	}
	return c, nil
}

// ParseCatalog builds a catalog from YAML data and validates the table
// invariants: unique ids below FirstInstanceID, unique names and
// descriptions, known spec owners, one group per owner and no bool or none
// typed default argument.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(raw.Commands) == 0 {
		return nil, fmt.Errorf("catalog has no commands")
	}

	c := &Catalog{
		commands: make([]StaticCommand, 0, len(raw.Commands)),
		byName:   make(map[string]int, len(raw.Commands)),
		byDesc:   make(map[string]int, len(raw.Commands)),
		groups:   make(map[ID][2]int, len(raw.ArgSpecs)),
	}

	seenIDs := make(map[ID]bool, len(raw.Commands))
	for _, rc := range raw.Commands {
		id := ID(rc.ID)
		if id <= CmdNone || id >= FirstInstanceID {
			return nil, fmt.Errorf("command %q: id %d out of static range", rc.Name, rc.ID)
		}
		if rc.Name == "" || rc.Description == "" {
			return nil, fmt.Errorf("command id %d: name and description are required", rc.ID)
		}
		if seenIDs[id] {
			return nil, fmt.Errorf("command %q: duplicate id %d", rc.Name, rc.ID)
		}
		seenIDs[id] = true
		if want, ok := wellKnownIDs[rc.Name]; ok && id != want {
			return nil, fmt.Errorf("command %q: catalog id %d does not match constant %d", rc.Name, rc.ID, int(want))
		}

		nameKey := strings.ToLower(rc.Name)
		if _, exists := c.byName[nameKey]; exists {
			return nil, fmt.Errorf("duplicate command name %q", rc.Name)
		}
		descKey := strings.ToLower(rc.Description)
		if _, exists := c.byDesc[descKey]; exists {
			return nil, fmt.Errorf("duplicate command description %q", rc.Description)
		}

		idx := len(c.commands)
		c.commands = append(c.commands, StaticCommand{ID: id, Name: rc.Name, Description: rc.Description})
		c.byName[nameKey] = idx
		c.byDesc[descKey] = idx
	}

	for _, group := range raw.ArgSpecs {
		idx, ok := c.byName[strings.ToLower(group.Owner)]
		if !ok {
			return nil, fmt.Errorf("argspec owner %q is not a known command", group.Owner)
		}
		owner := c.commands[idx].ID
		if _, exists := c.groups[owner]; exists {
			return nil, fmt.Errorf("argspec owner %q appears twice", group.Owner)
		}
		if len(group.Args) == 0 {
			return nil, fmt.Errorf("argspec owner %q has no arguments", group.Owner)
		}
		start := len(c.specs)
		for i, arg := range group.Args {
			if arg.Name == "" {
				return nil, fmt.Errorf("argspec owner %q: argument name is required", group.Owner)
			}
			kind, ok := kindFromString(arg.Type)
			if !ok {
				return nil, fmt.Errorf("argspec owner %q, argument %q: unknown type %q", group.Owner, arg.Name, arg.Type)
			}
			if i == 0 && (kind == KindBool || kind == KindNone) {
				return nil, fmt.Errorf("argspec owner %q: default argument cannot be %s", group.Owner, kind)
			}
			c.specs = append(c.specs, ArgSpec{Owner: owner, Name: arg.Name, Kind: kind})
		}
		c.groups[owner] = [2]int{start, len(c.specs)}
	}

	return c, nil
}

// ResolveIDByName resolves a command name, case-insensitively.
func (c *Catalog) ResolveIDByName(name string) (ID, bool) {
	idx, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return CmdNone, false
	}
	return c.commands[idx].ID, true
}

// ResolveIDByDescription resolves a human-readable description,
// case-insensitively.
func (c *Catalog) ResolveIDByDescription(desc string) (ID, bool) {
	idx, ok := c.byDesc[strings.ToLower(desc)]
	if !ok {
		return CmdNone, false
	}
	return c.commands[idx].ID, true
}

// Lookup returns the static command for an id.
func (c *Catalog) Lookup(id ID) (StaticCommand, bool) {
	for _, cmd := range c.commands {
		if cmd.ID == id {
			return cmd, true
		}
	}
	return StaticCommand{}, false
}

// Commands returns the commands in catalog order. The returned slice is a
// copy; the catalog stays immutable.
func (c *Catalog) Commands() []StaticCommand {
	out := make([]StaticCommand, len(c.commands))
	copy(out, c.commands)
	return out
}

// SpecGroup returns the argument specs owned by the given canonical owner.
func (c *Catalog) SpecGroup(owner ID) ([]ArgSpec, bool) {
	rng, ok := c.groups[owner]
	if !ok {
		return nil, false
	}
	return c.specs[rng[0]:rng[1]], true
}
