package command

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
)

// Instance binds a static argument-bearing command to one parsed set of
// argument values under a freshly minted id. Instances are immutable
// after registration.
type Instance struct {
	// ID is the instance id, always >= FirstInstanceID.
	ID ID
	// OriginID is the static command this instance specializes, before
	// canonicalization.
	OriginID ID
	// Definition is the verbatim definition text, kept for diagnostics
	// and editing.
	Definition string

	args []Value
}

// Args returns the argument values in parse order.
func (c *Instance) Args() []Value {
	out := make([]Value, len(c.args))
	copy(out, c.args)
	return out
}

// Arg returns the argument with the given name, case-insensitively.
func (c *Instance) Arg(name string) (Value, bool) {
	for _, v := range c.args {
		if strings.EqualFold(v.Name(), name) {
			return v, true
		}
	}
	return Value{}, false
}

// IntArg returns the named int argument, or def when the argument is
// absent or holds a different kind.
func (c *Instance) IntArg(name string, def int) int {
	v, ok := c.Arg(name)
	if !ok {
		return def
	}
	n, ok := v.Int()
	if !ok {
		return def
	}
	return n
}

// BoolArg returns the named bool argument, or def when the argument is
// absent or holds a different kind.
func (c *Instance) BoolArg(name string, def bool) bool {
	v, ok := c.Arg(name)
	if !ok {
		return def
	}
	b, ok := v.Bool()
	if !ok {
		return def
	}
	return b
}

// StrArg returns the named string argument, or def when the argument is
// absent or holds a different kind.
func (c *Instance) StrArg(name, def string) string {
	v, ok := c.Arg(name)
	if !ok {
		return def
	}
	s, ok := v.Str()
	if !ok {
		return def
	}
	return s
}

// ColorArg returns the named color argument, or def when the argument is
// absent or holds a different kind.
func (c *Instance) ColorArg(name string, def color.RGBA) color.RGBA {
	v, ok := c.Arg(name)
	if !ok {
		return def
	}
	col, ok := v.Color()
	if !ok {
		return def
	}
	return col
}

// Registry owns the command instances created from parsed definitions.
// It is not safe for concurrent use; it is expected to be owned by a
// single goroutine.
type Registry struct {
	catalog *Catalog
	log     *slog.Logger

	nextID ID
	byID   map[ID]*Instance
	order  []*Instance
}

// NewRegistry creates an empty registry over the given catalog. A nil
// logger falls back to slog.Default.
func NewRegistry(catalog *Catalog, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		catalog: catalog,
		log:     logger,
		nextID:  FirstInstanceID,
		byID:    make(map[ID]*Instance),
	}
}

// ParseDefinition resolves a full command definition.
//
// The first token is resolved against the catalog by name. Without
// trailing text the static id is returned directly and no instance is
// created. With trailing text the id is canonicalized to its argument
// spec owner, the text is parsed, and a new instance is registered and
// its id returned.
func (r *Registry) ParseDefinition(definition string) (ID, error) {
	definition = strings.TrimSpace(definition)
	name, rest, _ := strings.Cut(definition, " ")
	rest = strings.TrimLeft(rest, " ")

	id, ok := r.catalog.ResolveIDByName(name)
	if !ok {
		return CmdNone, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if rest == "" {
		return id, nil
	}

	owner, ok := canonicalOwner(id)
	if !ok {
		return CmdNone, fmt.Errorf("%w: %s", ErrNoArguments, name)
	}
	specs, ok := r.catalog.SpecGroup(owner)
	if !ok {
		// canonicalization and the spec table have drifted apart
		r.log.Error("no argument specs for canonical owner", "command", name, "owner", int(owner))
		return CmdNone, fmt.Errorf("%w: owner %d", ErrMissingArgSpec, int(owner))
	}

	args := parseArguments(specs, rest, r.log)
	if len(args) == 0 {
		return CmdNone, fmt.Errorf("%w: %q", ErrNoArgumentsParsed, definition)
	}

	inst := r.Register(definition, id, args)
	return inst.ID, nil
}

// Register stores a new instance under a freshly incremented id. There is
// no deduplication: registering an identical definition twice produces
// two distinct instances.
func (r *Registry) Register(definition string, origin ID, args []Value) *Instance {
	inst := &Instance{
		ID:         r.nextID,
		OriginID:   origin,
		Definition: definition,
		args:       args,
	}
	r.nextID++
	r.byID[inst.ID] = inst
	r.order = append(r.order, inst)
	return inst
}

// FindByID returns the instance registered under id.
func (r *Registry) FindByID(id ID) (*Instance, bool) {
	inst, ok := r.byID[id]
	return inst, ok
}

// Instances returns all instances in registration order.
func (r *Registry) Instances() []*Instance {
	out := make([]*Instance, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	return len(r.order)
}

// Clear drops every instance. The id counter is not reset, so ids stay
// unique across the life of the registry.
func (r *Registry) Clear() {
	r.byID = make(map[ID]*Instance)
	r.order = nil
}
