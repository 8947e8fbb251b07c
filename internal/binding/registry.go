// Package binding builds and holds the control registry for one command
// tree: command-path -> parameter name -> control. A registry is scoped
// to one constructed session and passed explicitly to the codec and the
// runner; it is never a process-wide singleton.
package binding

import (
	"fmt"
	"strings"

	"github.com/cliform-tools/cli/internal/controls"
)

// PathSep joins command names into registry keys. Command names must not
// contain it.
const PathSep = ":"

// Meta records, per registered parameter, the declared arity and the
// resolved control kind for introspection.
type Meta struct {
	NArgs int
	Kind  controls.Kind
}

type entry struct {
	order    []string
	controls map[string]controls.Control
	meta     map[string]Meta
}

// Registry is the two-level control mapping. Built once when the command
// tree is walked; read many times. Registration conflicts are
// construction-time bugs and panic.
type Registry struct {
	entries map[string]*entry
	paths   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// PathKey joins a command hierarchy into a registry key.
func PathKey(hierarchy []string) string {
	return strings.Join(hierarchy, PathSep)
}

// AddPath registers a command path. Duplicate paths indicate a broken
// tree walk.
func (r *Registry) AddPath(key string) {
	if _, ok := r.entries[key]; ok {
		panic(fmt.Sprintf("binding: duplicate command path %q", key))
	}
	r.entries[key] = &entry{
		controls: make(map[string]controls.Control),
		meta:     make(map[string]Meta),
	}
	r.paths = append(r.paths, key)
}

// Register binds one control under (path, name). Exactly one control per
// pair; a second registration panics.
func (r *Registry) Register(key, name string, c controls.Control, m Meta) {
	e, ok := r.entries[key]
	if !ok {
		panic(fmt.Sprintf("binding: unknown command path %q", key))
	}
	if _, dup := e.controls[name]; dup {
		panic(fmt.Sprintf("binding: duplicate control %q under path %q", name, key))
	}
	e.order = append(e.order, name)
	e.controls[name] = c
	e.meta[name] = m
}

// HasPath reports whether the path was registered (groups without
// parameters still are).
func (r *Registry) HasPath(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Lookup finds the control for (path, name).
func (r *Registry) Lookup(key, name string) (controls.Control, bool) {
	e, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	c, ok := e.controls[name]
	return c, ok
}

// MetaFor returns the recorded arity/kind for (path, name).
func (r *Registry) MetaFor(key, name string) (Meta, bool) {
	e, ok := r.entries[key]
	if !ok {
		return Meta{}, false
	}
	m, ok := e.meta[name]
	return m, ok
}

// Names returns the parameter names under a path in registration order.
func (r *Registry) Names(key string) []string {
	e, ok := r.entries[key]
	if !ok {
		return nil
	}
	return append([]string{}, e.order...)
}

// Controls returns the controls under a path in registration order.
func (r *Registry) Controls(key string) []controls.Control {
	e, ok := r.entries[key]
	if !ok {
		return nil
	}
	out := make([]controls.Control, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, e.controls[name])
	}
	return out
}

// Paths lists all registered command paths in walk order.
func (r *Registry) Paths() []string {
	return append([]string{}, r.paths...)
}
