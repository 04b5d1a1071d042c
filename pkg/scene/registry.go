package scene

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/go-drift/binder/pkg/errors"
	"github.com/go-drift/binder/pkg/widget"
)

// Factory creates components of one node type.
type Factory interface {
	// Create builds the component for n. path locates n in the document
	// and is used in error messages.
	Create(b *Builder, n *Node, path string) (widget.Component, error)

	// NodeType returns the node type this factory creates.
	NodeType() string
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc struct {
	Type string
	Fn   func(b *Builder, n *Node, path string) (widget.Component, error)
}

func (f FactoryFunc) Create(b *Builder, n *Node, path string) (widget.Component, error) {
	return f.Fn(b, n, path)
}

func (f FactoryFunc) NodeType() string { return f.Type }

// Registry maps node types to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry with the built-in node types.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	registerBuiltins(r)
	return r
}

// RegisterFactory registers or replaces the factory for its node type.
func (r *Registry) RegisterFactory(f Factory) {
	r.mu.Lock()
	r.factories[f.NodeType()] = f
	r.mu.Unlock()
}

// Types returns the registered node types, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func (r *Registry) factory(typ string) (Factory, bool) {
	r.mu.RLock()
	f, ok := r.factories[typ]
	r.mu.RUnlock()
	return f, ok
}

// Build creates the component tree described by doc. Unnamed nodes are
// named after their type and a counter, and the name is written back to
// the node.
func (r *Registry) Build(doc *Document) (widget.Component, error) {
	b := &Builder{registry: r, names: make(map[string]string), counts: make(map[string]int)}
	return b.Node(doc.Root, "root")
}

// Builder carries the state of one Build call.
type Builder struct {
	registry *Registry
	names    map[string]string
	counts   map[string]int
}

// Node builds n and applies the properties common to all components.
func (b *Builder) Node(n *Node, path string) (widget.Component, error) {
	if n == nil {
		return nil, sceneError("scene.Build", "", &errors.ParseError{Path: path, DataType: "node", Got: nil})
	}
	f, ok := b.registry.factory(n.Type)
	if !ok {
		return nil, sceneError("scene.Build", n.Name, b.unknownType(n.Type, path))
	}
	if n.Name == "" {
		b.counts[n.Type]++
		n.Name = n.Type + strconv.Itoa(b.counts[n.Type])
	}
	if prev, dup := b.names[n.Name]; dup {
		return nil, sceneError("scene.Build", n.Name,
			fmt.Errorf("duplicate name at %s (first used at %s)", path, prev))
	}
	b.names[n.Name] = path

	c, err := f.Create(b, n, path)
	if err != nil {
		return nil, err
	}
	if n.Enabled != nil {
		c.SetEnabled(*n.Enabled)
	}
	if n.Visible != nil {
		c.SetVisible(*n.Visible)
	}
	return c, nil
}

func (b *Builder) unknownType(typ, path string) error {
	best, bestDist := "", -1
	for _, t := range b.registry.Types() {
		d := levenshtein.ComputeDistance(typ, t)
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	if best != "" && bestDist <= max(len(typ)/2, 1) {
		return fmt.Errorf("unknown node type %q at %s (did you mean %q?)", typ, path, best)
	}
	return fmt.Errorf("unknown node type %q at %s", typ, path)
}
