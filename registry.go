package solid

import (
	"fmt"
	"sort"
)

// Kind is a named shape constructor. Params lists the dimension names Build
// expects, in order.
type Kind struct {
	Name   string
	Params []string
	Build  func(args ...float64) (Shape, error)
}

// Registry maps kind names to constructors. New kinds are added with
// Register; existing kinds never change.
//
// A Registry is not safe for concurrent mutation.
type Registry struct {
	kinds  map[string]Kind
	strict bool

	// pending holds WithKinds entries until NewRegistry registers them.
	pending []Kind
}

// Option configures a Registry.
type Option func(*Registry)

// WithStrict makes Build run Validate on every shape it returns.
func WithStrict(strict bool) Option {
	return func(r *Registry) {
		r.strict = strict
	}
}

// WithKinds registers extra kinds after the built-ins. NewRegistry fails
// if any of them collides with a registered name.
func WithKinds(kinds ...Kind) Option {
	return func(r *Registry) {
		r.pending = append(r.pending, kinds...)
	}
}

// NewRegistry returns a Registry holding the built-in kinds base, rectangle
// and circle, plus any kinds supplied through WithKinds.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{kinds: make(map[string]Kind)}
	for _, k := range builtinKinds() {
		r.kinds[k.Name] = k
	}
	for _, opt := range opts {
		opt(r)
	}
	pending := r.pending
	r.pending = nil
	for _, k := range pending {
		if err := r.Register(k); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func builtinKinds() []Kind {
	return []Kind{
		{
			Name: "base",
			Build: func(args ...float64) (Shape, error) {
				if err := checkArgs("base", 0, args); err != nil {
					return nil, err
				}
				return Base{}, nil
			},
		},
		{
			Name:   "rectangle",
			Params: []string{"width", "height"},
			Build: func(args ...float64) (Shape, error) {
				if err := checkArgs("rectangle", 2, args); err != nil {
					return nil, err
				}
				return NewRectangle(args[0], args[1]), nil
			},
		},
		{
			Name:   "circle",
			Params: []string{"radius"},
			Build: func(args ...float64) (Shape, error) {
				if err := checkArgs("circle", 1, args); err != nil {
					return nil, err
				}
				return NewCircle(args[0]), nil
			},
		},
	}
}

// checkArgs guards Kind.Build closures, which callers may invoke directly
// after Lookup.
func checkArgs(kind string, want int, args []float64) error {
	if len(args) != want {
		return fmt.Errorf("%s: want %d args, got %d: %w", kind, want, len(args), ErrInvalidArgument)
	}
	return nil
}

// Register adds k. It fails if the name is empty, Build is nil, or the name
// is already registered.
func (r *Registry) Register(k Kind) error {
	if k.Name == "" {
		return fmt.Errorf("solid: register: empty kind name: %w", ErrInvalidArgument)
	}
	if k.Build == nil {
		return fmt.Errorf("solid: register %q: nil Build: %w", k.Name, ErrInvalidArgument)
	}
	if _, exists := r.kinds[k.Name]; exists {
		return fmt.Errorf("solid: register %q: %w", k.Name, ErrDuplicateKind)
	}
	r.kinds[k.Name] = k
	return nil
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (Kind, bool) {
	k, ok := r.kinds[name]
	return k, ok
}

// Kinds returns all registered kinds sorted by name.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Build constructs a shape of the named kind from args, which must match the
// kind's Params one to one.
func (r *Registry) Build(name string, args ...float64) (Shape, error) {
	k, ok := r.kinds[name]
	if !ok {
		return nil, fmt.Errorf("solid: build %q: %w", name, ErrUnknownKind)
	}
	if len(args) != len(k.Params) {
		return nil, fmt.Errorf("solid: build %q: want %d args, got %d: %w",
			name, len(k.Params), len(args), ErrInvalidArgument)
	}
	s, err := k.Build(args...)
	if err != nil {
		return nil, fmt.Errorf("solid: build %q: %w", name, err)
	}
	if r.strict {
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("solid: build %q: %w", name, err)
		}
	}
	return s, nil
}
