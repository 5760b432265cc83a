package runtime

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/risor-io/risor/object"

	"github.com/jward/solid"
)

// shapesDir holds one script per shape kind, relative to the scripts root.
const shapesDir = "shapes"

// paramsPrefix introduces the header line naming a script's parameters.
const paramsPrefix = "// params:"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Param is one named dimension of a ScriptShape.
type Param struct {
	Name  string
	Value float64
}

// ScriptShape is a Shape whose area was computed by a Risor script.
type ScriptShape struct {
	kind   string
	params []Param
	area   float64
}

// Area returns the area the script produced.
func (s *ScriptShape) Area() float64 { return s.area }

// Kind returns the script's kind name.
func (s *ScriptShape) Kind() string { return s.kind }

// Params returns a copy of the dimensions the shape was built from.
func (s *ScriptShape) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)
	return out
}

// Validate rejects negative or NaN parameters.
func (s *ScriptShape) Validate() error {
	for _, p := range s.params {
		if err := solid.CheckDimension(p.Name, p.Value); err != nil {
			return fmt.Errorf("solid: %s: %w", s.kind, err)
		}
	}
	return nil
}

// NewShape evaluates source with each param bound as a float global and
// wraps the numeric result in a ScriptShape.
func (r *Runtime) NewShape(ctx context.Context, kind, source string, params []Param) (*ScriptShape, error) {
	globals := make(map[string]any, len(params))
	for _, p := range params {
		globals[p.Name] = object.NewFloat(p.Value)
	}

	result, err := r.eval(ctx, source, kind, globals)
	if err != nil {
		return nil, err
	}

	var area float64
	switch v := result.(type) {
	case *object.Float:
		area = v.Value()
	case *object.Int:
		area = float64(v.Value())
	default:
		typ := "nil"
		if result != nil {
			typ = string(result.Type())
		}
		return nil, fmt.Errorf("runtime: script %s: area must be int or float, got %s", kind, typ)
	}

	return &ScriptShape{
		kind:   kind,
		params: append([]Param(nil), params...),
		area:   area,
	}, nil
}

// ParseParams reads the parameter names from a script's header line,
// e.g. "// params: base, height". A script without a header has no params.
func ParseParams(source string) ([]string, error) {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, paramsPrefix) {
			return nil, nil
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, paramsPrefix))
		if rest == "" {
			return nil, nil
		}
		var names []string
		seen := make(map[string]bool)
		for _, name := range strings.Split(rest, ",") {
			name = strings.TrimSpace(name)
			if !identRe.MatchString(name) {
				return nil, fmt.Errorf("runtime: invalid param name %q: %w", name, solid.ErrInvalidArgument)
			}
			if seen[name] {
				return nil, fmt.Errorf("runtime: duplicate param %q: %w", name, solid.ErrInvalidArgument)
			}
			seen[name] = true
			names = append(names, name)
		}
		return names, nil
	}
	return nil, nil
}

// Kind builds a registrable solid.Kind for a script. Build evaluates the
// script with ctx's values but ignores its cancellation; solid.Kind.Build
// takes no context of its own.
func (r *Runtime) Kind(ctx context.Context, name, source string) (solid.Kind, error) {
	names, err := ParseParams(source)
	if err != nil {
		return solid.Kind{}, fmt.Errorf("runtime: kind %s: %w", name, err)
	}
	ctx = context.WithoutCancel(ctx)
	return solid.Kind{
		Name:   name,
		Params: names,
		Build: func(args ...float64) (solid.Shape, error) {
			if len(args) != len(names) {
				return nil, fmt.Errorf("runtime: kind %s: want %d args, got %d: %w",
					name, len(names), len(args), solid.ErrInvalidArgument)
			}
			params := make([]Param, len(names))
			for i, n := range names {
				params[i] = Param{Name: n, Value: args[i]}
			}
			s, err := r.NewShape(ctx, name, source, params)
			if err != nil {
				return nil, err
			}
			return s, nil
		},
	}, nil
}

// LoadKinds returns one Kind per shapes/*.risor script, sorted by name.
// It returns nothing when the Runtime has no script source.
func (r *Runtime) LoadKinds(ctx context.Context) ([]solid.Kind, error) {
	files, err := r.shapeFiles()
	if err != nil {
		return nil, err
	}

	kinds := make([]solid.Kind, 0, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(filepath.ToSlash(file)), ".risor")
		src, err := r.LoadScript(ShapeScriptPath(name))
		if err != nil {
			return nil, err
		}
		k, err := r.Kind(ctx, name, src)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (r *Runtime) shapeFiles() ([]string, error) {
	var files []string
	var err error
	switch {
	case r.fsys != nil:
		files, err = fs.Glob(r.fsys, shapesDir+"/*.risor")
	case r.scriptsDir != "":
		files, err = filepath.Glob(filepath.Join(r.scriptsDir, shapesDir, "*.risor"))
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("runtime: listing shape scripts: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
