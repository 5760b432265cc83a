package runtime

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/risor-io/risor/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/solid"
)

func TestRunSource_ReturnsFinalExpression(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("")

	result, err := rt.RunSource(context.Background(), "x * 2", map[string]any{
		"x": object.NewFloat(21),
	})
	require.NoError(t, err)

	f, ok := result.(*object.Float)
	require.True(t, ok, "expected float, got %T", result)
	assert.Equal(t, 42.0, f.Value())
}

func TestRunSource_PiGlobal(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("")

	result, err := rt.RunSource(context.Background(), "pi", nil)
	require.NoError(t, err)

	f, ok := result.(*object.Float)
	require.True(t, ok)
	assert.InDelta(t, 3.141592653589793, f.Value(), 1e-12)
}

func TestRunSource_SyntaxError(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("")

	_, err := rt.RunSource(context.Background(), "a * (", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime: script <inline>")
}

func TestNewShape(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("")
	ctx := context.Background()

	tests := []struct {
		name   string
		source string
		params []Param
		want   float64
	}{
		{"float result", "side * side", []Param{{"side", 1.5}}, 2.25},
		{"int result", "6", nil, 6},
		{"two params", "0.5 * base * height", []Param{{"base", 3}, {"height", 4}}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := rt.NewShape(ctx, "test", tt.source, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Area())
			assert.Equal(t, tt.want, solid.ShapeArea(s))
			assert.Equal(t, "test", s.Kind())
			assert.Equal(t, len(tt.params), len(s.Params()))
		})
	}
}

func TestNewShape_NonNumericResult(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("")

	_, err := rt.NewShape(context.Background(), "wordy", `"twelve"`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "area must be int or float")
}

func TestNewShape_ParamsAreCopied(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("")

	params := []Param{{"side", 2}}
	s, err := rt.NewShape(context.Background(), "square", "side * side", params)
	require.NoError(t, err)

	params[0].Value = 100
	got := s.Params()
	got[0].Value = 200
	assert.Equal(t, 2.0, s.Params()[0].Value)
	assert.Equal(t, 4.0, s.Area())
}

func TestScriptShape_Validate(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("")
	ctx := context.Background()

	ok, err := rt.NewShape(ctx, "square", "side * side", []Param{{"side", 2}})
	require.NoError(t, err)
	assert.NoError(t, solid.Validate(ok))

	bad, err := rt.NewShape(ctx, "square", "side * side", []Param{{"side", -2}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, bad.Area())
	assert.ErrorIs(t, solid.Validate(bad), solid.ErrInvalidArgument)
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		want    []string
		wantErr bool
	}{
		{"single", "// params: side\nside * side", []string{"side"}, false},
		{"several", "// params: a, b ,c\na*b*c", []string{"a", "b", "c"}, false},
		{"leading blank lines", "\n\n// params: r\nr", []string{"r"}, false},
		{"no header", "42", nil, false},
		{"empty header", "// params:\n1", nil, false},
		{"comment not header", "// area of a unit\n1", nil, false},
		{"bad name", "// params: 2x\n1", nil, true},
		{"empty name", "// params: a,,b\n1", nil, true},
		{"duplicate", "// params: a, a\n1", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseParams(tt.source)
			if tt.wantErr {
				assert.ErrorIs(t, err, solid.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_ArgCount(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("")

	k, err := rt.Kind(context.Background(), "square", "// params: side\nside * side")
	require.NoError(t, err)
	assert.Equal(t, []string{"side"}, k.Params)

	_, err = k.Build(1, 2)
	assert.ErrorIs(t, err, solid.ErrInvalidArgument)

	s, err := k.Build(5)
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.Area())
}

func TestLoadKinds_FromFS(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"shapes/square.risor":   {Data: []byte("// params: side\nside * side\n")},
		"shapes/triangle.risor": {Data: []byte("// params: base, height\n0.5 * base * height\n")},
		"shapes/README.md":      {Data: []byte("not a script")},
	}
	rt := NewRuntime("", WithRuntimeFS(fsys))

	kinds, err := rt.LoadKinds(context.Background())
	require.NoError(t, err)
	require.Len(t, kinds, 2)
	assert.Equal(t, "square", kinds[0].Name)
	assert.Equal(t, "triangle", kinds[1].Name)
	assert.Equal(t, []string{"base", "height"}, kinds[1].Params)

	s, err := kinds[1].Build(4, 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.Area())
}

func TestLoadKinds_FromDisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shapes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes", "square.risor"),
		[]byte("// params: side\nside * side\n"), 0o644))

	rt := NewRuntime(dir)
	kinds, err := rt.LoadKinds(context.Background())
	require.NoError(t, err)
	require.Len(t, kinds, 1)

	s, err := kinds[0].Build(3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, s.Area())
}

func TestLoadKinds_NoSource(t *testing.T) {
	t.Parallel()
	kinds, err := NewRuntime("").LoadKinds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, kinds)
}

func TestLoadKinds_BadHeader(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"shapes/broken.risor": {Data: []byte("// params: 1side\n1\n")},
	}
	_, err := NewRuntime("", WithRuntimeFS(fsys)).LoadKinds(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind broken")
}

func TestLoadKinds_RegistersIntoRegistry(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"shapes/square.risor": {Data: []byte("// params: side\nside * side\n")},
	}
	kinds, err := NewRuntime("", WithRuntimeFS(fsys)).LoadKinds(context.Background())
	require.NoError(t, err)

	reg, err := solid.NewRegistry(solid.WithKinds(kinds...), solid.WithStrict(true))
	require.NoError(t, err)

	s, err := reg.Build("square", 4)
	require.NoError(t, err)
	assert.Equal(t, 16.0, s.Area())

	_, err = reg.Build("square", -4)
	assert.ErrorIs(t, err, solid.ErrInvalidArgument)
}

func TestLoadScript_MissingFile(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("", WithRuntimeFS(fstest.MapFS{}))

	_, err := rt.LoadScript(ShapeScriptPath("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shapes/nope.risor")
}

func TestLogObject_WritesPrefixedLines(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := &logObject{prefix: "solid", w: &buf}

	l.Info("loaded")
	l.Warn("odd")
	l.Error("bad")
	assert.Equal(t, "[solid] INFO: loaded\n[solid] WARN: odd\n[solid] ERROR: bad\n", buf.String())
}

const geometryModule = "func half(x) {\n    return x / 2\n}\n\nfunc product(a, b) {\n    return a * b\n}\n"

const importingTriangle = "// params: base, height\nimport geometry\n\ngeometry.half(geometry.product(base, height))\n"

func TestLoadKinds_ImportFromFS(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"geometry.risor":        {Data: []byte(geometryModule)},
		"shapes/triangle.risor": {Data: []byte(importingTriangle)},
	}
	kinds, err := NewRuntime("", WithRuntimeFS(fsys)).LoadKinds(context.Background())
	require.NoError(t, err)
	require.Len(t, kinds, 1)

	s, err := kinds[0].Build(6, 5)
	require.NoError(t, err)
	assert.Equal(t, 15.0, s.Area())
}

func TestLoadKinds_ImportFromDisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shapes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "geometry.risor"), []byte(geometryModule), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shapes", "triangle.risor"), []byte(importingTriangle), 0o644))

	kinds, err := NewRuntime(dir).LoadKinds(context.Background())
	require.NoError(t, err)
	require.Len(t, kinds, 1)

	s, err := kinds[0].Build(4, 5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, s.Area())
}

func TestNewShape_MissingImport(t *testing.T) {
	t.Parallel()
	rt := NewRuntime("", WithRuntimeFS(fstest.MapFS{}))

	_, err := rt.NewShape(context.Background(), "orphan", "import nowhere\n1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runtime: script orphan")
}

func TestNewShape_ScriptLog(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	rt := NewRuntime("", WithLogWriter(&buf))

	s, err := rt.NewShape(context.Background(), "square",
		"log.Info(\"computing\")\nlog.Warn(\"odd\")\nlog.Error(\"bad\")\nside * side", []Param{{"side", 3}})
	require.NoError(t, err)
	assert.Equal(t, 9.0, s.Area())
	assert.Equal(t, "[solid] INFO: computing\n[solid] WARN: odd\n[solid] ERROR: bad\n", buf.String())
}

func TestKind_BuildAfterLoadContextCancelled(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"shapes/square.risor": {Data: []byte("// params: side\nside * side\n")},
	}
	ctx, cancel := context.WithCancel(context.Background())
	kinds, err := NewRuntime("", WithRuntimeFS(fsys)).LoadKinds(ctx)
	require.NoError(t, err)
	cancel()

	s, err := kinds[0].Build(5)
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.Area())
}
