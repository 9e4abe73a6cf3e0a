package sandbox

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// UpdateMode selects how the model-view transform changes each frame.
type UpdateMode int

const (
	UpdateStatic  UpdateMode = iota // identity transform
	UpdateAnimate                   // AnimateModelView(frame)
	UpdateInput                     // keyboard-driven Controller
)

func (m UpdateMode) String() string {
	switch m {
	case UpdateStatic:
		return "static"
	case UpdateAnimate:
		return "animate"
	case UpdateInput:
		return "input"
	default:
		return fmt.Sprintf("UpdateMode(%d)", int(m))
	}
}

// windowUnit is multiplied by 16 and 9 to get the default window size.
const windowUnit = 100

// Config holds everything a sandbox variant needs.
type Config struct {
	Title         string
	Width, Height int
	ClearColor    [4]float32

	// Root is the OS directory resources are read from. Resources defaults
	// to os.DirFS(Root) and may be replaced for tests or embedding.
	Root      string
	Resources fs.FS

	ShaderDir string  // directory of the default stage table, relative to Root
	Manifest  string  // optional YAML stage table, relative to Root
	Stages    []Stage // explicit stage table; overrides ShaderDir and Manifest

	ModelViewUniform  string
	ProjectionUniform string

	Mesh      Mesh
	Mode      UpdateMode
	Bindings  []KeyBinding
	FrameStep float32 // seconds added to the controller timer per frame
	XRayKey   Key     // KeyNone disables the x-ray toggle

	HotReload   bool
	DebugOutput bool
	Verbose     bool
}

// Option configures a Config.
type Option func(*Config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithSize sets the initial window size.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithClearColor sets the framebuffer clear color.
func WithClearColor(r, g, b, a float32) Option {
	return func(c *Config) { c.ClearColor = [4]float32{r, g, b, a} }
}

// WithRoot sets the resource root directory.
func WithRoot(dir string) Option {
	return func(c *Config) { c.Root = dir }
}

// WithResources reads resources from fsys instead of the root directory.
func WithResources(fsys fs.FS) Option {
	return func(c *Config) { c.Resources = fsys }
}

// WithShaderDir selects the directory of the default stage table.
func WithShaderDir(dir string) Option {
	return func(c *Config) { c.ShaderDir = dir }
}

// WithManifest loads the stage table from a YAML file.
func WithManifest(name string) Option {
	return func(c *Config) { c.Manifest = name }
}

// WithStages sets an explicit stage table.
func WithStages(stages []Stage) Option {
	return func(c *Config) { c.Stages = stages }
}

// WithMesh sets the geometry to draw.
func WithMesh(m Mesh) Option {
	return func(c *Config) { c.Mesh = m }
}

// WithUpdateMode sets how the transform is updated.
func WithUpdateMode(m UpdateMode) Option {
	return func(c *Config) { c.Mode = m }
}

// WithBindings replaces the controller key table.
func WithBindings(b []KeyBinding) Option {
	return func(c *Config) { c.Bindings = b }
}

// WithXRayKey sets the key that switches to line rasterization while held.
func WithXRayKey(k Key) Option {
	return func(c *Config) { c.XRayKey = k }
}

// WithHotReload rebuilds the pipeline when shader files change.
func WithHotReload(on bool) Option {
	return func(c *Config) { c.HotReload = on }
}

// WithDebugOutput enables the GL debug message callback.
func WithDebugOutput(on bool) Option {
	return func(c *Config) { c.DebugOutput = on }
}

// WithVerbose enables debug logging.
func WithVerbose(on bool) Option {
	return func(c *Config) { c.Verbose = on }
}

// AnimatedCube is the deterministic spinning cube.
func AnimatedCube() Option {
	return func(c *Config) {
		c.Title = "sandbox: cube"
		c.ShaderDir = "res/shaders/cube"
		c.Mesh = CubeMesh()
		c.Mode = UpdateAnimate
		c.XRayKey = KeyNone
	}
}

// ColoredTriangle is a static triangle with per-vertex colors.
func ColoredTriangle() Option {
	return func(c *Config) {
		c.Title = "sandbox: triangle"
		c.ShaderDir = "res/shaders/color"
		c.Mesh = TriangleMesh()
		c.Mode = UpdateStatic
		c.XRayKey = KeyNone
	}
}

// InteractiveCube is the cube driven by WASD/arrows and R/F, with X for x-ray.
func InteractiveCube() Option {
	return func(c *Config) {
		c.Title = "sandbox: x-ray"
		c.ShaderDir = "res/shaders/cube"
		c.Mesh = CubeMesh()
		c.Mode = UpdateInput
		c.XRayKey = KeyX
	}
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) Config {
	c := Config{
		Title:             "sandbox",
		Width:             16 * windowUnit,
		Height:            9 * windowUnit,
		ClearColor:        [4]float32{0, 0.25, 0, 1},
		Root:              ".",
		ShaderDir:         "res/shaders/cube",
		ModelViewUniform:  "mv_matrix",
		ProjectionUniform: "proj_matrix",
		Mesh:              CubeMesh(),
		Mode:              UpdateAnimate,
		FrameStep:         1.0 / 60.0,
		DebugOutput:       true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.Resources == nil {
		c.Resources = os.DirFS(c.Root)
	}
	return c
}

// ResolveStages returns the stage table: Stages if set, else the manifest,
// else DefaultStages(ShaderDir).
func (c Config) ResolveStages() ([]Stage, error) {
	switch {
	case c.Stages != nil:
		return c.Stages, nil
	case c.Manifest != "":
		return LoadStages(c.Resources, c.Manifest)
	default:
		return DefaultStages(c.ShaderDir), nil
	}
}

// InitialTransform returns the model-view matrix before the first frame.
func (c Config) InitialTransform() mgl32.Mat4 {
	switch c.Mode {
	case UpdateAnimate:
		return AnimateModelView(0)
	case UpdateInput:
		return mgl32.Translate3D(0, 0, -2)
	default:
		return mgl32.Ident4()
	}
}
