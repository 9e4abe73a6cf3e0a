package sandbox

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// StageKind identifies a programmable pipeline stage.
type StageKind int

const (
	StageVertex StageKind = iota
	StageTessControl
	StageTessEvaluation
	StageGeometry
	StageFragment
	StageCompute
	stageKindCount
)

var stageKindNames = [stageKindCount]string{
	StageVertex:         "vertex",
	StageTessControl:    "tess-control",
	StageTessEvaluation: "tess-evaluation",
	StageGeometry:       "geometry",
	StageFragment:       "fragment",
	StageCompute:        "compute",
}

func (k StageKind) String() string {
	if k < 0 || k >= stageKindCount {
		return fmt.Sprintf("StageKind(%d)", int(k))
	}
	return stageKindNames[k]
}

// ParseStageKind maps a stage name to its kind. Matching ignores case and
// accepts the underscore spelling ("tess_control").
func ParseStageKind(s string) (StageKind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for k, n := range stageKindNames {
		if n == name {
			return StageKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown stage kind %q", s)
}

// UnmarshalYAML decodes a stage kind from its name.
func (k *StageKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	kind, err := ParseStageKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = kind
	return nil
}

// Stage describes one entry of the shader table.
type Stage struct {
	Enabled bool      `yaml:"enabled"`
	Kind    StageKind `yaml:"kind"`
	Path    string    `yaml:"path"`
}

// DefaultStages returns the shader table used by every variant: one file per
// stage kind under dir, with only the vertex and fragment stages enabled.
func DefaultStages(dir string) []Stage {
	return []Stage{
		{Enabled: true, Kind: StageVertex, Path: path.Join(dir, "Vertex.shader")},
		{Enabled: false, Kind: StageTessControl, Path: path.Join(dir, "TessellationControl.shader")},
		{Enabled: false, Kind: StageTessEvaluation, Path: path.Join(dir, "TessellationEvaluation.shader")},
		{Enabled: false, Kind: StageGeometry, Path: path.Join(dir, "Geometry.shader")},
		{Enabled: true, Kind: StageFragment, Path: path.Join(dir, "Fragment.shader")},
		{Enabled: false, Kind: StageCompute, Path: path.Join(dir, "Compute.shader")},
	}
}

// EnabledStages returns the enabled entries of stages, in table order.
func EnabledStages(stages []Stage) []Stage {
	var out []Stage
	for _, s := range stages {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// manifest is the on-disk form of a shader table.
type manifest struct {
	Stages []Stage `yaml:"stages"`
}

// LoadStages reads a YAML shader table from fsys.
//
//	stages:
//	  - kind: vertex
//	    path: Vertex.shader
//	    enabled: true
//
// Relative stage paths resolve against the manifest's directory.
func LoadStages(fsys fs.FS, name string) ([]Stage, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", name, err)
	}
	if len(m.Stages) == 0 {
		return nil, fmt.Errorf("manifest %s: no stages", name)
	}

	dir := path.Dir(name)
	for i := range m.Stages {
		if m.Stages[i].Path == "" {
			return nil, fmt.Errorf("manifest %s: stage %d (%s) has no path", name, i, m.Stages[i].Kind)
		}
		if !path.IsAbs(m.Stages[i].Path) {
			m.Stages[i].Path = path.Join(dir, m.Stages[i].Path)
		}
	}
	return m.Stages, nil
}
