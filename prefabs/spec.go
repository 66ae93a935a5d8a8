package prefabs

import (
	"fmt"
	"image/color"

	"github.com/milk9111/lightshow/common"
	"github.com/milk9111/lightshow/ecs/component"
	"gopkg.in/yaml.v3"
)

// PresetSpec is one sandbox preset: parameters, tool defaults and an
// optional starting scene (inline bodies and/or a scene script).
type PresetSpec struct {
	Name   string             `yaml:"name"`
	Params component.Settings `yaml:"params"`
	Tools  ToolSpec           `yaml:"tools"`
	Scene  Scene              `yaml:"scene"`
	Script string             `yaml:"script"`
}

// ToolSpec configures the interactive spawn tools.
type ToolSpec struct {
	// ParticleColor is used for every new particle; unset picks a random hue.
	ParticleColor *YAMLColor `yaml:"particle_color"`
	MinRadius     float64    `yaml:"min_radius"`
	MaxRadius     float64    `yaml:"max_radius"`
	LaunchScale   float64    `yaml:"launch_scale"`
	ForceStrength float64    `yaml:"force_strength"`
	BlackHoleMass float64    `yaml:"black_hole_mass"`
}

// DefaultTools matches the light-show exercise.
func DefaultTools() ToolSpec {
	return ToolSpec{
		MinRadius:     5,
		MaxRadius:     15,
		LaunchScale:   0.1,
		ForceStrength: 100,
		BlackHoleMass: 5000,
	}
}

// Scene is a list of bodies and force points to place at start-up.
type Scene struct {
	Name        string           `yaml:"name,omitempty"`
	Bodies      []BodySpec       `yaml:"bodies,omitempty"`
	ForcePoints []ForcePointSpec `yaml:"force_points,omitempty"`
}

type BodySpec struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	VX     float64    `yaml:"vx"`
	VY     float64    `yaml:"vy"`
	Radius float64    `yaml:"radius"`
	Mass   float64    `yaml:"mass,omitempty"`
	Color  *YAMLColor `yaml:"color,omitempty"`
	Pinned bool       `yaml:"pinned,omitempty"`
}

type ForcePointSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Strength float64 `yaml:"strength"`
}

func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadPreset reads name.yaml on top of the given parameter defaults and the
// default tools, so presets only list what they change.
func LoadPreset(name string, defaults component.Settings) (*PresetSpec, error) {
	spec, err := LoadSpec(name, PresetSpec{Name: name, Params: defaults, Tools: DefaultTools()})
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MarshalScene renders a scene as YAML.
func MarshalScene(s Scene) ([]byte, error) {
	out, err := yaml.Marshal(struct {
		Scene Scene `yaml:"scene"`
	}{s})
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal scene: %w", err)
	}
	return out, nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

// NewYAMLColor wraps c.
func NewYAMLColor(c color.NRGBA) *YAMLColor {
	return &YAMLColor{NRGBA: c}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := common.ParseHex(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return common.Hex(c.NRGBA), nil
}

// ColorOr returns the decoded colour, or fallback when c is nil.
func (c *YAMLColor) ColorOr(fallback color.NRGBA) color.NRGBA {
	if c == nil {
		return fallback
	}
	return c.NRGBA
}
