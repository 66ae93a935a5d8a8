package prefabs

import (
	"context"
	"image/color"
	"testing"

	"github.com/milk9111/lightshow/ecs/component"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func defaults() component.Settings {
	return component.Settings{Width: 1280, Height: 720, G: 1, Restitution: 0.8, MassFactor: 0.1}
}

func TestLoadPreset(t *testing.T) {
	spec, err := LoadPreset("lightshow", defaults())
	require.NoError(t, err)

	require.Equal(t, "lightshow", spec.Name)
	require.Equal(t, 1280.0, spec.Params.Width)
	require.Equal(t, 0.1, spec.Params.GravityY)
	require.True(t, spec.Params.ParticleCollisions)
	require.True(t, spec.Params.Effects)
	require.Equal(t, 10, spec.Params.SparkCount)

	require.NotNil(t, spec.Tools.ParticleColor)
	require.Equal(t, color.NRGBA{R: 0x81, G: 0x8c, B: 0xf8, A: 0xff}, spec.Tools.ParticleColor.NRGBA)
	require.Equal(t, 100.0, spec.Tools.ForceStrength)
	// Not listed in the file, so the default survives.
	require.Equal(t, 5000.0, spec.Tools.BlackHoleMass)
}

func TestLoadPresetWithScript(t *testing.T) {
	spec, err := LoadPreset("orbit.yaml", defaults())
	require.NoError(t, err)
	require.Equal(t, "orbit", spec.Script)
	require.Equal(t, 0.0, spec.Params.GravityY)
	require.Equal(t, 1.0, spec.Params.Restitution)
}

func TestLoadPresetMissing(t *testing.T) {
	_, err := LoadPreset("does-not-exist", defaults())
	require.Error(t, err)
	require.Contains(t, err.Error(), "prefabs: load")
}

func TestNames(t *testing.T) {
	require.ElementsMatch(t, []string{"lightshow", "orbit", "sandbox"}, Names())
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#ef4444"`, color.NRGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}, false},
		{"rgba", `"#00000080"`, color.NRGBA{A: 0x80}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"list", `[1, 2, 3]`, color.NRGBA{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, c.NRGBA)
		})
	}

	var unset *YAMLColor
	require.Equal(t, color.NRGBA{R: 1, A: 0xff}, unset.ColorOr(color.NRGBA{R: 1, A: 0xff}))
}

func TestMarshalSceneRoundTrip(t *testing.T) {
	scene := Scene{
		Name: "pair",
		Bodies: []BodySpec{
			{X: 10, Y: 20, VX: 1, Radius: 5, Color: NewYAMLColor(color.NRGBA{R: 0xff, A: 0xff})},
			{X: 30, Y: 20, Radius: 4, Mass: 5000, Pinned: true},
		},
		ForcePoints: []ForcePointSpec{{X: 100, Y: 100, Strength: -100}},
	}

	out, err := MarshalScene(scene)
	require.NoError(t, err)
	require.Contains(t, string(out), "#ff0000")

	var decoded struct {
		Scene Scene `yaml:"scene"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, scene, decoded.Scene)
}

func TestRunSceneScriptCradle(t *testing.T) {
	scene, err := RunSceneScript(context.Background(), "cradle", 1280, 720, 1)
	require.NoError(t, err)

	require.Equal(t, "cradle", scene.Name)
	require.Len(t, scene.Bodies, 7)
	require.Empty(t, scene.ForcePoints)

	striker := scene.Bodies[6]
	require.Equal(t, 12.0, striker.VX)
	require.Equal(t, 36.0, striker.X)
	require.NotNil(t, striker.Color)
	require.Equal(t, uint8(0xef), striker.Color.R)

	for _, b := range scene.Bodies[:6] {
		require.Equal(t, 360.0, b.Y)
		require.Equal(t, 18.0, b.Radius)
		require.Nil(t, b.Color)
	}
}

func TestRunSceneScriptSeeded(t *testing.T) {
	a, err := RunSceneScript(context.Background(), "orbit", 1280, 720, 42)
	require.NoError(t, err)
	b, err := RunSceneScript(context.Background(), "scripts/orbit.tengo", 1280, 720, 42)
	require.NoError(t, err)

	require.Len(t, a.ForcePoints, 1)
	require.Equal(t, 100.0, a.ForcePoints[0].Strength)
	require.Len(t, a.Bodies, 24)
	require.Equal(t, a, b)
}

func TestRunSceneScriptMissing(t *testing.T) {
	_, err := RunSceneScript(context.Background(), "nope", 100, 100, 1)
	require.Error(t, err)
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"rain", "rain.tengo", "scripts/rain", "prefabs/scripts/rain.tengo"} {
		require.Equal(t, "scripts/rain.tengo", cleanScriptPath(in), in)
	}
}

func TestScriptNameMatchesWatcher(t *testing.T) {
	for _, in := range []string{"orbit", "orbit.tengo", "scripts/orbit", "prefabs/scripts/orbit.tengo"} {
		require.Equal(t, "orbit", ScriptName(in), in)
		change, ok := classify("/tmp/prefabs/scripts/orbit.tengo")
		require.True(t, ok)
		require.Equal(t, change.Name, ScriptName(in), in)
	}
	require.Empty(t, ScriptName(""))
}

func TestClassify(t *testing.T) {
	c, ok := classify("/tmp/prefabs/sandbox.yaml")
	require.True(t, ok)
	require.Equal(t, Change{Path: "/tmp/prefabs/sandbox.yaml", Name: "sandbox", Kind: ChangePreset}, c)

	c, ok = classify("prefabs/scripts/rain.tengo")
	require.True(t, ok)
	require.Equal(t, ChangeScript, c.Kind)
	require.Equal(t, "rain", c.Name)

	_, ok = classify("notes.txt")
	require.False(t, ok)
}

func TestWatcherSkipsMissingDirs(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, dir+"/missing")
	require.NoError(t, err)
	defer w.Close()
	require.Equal(t, []string{dir}, w.Watched())
}
