package tool

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lightshow/ecs"
	"github.com/milk9111/lightshow/ecs/component"
	"github.com/milk9111/lightshow/prefabs"
	"github.com/milk9111/lightshow/sim"
	"github.com/stretchr/testify/require"
)

func TestToolString(t *testing.T) {
	names := make([]string, 0, len(All))
	for _, tl := range All {
		names = append(names, tl.String())
	}
	require.Equal(t, []string{"Particle", "Attractor", "Repulsor", "Black hole"}, names)
	require.Equal(t, "Unknown", Tool(99).String())
}

func TestApply(t *testing.T) {
	indigo := color.NRGBA{R: 0x81, G: 0x8c, B: 0xf8, A: 0xff}
	spec := prefabs.DefaultTools()
	spec.ParticleColor = prefabs.NewYAMLColor(indigo)

	start := cp.Vector{X: 100, Y: 100}
	end := cp.Vector{X: 150, Y: 80}

	t.Run("particle", func(t *testing.T) {
		s, err := sim.New(sim.DefaultParams())
		require.NoError(t, err)

		e, err := Apply(s, ToolParticle, spec, start, end, rand.New(rand.NewPCG(1, 2)))
		require.NoError(t, err)

		b, ok := ecs.Get(s.World(), e, component.BodyComponent)
		require.True(t, ok)
		require.Equal(t, end, b.Position)
		require.InDelta(t, 5, b.Velocity.X, 1e-9)
		require.InDelta(t, -2, b.Velocity.Y, 1e-9)
		require.GreaterOrEqual(t, b.Radius, 5.0)
		require.Less(t, b.Radius, 15.0)
		require.Equal(t, indigo, b.Color)
	})

	t.Run("click_launch", func(t *testing.T) {
		s, err := sim.New(sim.DefaultParams())
		require.NoError(t, err)
		click := spec
		click.LaunchScale = 0
		click.ParticleColor = nil

		e, err := Apply(s, ToolParticle, click, end, end, rand.New(rand.NewPCG(3, 4)))
		require.NoError(t, err)
		b, _ := ecs.Get(s.World(), e, component.BodyComponent)
		require.LessOrEqual(t, math.Abs(b.Velocity.X), clickSpeed/2)
		require.LessOrEqual(t, math.Abs(b.Velocity.Y), clickSpeed/2)
		require.Equal(t, uint8(0xff), b.Color.A)
	})

	t.Run("attractor_and_repulsor", func(t *testing.T) {
		s, err := sim.New(sim.DefaultParams())
		require.NoError(t, err)

		a, err := Apply(s, ToolAttractor, spec, start, end, nil)
		require.NoError(t, err)
		r, err := Apply(s, ToolRepulsor, spec, start, end, nil)
		require.NoError(t, err)

		fa, _ := ecs.Get(s.World(), a, component.ForcePointComponent)
		fr, _ := ecs.Get(s.World(), r, component.ForcePointComponent)
		require.Equal(t, 100.0, fa.Strength)
		require.Equal(t, -100.0, fr.Strength)
	})

	t.Run("black_hole", func(t *testing.T) {
		s, err := sim.New(sim.DefaultParams())
		require.NoError(t, err)

		e, err := Apply(s, ToolBlackHole, spec, start, cp.Vector{X: 640, Y: 360}, nil)
		require.NoError(t, err)

		b, _ := ecs.Get(s.World(), e, component.BodyComponent)
		require.True(t, ecs.Has(s.World(), e, component.PinnedTagComponent))
		require.Equal(t, 5000.0, b.Mass)
		require.InDelta(t, 2*math.Sqrt(5000/math.Pi), b.Radius, 1e-9)
		require.Equal(t, cp.Vector{}, b.Velocity)
	})

	t.Run("unknown", func(t *testing.T) {
		s, err := sim.New(sim.DefaultParams())
		require.NoError(t, err)
		_, err = Apply(s, Tool(42), spec, start, end, nil)
		require.Error(t, err)
	})
}
