package prefabs

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/lightshow/common"
)

// scriptTimeout bounds a scene script run; scripts are expected to build a
// few hundred bodies at most.
const scriptTimeout = 2 * time.Second

// RunSceneScript runs scripts/<name>.tengo and reads the `bodies` and
// `force_points` arrays it leaves behind. The script sees `width`, `height`
// and `seed` as globals and may import any tengo stdlib module; seeded
// scripts should draw from rand.rand(seed) rather than the shared source.
func RunSceneScript(ctx context.Context, name string, width, height float64, seed int64) (Scene, error) {
	src, err := LoadScript(name)
	if err != nil {
		return Scene{}, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("width", width)
	_ = script.Add("height", height)
	_ = script.Add("seed", seed)
	_ = script.Add("bodies", []any{})
	_ = script.Add("force_points", []any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return Scene{}, fmt.Errorf("prefabs: run script %s: %w", name, err)
	}

	scene := Scene{Name: ScriptName(name)}
	for i, raw := range compiled.Get("bodies").Array() {
		m, ok := raw.(map[string]any)
		if !ok {
			return Scene{}, fmt.Errorf("prefabs: script %s: bodies[%d] is %T, want map", name, i, raw)
		}
		b, err := bodyFromScript(m)
		if err != nil {
			return Scene{}, fmt.Errorf("prefabs: script %s: bodies[%d]: %w", name, i, err)
		}
		scene.Bodies = append(scene.Bodies, b)
	}
	for i, raw := range compiled.Get("force_points").Array() {
		m, ok := raw.(map[string]any)
		if !ok {
			return Scene{}, fmt.Errorf("prefabs: script %s: force_points[%d] is %T, want map", name, i, raw)
		}
		scene.ForcePoints = append(scene.ForcePoints, ForcePointSpec{
			X:        number(m["x"]),
			Y:        number(m["y"]),
			Strength: number(m["strength"]),
		})
	}
	return scene, nil
}

func bodyFromScript(m map[string]any) (BodySpec, error) {
	b := BodySpec{
		X:      number(m["x"]),
		Y:      number(m["y"]),
		VX:     number(m["vx"]),
		VY:     number(m["vy"]),
		Radius: number(m["radius"]),
		Mass:   number(m["mass"]),
	}
	if pinned, ok := m["pinned"].(bool); ok {
		b.Pinned = pinned
	}
	if s, ok := m["color"].(string); ok && s != "" {
		c, err := common.ParseHex(s)
		if err != nil {
			return BodySpec{}, err
		}
		b.Color = NewYAMLColor(c)
	}
	return b, nil
}

// number converts the numeric kinds tengo hands back.
func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

// ScriptName reduces any accepted spelling of a scene script ("orbit",
// "orbit.tengo", "scripts/orbit") to the basename reported by the Watcher.
func ScriptName(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSuffix(path.Base(cleanScriptPath(name)), ".tengo")
}
