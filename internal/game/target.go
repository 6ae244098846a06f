package game

import (
	"fmt"

	"dropshot/internal/components"
	"dropshot/internal/config"
	"dropshot/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
)

// TargetType is an immutable scoring descriptor. The set of types is fixed
// at startup; every spawned target holds its type by value.
type TargetType struct {
	Name     string
	Points   int
	Color    rl.Color
	SoundKey string
	Shape    Shape
	Size     float32
}

// Target pairs a render-participating object with its simulated body. The
// two are created and destroyed together; the body is the position authority
// and the visual transform is synchronized from it each frame.
type Target struct {
	ID     uint64
	Object *engine.GameObject
	Body   *components.Rigidbody
	Type   TargetType
}

// TypesFromConfig resolves the tuning's type table into runtime descriptors.
func TypesFromConfig(cfgs []config.TargetTypeConfig) ([]TargetType, error) {
	types := make([]TargetType, 0, len(cfgs))
	for _, c := range cfgs {
		var shape Shape
		switch c.Shape {
		case "box":
			shape = ShapeBox
		case "sphere":
			shape = ShapeSphere
		default:
			return nil, fmt.Errorf("target %s: unknown shape %q", c.Name, c.Shape)
		}
		types = append(types, TargetType{
			Name:     c.Name,
			Points:   c.Points,
			Color:    lookupColor(c.Color),
			SoundKey: c.Sound,
			Shape:    shape,
			Size:     c.Size,
		})
	}
	return types, nil
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}
