package component

import "github.com/milk9111/starblaster/common"

// Transform is the center position of an entity in arena pixels.
type Transform struct {
	X float64
	Y float64
}

// Body is the bounding box, centered on the transform.
type Body struct {
	Width  float64
	Height float64
}

// Bounds combines a transform and body into a collision rect.
func Bounds(t *Transform, b *Body) common.Rect {
	if t == nil || b == nil {
		return common.Rect{}
	}
	return common.Rect{X: t.X, Y: t.Y, Width: b.Width, Height: b.Height}
}

// Sprite is the symbolic asset key a front-end resolves to something drawable.
// Label is an optional caption such as a boss name.
type Sprite struct {
	Key   string
	Label string
}

var TransformComponent = NewComponent[Transform]()
var BodyComponent = NewComponent[Body]()
var SpriteComponent = NewComponent[Sprite]()
