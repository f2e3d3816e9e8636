package entity

import (
	"fmt"

	"github.com/milk9111/starblaster/common"
	"github.com/milk9111/starblaster/ecs"
	"github.com/milk9111/starblaster/ecs/component"
)

// positionLimit bounds any externally supplied coordinate.
const positionLimit = 1e6

// spawnBox creates an entity with a transform, body and sprite. Non-finite
// coordinates are mapped to 0 and sizes are kept non-negative.
func spawnBox(w *ecs.World, x, y, width, height float64, key, label string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: common.ClampFinite(x, -positionLimit, positionLimit),
		Y: common.ClampFinite(y, -positionLimit, positionLimit),
	}); err != nil {
		return 0, fmt.Errorf("entity: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Width:  common.ClampFinite(width, 0, positionLimit),
		Height: common.ClampFinite(height, 0, positionLimit),
	}); err != nil {
		return 0, fmt.Errorf("entity: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Key: key, Label: label}); err != nil {
		return 0, fmt.Errorf("entity: add sprite: %w", err)
	}
	return e, nil
}

func announceSpawn(w *ecs.World, e ecs.Entity, key string) {
	w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Entity: e, Key: key})
}
