// internal/component/transform.go
package component

import (
	"go-trion-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform — позиция и ориентация сущности в мире.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64 // радианы, от оси +Z
	Pitch    float64
}

// Forward возвращает единичный вектор взгляда.
func (t *Transform) Forward() mgl64.Vec3 {
	return utils.DirectionFromAngles(t.Yaw, t.Pitch)
}

// FlatForward возвращает вектор взгляда, спроецированный на горизонталь.
func (t *Transform) FlatForward() mgl64.Vec3 {
	return utils.DirectionFromAngles(t.Yaw, 0)
}

// Velocity — компонент скорости
type Velocity struct {
	Linear mgl64.Vec3
}
