// internal/component/collider.go
package component

import "github.com/go-gl/mathgl/mgl64"

// ColliderShape — форма коллайдера.
type ColliderShape int

const (
	ShapeSphere ColliderShape = iota
	ShapeBox
	ShapeCapsule
)

// Collider описывает объём столкновений сущности. Используется и для
// физических тел, и для временных объёмов атак ближнего боя.
type Collider struct {
	Shape ColliderShape
	// Size: для сферы радиус в X, для капсулы радиус в X и высота в Y,
	// для коробки половинные размеры по осям.
	Size      mgl64.Vec3
	Layer     uint32
	Mask      uint32
	IsTrigger bool // объём без физического отклика
}

// Radius возвращает радиус ограничивающей сферы.
func (c *Collider) Radius() float64 {
	switch c.Shape {
	case ShapeSphere, ShapeCapsule:
		return c.Size.X()
	default:
		return c.Size.Len()
	}
}

// Intersects сообщает, пересекаются ли маски слоёв двух коллайдеров.
func (c *Collider) Intersects(other *Collider) bool {
	return c.Mask&other.Layer != 0 && other.Mask&c.Layer != 0
}
