// internal/component/projectile.go
package component

import (
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Kind     defs.ProjectileKind
	Velocity mgl64.Vec3
	Damage   float64
	MaxRange float64
	Traveled float64
	Lifetime float64
	Age      float64
	OwnerID  types.EntityID
	Team     types.Team

	// Пробитие. Pierced хранит уже пробитые цели, чтобы снаряд,
	// проходящий сквозь цель несколько тиков, не бил её повторно.
	PierceCount int
	MaxPierce   int
	Pierced     map[types.EntityID]struct{}

	// Самонаведение.
	HomingTarget   types.EntityID
	HomingStrength float64

	// Взрыв.
	ExplosionRadius float64
}

// Expired сообщает, исчерпан ли ресурс полёта снаряда.
func (p *Projectile) Expired() bool {
	return p.Age >= p.Lifetime || p.Traveled >= p.MaxRange
}

// Speed возвращает модуль скорости.
func (p *Projectile) Speed() float64 {
	return p.Velocity.Len()
}

// AlreadyPierced проверяет, была ли цель уже пробита этим снарядом.
func (p *Projectile) AlreadyPierced(target types.EntityID) bool {
	_, hit := p.Pierced[target]
	return hit
}

// MarkPierced запоминает пробитую цель.
func (p *Projectile) MarkPierced(target types.EntityID) {
	if p.Pierced == nil {
		p.Pierced = make(map[types.EntityID]struct{})
	}
	p.Pierced[target] = struct{}{}
}
