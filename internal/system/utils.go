// internal/system/utils.go
package system

import (
	"go-trion-combat/internal/component"
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/types"

	"github.com/go-gl/mathgl/mgl64"
)

// ApplyDamage наносит урон сущности. При viaShield развёрнутый щит
// поглощает удар целиком: прочность уменьшается, избыток на носителя
// не переносится. Возвращает true, если боец побеждён этим ударом.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, targetID types.EntityID, damage float64, viaShield bool) bool {
	if damage < 0 {
		damage = 0
	}

	if viaShield {
		if shield, ok := ecs.Shields[targetID]; ok && shield.Deployed {
			if shield.Absorb(damage) {
				delete(ecs.Shields, targetID)
				dispatcher.Emit(event.ShieldBroken, targetID)
			}
			return false
		}
	}

	char, hasChar := ecs.Characters[targetID]
	if !hasChar {
		return false
	}
	if _, alreadyDefeated := ecs.Defeated[targetID]; alreadyDefeated {
		return false
	}

	if char.TakeDamage(damage) {
		ecs.Defeated[targetID] = &component.Defeated{GraceRemaining: defs.Balance.DefeatGrace}
		dispatcher.Emit(event.CharacterDefeated, targetID)
		return true
	}
	return false
}

// ApplyExplosion наносит урон по площади: линейное затухание от центра
// до радиуса взрыва, не ниже нуля. Союзники владельца не задеваются.
func ApplyExplosion(ecs *entity.ECS, dispatcher *event.Dispatcher, center mgl64.Vec3, proj *component.Projectile) {
	if proj.ExplosionRadius <= 0 {
		return
	}
	dispatcher.Emit(event.ExplosionTriggered, center)

	for id, char := range ecs.Characters {
		if char.Team == proj.Team {
			continue
		}
		tr, ok := ecs.Transforms[id]
		if !ok {
			continue
		}
		dist := tr.Position.Sub(center).Len()
		if dist > proj.ExplosionRadius {
			continue
		}
		damage := proj.Damage * (1 - dist/proj.ExplosionRadius)
		if damage <= 0 {
			continue
		}
		ApplyDamage(ecs, dispatcher, id, damage, true)
	}
}
