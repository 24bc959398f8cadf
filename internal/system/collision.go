// internal/system/collision.go
package system

import (
	"math"

	"go-trion-combat/internal/component"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/types"

	"github.com/rs/zerolog"
)

// CollisionSystem проверяет все пары коллайдеров раз в тик и применяет
// урон. Порядок применения: развёрнутый щит поглощает снаряд целиком,
// иначе урон идёт в трион бойца. Ближний бой щиты игнорирует.
type CollisionSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	log        zerolog.Logger
}

func NewCollisionSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, log zerolog.Logger) *CollisionSystem {
	return &CollisionSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		log:        log.With().Str("system", "collision").Logger(),
	}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	ids := make([]types.EntityID, 0, len(s.ecs.Colliders))
	for id := range s.ecs.Colliders {
		ids = append(ids, id)
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if s.ecs.RemovalPending(a) || s.ecs.RemovalPending(b) {
				continue
			}
			ca, cb := s.ecs.Colliders[a], s.ecs.Colliders[b]
			if !ca.Intersects(cb) {
				continue
			}
			s.resolvePair(a, b, ca, cb)
		}
	}
}

func (s *CollisionSystem) resolvePair(a, b types.EntityID, ca, cb *component.Collider) {
	// Снаряд против бойца.
	if proj, ok := s.ecs.Projectiles[a]; ok {
		if _, isChar := s.ecs.Characters[b]; isChar {
			s.resolveProjectileHit(a, proj, b, ca, cb)
			return
		}
	}
	if proj, ok := s.ecs.Projectiles[b]; ok {
		if _, isChar := s.ecs.Characters[a]; isChar {
			s.resolveProjectileHit(b, proj, a, cb, ca)
			return
		}
	}

	// Объём ближнего боя против бойца.
	if melee, ok := s.ecs.MeleeAttacks[a]; ok {
		if _, isChar := s.ecs.Characters[b]; isChar {
			s.resolveMeleeHit(a, melee, b)
			return
		}
	}
	if melee, ok := s.ecs.MeleeAttacks[b]; ok {
		if _, isChar := s.ecs.Characters[a]; isChar {
			s.resolveMeleeHit(b, melee, a)
		}
	}
}

// resolveProjectileHit применяет попадание снаряда в бойца: командный
// фильтр, самоиммунитет владельца, сферический тест, приоритет щита.
func (s *CollisionSystem) resolveProjectileHit(projID types.EntityID, proj *component.Projectile, targetID types.EntityID, cp, ct *component.Collider) {
	if proj.OwnerID == targetID {
		return
	}
	char := s.ecs.Characters[targetID]
	if char.Team == proj.Team {
		return
	}
	if _, defeated := s.ecs.Defeated[targetID]; defeated {
		return
	}
	if proj.AlreadyPierced(targetID) {
		return
	}

	projTr, ok := s.ecs.Transforms[projID]
	if !ok {
		return
	}
	targetTr, ok := s.ecs.Transforms[targetID]
	if !ok {
		return
	}
	dist := projTr.Position.Sub(targetTr.Position).Len()
	if dist > cp.Radius()+ct.Radius() {
		return
	}

	// Развёрнутый щит поглощает снаряд без пробития и без переноса
	// избытка. Снаряд расходуется всегда.
	if shield, ok := s.ecs.Shields[targetID]; ok && shield.Deployed {
		ApplyDamage(s.ecs, s.dispatcher, targetID, proj.Damage, true)
		s.ecs.ScheduleRemoval(projID)
		return
	}

	if proj.Kind == defs.ProjectileExplosive {
		ApplyExplosion(s.ecs, s.dispatcher, projTr.Position, proj)
		s.ecs.ScheduleRemoval(projID)
		return
	}

	ApplyDamage(s.ecs, s.dispatcher, targetID, proj.Damage, false)

	// Пробитие: снаряд продолжает полёт с ослабленным уроном.
	if proj.Kind == defs.ProjectilePiercing && proj.PierceCount < proj.MaxPierce {
		proj.PierceCount++
		proj.Damage *= config.PierceDamageFactor
		proj.MarkPierced(targetID)
		return
	}

	s.ecs.ScheduleRemoval(projID)
}

// resolveMeleeHit применяет секторный тест замаха: дистанция, активный
// сегмент, допуск по высоте и защита от повторного удара по той же цели.
func (s *CollisionSystem) resolveMeleeHit(volumeID types.EntityID, melee *component.MeleeAttack, targetID types.EntityID) {
	if melee.OwnerID == targetID {
		return
	}
	char := s.ecs.Characters[targetID]
	if char.Team == melee.Team {
		return
	}
	if _, defeated := s.ecs.Defeated[targetID]; defeated {
		return
	}
	if melee.AlreadyHit(targetID) {
		return
	}

	targetTr, ok := s.ecs.Transforms[targetID]
	if !ok {
		return
	}

	toTarget := targetTr.Position.Sub(melee.Origin)
	if math.Abs(toTarget.Y()) > config.MeleeHeightTolerance {
		return
	}
	flat := toTarget
	flat[1] = 0
	if flat.Len() > melee.Range {
		return
	}
	if !melee.InActiveSegment(flat) {
		return
	}

	melee.MarkHit(targetID)
	s.dispatcher.Emit(event.MeleeHit, event.MeleeHitEvent{
		Attacker: melee.OwnerID,
		Target:   targetID,
		Swing:    melee.SwingID,
		Damage:   melee.Damage,
	})
	ApplyDamage(s.ecs, s.dispatcher, targetID, melee.Damage, false)
}
