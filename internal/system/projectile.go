// internal/system/projectile.go
package system

import (
	"math"

	"go-trion-combat/internal/component"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/types"
	"go-trion-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// ProjectileSystem управляет полётом снарядов: интеграция, самонаведение,
// истечение по возрасту, дальности и границам арены.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		if s.ecs.RemovalPending(id) {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			// Снаряд без позиции бессмыслен.
			s.ecs.ScheduleRemoval(id)
			continue
		}

		if proj.Kind == defs.ProjectileHoming {
			s.steerHoming(proj, tr.Position, deltaTime)
		}

		step := proj.Velocity.Mul(deltaTime)
		tr.Position = tr.Position.Add(step)
		proj.Traveled += step.Len()
		proj.Age += deltaTime

		switch {
		case tr.Position.Y() <= config.GroundLevel:
			// Контакт с землёй: взрывные срабатывают, остальные гаснут.
			s.expire(id, proj, tr.Position, true)
		case proj.Expired():
			s.expire(id, proj, tr.Position, proj.Kind == defs.ProjectileExplosive)
		case s.outOfArena(tr.Position):
			s.expire(id, proj, tr.Position, false)
		}
	}
}

// steerHoming доворачивает скорость к ближайшему противнику в радиусе
// поиска. Доля поворота за тик зажата в [HomingLerpMin, HomingLerpMax]
// независимо от скачков deltaTime, модуль скорости сохраняется.
func (s *ProjectileSystem) steerHoming(proj *component.Projectile, position mgl64.Vec3, deltaTime float64) {
	targetID := s.findHomingTarget(proj, position)
	proj.HomingTarget = targetID
	if targetID == 0 {
		return
	}
	targetTr, ok := s.ecs.Transforms[targetID]
	if !ok {
		return
	}

	toTarget := targetTr.Position.Sub(position)
	if toTarget.Len() < 1e-9 {
		return
	}

	speed := proj.Speed()
	if speed < 1e-9 {
		return
	}

	t := utils.Clamp(proj.HomingStrength*deltaTime, config.HomingLerpMin, config.HomingLerpMax)
	dir := utils.RotateTowards(proj.Velocity.Mul(1/speed), toTarget.Normalize(), t)
	proj.Velocity = dir.Mul(speed)
}

// findHomingTarget ищет ближайшего живого бойца противоположной команды
// в радиусе самонаведения.
func (s *ProjectileSystem) findHomingTarget(proj *component.Projectile, position mgl64.Vec3) types.EntityID {
	var nearest types.EntityID
	minDist := math.MaxFloat64
	for id, char := range s.ecs.Characters {
		if char.Team == proj.Team || id == proj.OwnerID {
			continue
		}
		if _, defeated := s.ecs.Defeated[id]; defeated {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		dist := tr.Position.Sub(position).Len()
		if dist <= config.HomingSearchRadius && dist < minDist {
			minDist = dist
			nearest = id
		}
	}
	return nearest
}

func (s *ProjectileSystem) outOfArena(position mgl64.Vec3) bool {
	flat := mgl64.Vec3{position.X(), 0, position.Z()}
	return flat.Len() > defs.Balance.ArenaRadius
}

func (s *ProjectileSystem) expire(id types.EntityID, proj *component.Projectile, position mgl64.Vec3, detonate bool) {
	if detonate && proj.Kind == defs.ProjectileExplosive {
		ApplyExplosion(s.ecs, s.dispatcher, position, proj)
	}
	s.dispatcher.Emit(event.ProjectileExpired, id)
	s.ecs.ScheduleRemoval(id)
}
