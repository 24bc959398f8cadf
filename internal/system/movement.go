// internal/system/movement.go
package system

import (
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/entity"

	"github.com/go-gl/mathgl/mgl64"
)

// MovementSystem переводит намерение движения в скорость бойца и
// интегрирует позиции сущностей со скоростью. Снаряды двигает их
// собственная система.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, intent := range s.ecs.Intents {
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		// Вектор движения задан относительно взгляда камеры.
		move := intent.Frame.Move
		if move.Len() > 1 {
			move = move.Normalize()
		}
		forward := tr.FlatForward()
		right := mgl64.Vec3{forward.Z(), 0, -forward.X()}
		vel.Linear = forward.Mul(move.Y() * config.CharacterMoveSpeed).
			Add(right.Mul(move.X() * config.CharacterMoveSpeed))
	}

	for id, vel := range s.ecs.Velocities {
		if _, isProjectile := s.ecs.Projectiles[id]; isProjectile {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		tr.Position = tr.Position.Add(vel.Linear.Mul(deltaTime))
	}
}
