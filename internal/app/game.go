// internal/app/game.go
package app

import (
	"go-trion-combat/internal/component"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/input"
	"go-trion-combat/internal/system"
	"go-trion-combat/internal/types"
	"go-trion-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Game держит состояние симуляции и запускает системы в фиксированном
// порядке раз в тик. Всё однопоточно: системы не блокируются и не
// приостанавливаются внутри тика, удаление сущностей применяется
// только на границе тика.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem   *system.MovementSystem
	TriggerSystem    *system.TriggerSystem
	AttackSystem     *system.AttackSystem
	SpecialSystem    *system.SpecialSystem
	SplittingSystem  *system.SplittingSystem
	ProjectileSystem *system.ProjectileSystem
	CollisionSystem  *system.CollisionSystem
	DefeatSystem     *system.DefeatSystem

	log zerolog.Logger
}

// NewGame собирает симуляцию. Сид 0 означает недетерминированный рандом.
func NewGame(log zerolog.Logger, seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		log:             log,
	}
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.TriggerSystem = system.NewTriggerSystem(ecs, dispatcher, log)
	g.AttackSystem = system.NewAttackSystem(ecs, dispatcher, g.TriggerSystem, rng, log)
	g.SpecialSystem = system.NewSpecialSystem(ecs, dispatcher, log)
	g.SplittingSystem = system.NewSplittingSystem(ecs, dispatcher, g.AttackSystem, g.TriggerSystem, log)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher)
	g.CollisionSystem = system.NewCollisionSystem(ecs, dispatcher, log)
	g.DefeatSystem = system.NewDefeatSystem(ecs, log)
	return g
}

// Update выполняет один тик симуляции.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime <= 0 {
		return
	}
	g.ECS.GameTime += deltaTime

	g.MovementSystem.Update(deltaTime)
	g.TriggerSystem.Update(deltaTime)
	g.AttackSystem.Update(deltaTime)
	g.SpecialSystem.Update(deltaTime)
	g.SplittingSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	g.DefeatSystem.Update(deltaTime)

	g.clearIntents()
	g.ECS.ApplyRemovals()
}

// ApplyInput подаёт кадр ввода и состояние камеры для сущности.
// Ориентация бойца следует за камерой.
func (g *Game) ApplyInput(id types.EntityID, frame input.Frame, camera input.Camera) {
	intent, ok := g.ECS.Intents[id]
	if !ok {
		intent = &component.Intent{}
		g.ECS.Intents[id] = intent
	}
	intent.Frame = frame
	intent.Camera = camera

	if tr, ok := g.ECS.Transforms[id]; ok {
		tr.Yaw = camera.Yaw
		tr.Pitch = camera.Pitch
	}
}

// clearIntents сбрасывает одноразовые флаги ввода после обработки тика:
// действия срабатывают по поданному кадру, а не уровнем.
func (g *Game) clearIntents() {
	for _, intent := range g.ECS.Intents {
		hold := intent.Frame.Hold
		move := intent.Frame.Move
		intent.Frame = input.NewFrame()
		intent.Frame.Hold = hold
		intent.Frame.Move = move
	}
}

// SpawnCharacter создаёт бойца с экипировкой. Возвращает 0 при отказе
// экономики набора (стоимость не по карману).
func (g *Game) SpawnCharacter(team types.Team, capacity, attackPower float64, position mgl64.Vec3, loadout [config.SlotCount]string) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Characters[id] = component.NewCharacter(capacity, team, attackPower)
	g.ECS.Transforms[id] = &component.Transform{Position: position}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Colliders[id] = &component.Collider{
		Shape: component.ShapeCapsule,
		Size:  mgl64.Vec3{0.5, 1.8, 0},
		Layer: config.LayerCharacter,
		Mask:  config.LayerProjectile | config.LayerMelee,
	}

	if !g.TriggerSystem.EquipSet(id, loadout) {
		g.ECS.ScheduleRemoval(id)
		g.ECS.ApplyRemovals()
		return 0
	}
	g.log.Info().Uint64("entity", uint64(id)).Int("team", int(team)).Msg("character spawned")
	return id
}
