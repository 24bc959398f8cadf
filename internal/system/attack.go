// internal/system/attack.go
package system

import (
	"go-trion-combat/internal/component"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/input"
	"go-trion-combat/internal/types"
	"go-trion-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AttackSystem разрешает атаки: замахи ближнего боя и одиночные выстрелы.
// Залпы кубов-расщепителей обрабатывает SplittingSystem.
type AttackSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	triggers   *TriggerSystem
	rng        *utils.PRNGService
	log        zerolog.Logger
}

func NewAttackSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, triggers *TriggerSystem, rng *utils.PRNGService, log zerolog.Logger) *AttackSystem {
	return &AttackSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		triggers:   triggers,
		rng:        rng,
		log:        log.With().Str("system", "attack").Logger(),
	}
}

func (s *AttackSystem) Update(deltaTime float64) {
	// Продвигаем живые замахи и убираем завершённые.
	for id, melee := range s.ecs.MeleeAttacks {
		melee.Elapsed += deltaTime
		if melee.Finished() {
			s.ecs.ScheduleRemoval(id)
		}
	}

	// Сбрасываем боевое намерение, если замах закончился.
	for _, ci := range s.ecs.CombatIntents {
		if ci.ActiveSwing == 0 {
			continue
		}
		melee, alive := s.ecs.MeleeAttacks[ci.ActiveSwing]
		if !alive || melee.Finished() || s.ecs.RemovalPending(ci.ActiveSwing) {
			ci.Attacking = false
			ci.ActiveSwing = 0
		}
	}

	// Обрабатываем намерения атаки.
	for id, intent := range s.ecs.Intents {
		trig, ok := s.ecs.Triggers[id]
		if !ok {
			continue
		}
		for hand := types.Hand(0); hand < types.HandCount; hand++ {
			if !intent.Frame.Primary[hand] || !trig.Generated[hand] {
				continue
			}
			def, ok := defs.TriggerLibrary[trig.SelectedID(hand)]
			if !ok {
				continue
			}
			switch {
			case def.Category == defs.CategoryAttacker && def.Melee != nil:
				s.StartMelee(id, hand, &def)
			case def.IsRanged():
				s.FireRanged(id, hand, &def, intent.Camera)
			}
		}
	}
}

// StartMelee создаёт объём атаки ближнего боя: сектор перед бойцом,
// раскрывающийся по сегментам за время замаха. Повторный замах во время
// активного — отказ.
func (s *AttackSystem) StartMelee(id types.EntityID, hand types.Hand, def *defs.TriggerDefinition) bool {
	if ci, ok := s.ecs.CombatIntents[id]; ok && ci.Attacking {
		return false
	}
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return false
	}
	char, ok := s.ecs.Characters[id]
	if !ok {
		return false
	}
	if !s.triggers.ConsumeFire(id, hand) {
		return false
	}

	damage := def.Damage + char.AttackPower

	// Каталог может не задавать геометрию замаха.
	sector := def.Melee.SectorAngle
	if sector <= 0 {
		sector = config.MeleeSectorAngle
	}
	duration := def.Melee.SwingDuration
	if duration <= 0 {
		duration = config.MeleeSwingDuration
	}

	volumeID := s.ecs.NewEntity()
	melee := &component.MeleeAttack{
		OwnerID:     id,
		Team:        char.Team,
		SwingID:     uuid.New(),
		TriggerID:   def.ID,
		Damage:      damage,
		BaseDamage:  damage,
		Range:       def.Range,
		BaseRange:   def.Range,
		SectorAngle: sector,
		Segments:    config.MeleeSegments,
		Duration:    duration,
		Origin:      tr.Position,
		Facing:      tr.FlatForward(),
		HitTargets:  make(map[types.EntityID]struct{}),
	}
	s.ecs.MeleeAttacks[volumeID] = melee
	s.ecs.Transforms[volumeID] = &component.Transform{Position: tr.Position, Yaw: tr.Yaw}
	s.ecs.Colliders[volumeID] = &component.Collider{
		Shape:     component.ShapeSphere,
		Size:      mgl64.Vec3{def.Range, 0, 0},
		Layer:     config.LayerMelee,
		Mask:      config.LayerCharacter,
		IsTrigger: true,
	}
	s.ecs.Owners[volumeID] = &component.Owner{EntityID: id}

	ci, ok := s.ecs.CombatIntents[id]
	if !ok {
		ci = &component.CombatIntent{}
		s.ecs.CombatIntents[id] = ci
	}
	ci.Attacking = true
	ci.TriggerID = def.ID
	ci.ActiveSwing = volumeID
	return true
}

// FireRanged выпускает один снаряд. Направление берётся из камеры с
// коррекцией параллакса между камерой и точкой выстрела, затем
// отклоняется в конусе разброса категории.
func (s *AttackSystem) FireRanged(id types.EntityID, hand types.Hand, def *defs.TriggerDefinition, camera input.Camera) bool {
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return false
	}
	char, ok := s.ecs.Characters[id]
	if !ok {
		return false
	}
	if !s.triggers.ConsumeFire(id, hand) {
		return false
	}

	muzzle := tr.Position.
		Add(tr.FlatForward().Mul(config.MuzzleForwardOffset)).
		Add(mgl64.Vec3{0, config.MuzzleHeightOffset, 0})
	dir := s.aimDirection(camera, muzzle, def.Range)
	dir = s.applySpread(dir, def, camera)

	damage := def.Damage + char.AttackPower
	s.SpawnProjectile(id, char.Team, muzzle, dir, damage, def)
	return true
}

// aimDirection строит направление выстрела: луч камеры до точки
// прицеливания, затем направление от дула к этой точке.
func (s *AttackSystem) aimDirection(camera input.Camera, muzzle mgl64.Vec3, aimRange float64) mgl64.Vec3 {
	camDir := utils.DirectionFromAngles(camera.Yaw, camera.Pitch)
	aimPoint := camera.Position.Add(camDir.Mul(aimRange))
	dir := aimPoint.Sub(muzzle)
	if dir.Len() < 1e-9 {
		return camDir
	}
	return dir.Normalize()
}

// applySpread отклоняет направление в конусе разброса. Прицеливание
// сужает конус до точности категории.
func (s *AttackSystem) applySpread(dir mgl64.Vec3, def *defs.TriggerDefinition, camera input.Camera) mgl64.Vec3 {
	spread := def.SpreadHip
	if camera.Aiming || camera.Scoped {
		spread = def.SpreadAimed
		if spread == 0 {
			spread = def.SpreadHip * config.AimSpreadFactor
		}
	}
	if spread <= 0 {
		return dir
	}

	half := mgl64.DegToRad(spread) / 2
	yawJitter := s.rng.Symmetric(half)
	pitchJitter := s.rng.Symmetric(half)

	rot := mgl64.HomogRotate3DY(yawJitter).Mul4(mgl64.HomogRotate3DX(pitchJitter))
	out := rot.Mul4x1(dir.Vec4(0)).Vec3()
	if out.Len() < 1e-9 {
		return dir
	}
	return out.Normalize()
}

// SpawnProjectile создаёт сущность снаряда с компонентами полёта.
func (s *AttackSystem) SpawnProjectile(owner types.EntityID, team types.Team, origin, dir mgl64.Vec3, damage float64, def *defs.TriggerDefinition) types.EntityID {
	spec := def.Projectile
	projID := s.ecs.NewEntity()

	proj := &component.Projectile{
		Kind:     spec.Kind,
		Velocity: dir.Mul(spec.Speed),
		Damage:   damage,
		MaxRange: def.Range,
		Lifetime: spec.Lifetime,
		OwnerID:  owner,
		Team:     team,
	}
	switch spec.Kind {
	case defs.ProjectilePiercing:
		proj.MaxPierce = spec.MaxPierce
	case defs.ProjectileExplosive:
		proj.ExplosionRadius = spec.ExplosionRadius
	case defs.ProjectileHoming:
		proj.HomingStrength = spec.HomingStrength
	}

	s.ecs.Projectiles[projID] = proj
	s.ecs.Transforms[projID] = &component.Transform{Position: origin}
	s.ecs.Colliders[projID] = &component.Collider{
		Shape:     component.ShapeSphere,
		Size:      mgl64.Vec3{0.3, 0, 0},
		Layer:     config.LayerProjectile,
		Mask:      config.LayerCharacter | config.LayerShield,
		IsTrigger: true,
	}
	s.ecs.Owners[projID] = &component.Owner{EntityID: owner}
	return projID
}
