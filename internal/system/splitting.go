// internal/system/splitting.go
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
	"github.com/rs/zerolog"
)

// SplittingSystem управляет кубами-расщепителями триггеров категории
// SHOOTER: ungenerated → generated(N) → залп → ungenerated.
// Подписан на события создания/снятия оружия: куб появляется вместе с
// оружием и исчезает вместе с ним.
type SplittingSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	attacks    *AttackSystem
	triggers   *TriggerSystem
	log        zerolog.Logger
}

func NewSplittingSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, attacks *AttackSystem, triggers *TriggerSystem, log zerolog.Logger) *SplittingSystem {
	s := &SplittingSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		attacks:    attacks,
		triggers:   triggers,
		log:        log.With().Str("system", "splitting").Logger(),
	}
	dispatcher.Subscribe(event.WeaponGenerated, s)
	dispatcher.Subscribe(event.WeaponDismissed, s)
	return s
}

// OnEvent реагирует на создание и снятие оружия-расщепителя.
func (s *SplittingSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.WeaponEvent)
	if !ok {
		return
	}
	def, ok := defs.TriggerLibrary[data.TriggerID]
	if !ok || def.Category != defs.CategoryShooter {
		return
	}
	switch e.Type {
	case event.WeaponGenerated:
		s.generateCube(data.Entity, &def)
	case event.WeaponDismissed:
		s.removeCube(data.Entity, def.ID)
	}
}

func (s *SplittingSystem) generateCube(id types.EntityID, def *defs.TriggerDefinition) {
	char, ok := s.ecs.Characters[id]
	if !ok {
		return
	}
	cubes := s.ecs.SplittingTriggers[id]
	if cubes == nil {
		cubes = make(map[string]*component.SplittingTrigger)
		s.ecs.SplittingTriggers[id] = cubes
	}
	cubes[def.ID] = &component.SplittingTrigger{
		TriggerID: def.ID,
		Phase:     component.SplitGenerated,
		Level:     1,
		CubeSize:  cubeSize(char.TrionRatio()),
	}
}

func (s *SplittingSystem) removeCube(id types.EntityID, triggerID string) {
	if cubes, ok := s.ecs.SplittingTriggers[id]; ok {
		delete(cubes, triggerID)
		if len(cubes) == 0 {
			delete(s.ecs.SplittingTriggers, id)
		}
	}
}

// cubeSize масштабирует размер куба долей оставшегося триона.
func cubeSize(trionRatio float64) float64 {
	return utils.Lerp(config.SplitMinCubeSize, config.SplitMaxCubeSize, utils.Clamp(trionRatio, 0, 1))
}

func (s *SplittingSystem) Update(deltaTime float64) {
	for id, intent := range s.ecs.Intents {
		trig, ok := s.ecs.Triggers[id]
		if !ok {
			continue
		}
		selID := trig.SelectedID(types.HandLeft)
		def, ok := defs.TriggerLibrary[selID]
		if !ok || def.Category != defs.CategoryShooter {
			continue
		}

		if intent.Frame.Split {
			s.AdvanceSplit(id, selID)
		}
		if intent.Frame.Primary[types.HandLeft] && trig.Generated[types.HandLeft] {
			s.FireVolley(id, types.HandLeft, &def, intent.Camera)
		}
	}
}

// AdvanceSplit поднимает уровень расщепления на единицу, пересобирая
// сетку. Отказ: куб не сформирован или уровень уже максимальный.
func (s *SplittingSystem) AdvanceSplit(id types.EntityID, triggerID string) bool {
	cubes, ok := s.ecs.SplittingTriggers[id]
	if !ok {
		return false
	}
	cube, ok := cubes[triggerID]
	if !ok || !cube.Generated() {
		return false
	}
	def, ok := defs.TriggerLibrary[triggerID]
	if !ok {
		return false
	}
	maxLevel := def.MaxSplitLevel
	if maxLevel <= 0 || maxLevel > config.SplitMaxLevel {
		maxLevel = config.SplitMaxLevel
	}
	if cube.Level >= maxLevel {
		return false
	}

	cube.Level++
	if char, ok := s.ecs.Characters[id]; ok {
		cube.CubeSize = cubeSize(char.TrionRatio())
	}
	return true
}

// FireVolley выпускает ровно N² снарядов параллельным залпом: одна
// точка на ячейку сетки, общее направление, урон каждой субмуниции
// масштабирован уровнем расщепления. Куб всегда возвращается в
// несгенерированное состояние.
func (s *SplittingSystem) FireVolley(id types.EntityID, hand types.Hand, def *defs.TriggerDefinition, camera input.Camera) bool {
	cubes, ok := s.ecs.SplittingTriggers[id]
	if !ok {
		return false
	}
	cube, ok := cubes[def.ID]
	if !ok || !cube.Generated() {
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

	level := cube.Level
	scale, ok := config.SplitDamageScale[level]
	if !ok {
		scale = 1.0
	}
	damage := (def.Damage + char.AttackPower) * scale

	muzzle := tr.Position.
		Add(tr.FlatForward().Mul(config.MuzzleForwardOffset)).
		Add(mgl64.Vec3{0, config.MuzzleHeightOffset, 0})
	dir := s.attacks.aimDirection(camera, muzzle, def.Range)

	// Базис сетки: перпендикуляры к направлению залпа.
	right := dir.Cross(mgl64.Vec3{0, 1, 0})
	if right.Len() < 1e-9 {
		right = mgl64.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	up := right.Cross(dir).Normalize()

	spacing := config.SplitGridSpacing * cube.CubeSize
	offset := float64(level-1) / 2.0
	for row := 0; row < level; row++ {
		for col := 0; col < level; col++ {
			cellOrigin := muzzle.
				Add(right.Mul((float64(col) - offset) * spacing)).
				Add(up.Mul((float64(row) - offset) * spacing))
			s.attacks.SpawnProjectile(id, char.Team, cellOrigin, dir, damage, def)
		}
	}

	cube.Reset()
	trigComp := s.ecs.Triggers[id]
	trigComp.Generated[hand] = false
	s.dispatcher.Emit(event.SplitVolleyFired, event.WeaponEvent{Entity: id, Hand: hand, TriggerID: def.ID})
	return true
}
