// internal/system/special.go
package system

import (
	"go-trion-combat/internal/component"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/types"
	"go-trion-combat/internal/utils"

	"github.com/rs/zerolog"
)

// complementaryTriggers — пары триггеров, усиливающие удлинение клинка
// при совместной экипировке.
var complementaryTriggers = map[string]string{
	"SCORPION": "RAYGUST",
	"RAYGUST":  "SCORPION",
}

const complementExtensionBonus = 1.5

// SpecialSystem управляет особыми действиями поверх базовых триггеров:
// удлинением клинка, режимом щита Raygust и жизненным циклом обычных
// щитов (зарядка → развёртывание → разрушение).
type SpecialSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	log        zerolog.Logger
}

func NewSpecialSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, log zerolog.Logger) *SpecialSystem {
	return &SpecialSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		log:        log.With().Str("system", "special").Logger(),
	}
}

func (s *SpecialSystem) Update(deltaTime float64) {
	s.tickExtensions(deltaTime)
	s.tickShields(deltaTime)

	for id, intent := range s.ecs.Intents {
		if intent.Frame.Special {
			s.activateSpecial(id)
		}
		s.handleShieldTrigger(id, intent)
	}
}

// tickExtensions продвигает удлинения клинков. Привязанный к атаке
// вариант каждый тик перемасштабирует живой объём замаха: радиус растёт
// с длиной, урон падает обратно пропорционально — рычаг длиннее,
// удар слабее.
func (s *SpecialSystem) tickExtensions(deltaTime float64) {
	for id, ext := range s.ecs.BladeExtensions {
		ext.Elapsed += deltaTime
		if ext.Expired() {
			if ext.AttackLinked {
				s.restoreSwing(ext)
			}
			delete(s.ecs.BladeExtensions, id)
			continue
		}
		if ext.AttackLinked && ext.SwingEntity != 0 {
			s.rescaleSwing(ext)
		}
	}
}

func (s *SpecialSystem) rescaleSwing(ext *component.BladeExtension) {
	melee, ok := s.ecs.MeleeAttacks[ext.SwingEntity]
	if !ok {
		return
	}
	length := ext.CurrentLength()
	if ext.BaseLength <= 0 || length <= 0 {
		return
	}
	ratio := length / ext.BaseLength
	melee.Range = melee.BaseRange * ratio
	power := utils.Clamp(ext.BaseLength/length, config.BladePowerFloor, config.BladePowerCap)
	melee.Damage = melee.BaseDamage * power

	if col, ok := s.ecs.Colliders[ext.SwingEntity]; ok {
		col.Size[0] = melee.Range
	}
}

func (s *SpecialSystem) restoreSwing(ext *component.BladeExtension) {
	melee, ok := s.ecs.MeleeAttacks[ext.SwingEntity]
	if !ok {
		return
	}
	melee.Range = melee.BaseRange
	melee.Damage = melee.BaseDamage
	if col, ok := s.ecs.Colliders[ext.SwingEntity]; ok {
		col.Size[0] = melee.BaseRange
	}
}

// tickShields ведёт зарядку щитов и следование щита за носителем
// в режиме отслеживания.
func (s *SpecialSystem) tickShields(deltaTime float64) {
	for id, shield := range s.ecs.Shields {
		if shield.Charging {
			shield.ChargeTick(deltaTime)
		}
		if shield.Tracking && shield.Deployed {
			if tr, ok := s.ecs.Transforms[id]; ok {
				shield.Position = tr.Position.Add(tr.FlatForward().Mul(1.0))
				shield.Normal = tr.FlatForward()
			}
		}
	}
}

// activateSpecial запускает особое действие выбранного триггера:
// удлинение клинка для атакующих, режим щита для Raygust. Триггер,
// умеющий и то и другое, удлиняется только посреди замаха — вне атаки
// особое действие переключает режим щита.
func (s *SpecialSystem) activateSpecial(id types.EntityID) bool {
	trig, ok := s.ecs.Triggers[id]
	if !ok {
		return false
	}
	for hand := types.Hand(0); hand < types.HandCount; hand++ {
		if !trig.Generated[hand] {
			continue
		}
		def, ok := defs.TriggerLibrary[trig.SelectedID(hand)]
		if !ok || def.Category != defs.CategoryAttacker {
			continue
		}
		attacking := false
		if ci, ok := s.ecs.CombatIntents[id]; ok {
			attacking = ci.Attacking && ci.TriggerID == def.ID
		}
		if def.Melee != nil && def.Melee.MaxExtension > 0 && (attacking || def.ShieldDurability == 0) {
			if s.startExtension(id, &def, trig) {
				return true
			}
		}
		if def.ShieldDurability > 0 {
			if s.toggleShieldMode(id) {
				return true
			}
		}
	}
	return false
}

// startExtension запускает удлинение клинка. Вариант, привязанный к
// атаке, доступен только пока замах того же триггера в полёте — он
// дешевле и короче. Повторная активация при живом удлинении — отказ.
func (s *SpecialSystem) startExtension(id types.EntityID, def *defs.TriggerDefinition, trig *component.Trigger) bool {
	if _, active := s.ecs.BladeExtensions[id]; active {
		return false
	}
	char, ok := s.ecs.Characters[id]
	if !ok {
		return false
	}

	linked := false
	var swing types.EntityID
	if ci, ok := s.ecs.CombatIntents[id]; ok && ci.Attacking && ci.TriggerID == def.ID && ci.ActiveSwing != 0 {
		if def.Melee.LinkedExtension > 0 {
			linked = true
			swing = ci.ActiveSwing
		}
	}

	cost := def.Melee.ExtensionCost
	maxLength := def.Melee.MaxExtension
	if linked {
		cost = def.Melee.LinkedCost
		maxLength = def.Melee.LinkedExtension
	} else if s.hasComplement(trig, def.ID) {
		maxLength *= complementExtensionBonus
	}

	if !char.SpendTrion(cost) {
		return false
	}

	s.ecs.BladeExtensions[id] = &component.BladeExtension{
		TriggerID:    def.ID,
		BaseLength:   def.Range,
		MaxLength:    maxLength,
		Duration:     config.BladeExtensionDuration,
		AttackLinked: linked,
		SwingEntity:  swing,
	}
	return true
}

// hasComplement проверяет, экипирован ли парный триггер.
func (s *SpecialSystem) hasComplement(trig *component.Trigger, triggerID string) bool {
	complement, ok := complementaryTriggers[triggerID]
	if !ok {
		return false
	}
	for _, slotID := range trig.Slots {
		if slotID == complement {
			return true
		}
	}
	return false
}

// toggleShieldMode включает или выключает режим щита Raygust:
// фиксированная прочность, щит следует за носителем.
func (s *SpecialSystem) toggleShieldMode(id types.EntityID) bool {
	if shield, ok := s.ecs.Shields[id]; ok {
		if shield.Tracking && shield.Deployed {
			// Ручная деактивация.
			delete(s.ecs.Shields, id)
			return true
		}
		// Занято обычным щитом.
		return false
	}
	tr, ok := s.ecs.Transforms[id]
	if !ok {
		return false
	}

	shield := &component.Shield{
		TriggerID:      "RAYGUST",
		Size:           config.ShieldMinSize,
		BaseDurability: config.ShieldModeDurability,
		Tracking:       true,
	}
	shield.Deploy(tr.Position.Add(tr.FlatForward().Mul(1.0)), tr.FlatForward())
	// Режим щита держит фиксированную прочность независимо от размера.
	shield.Durability = config.ShieldModeDurability
	s.ecs.Shields[id] = shield
	return true
}

// handleShieldTrigger ведёт обычные щитовые триггеры: удержание заряжает
// (размер растёт), отпускание развёртывает с фиксацией позы, повторное
// нажатие убирает развёрнутый щит.
func (s *SpecialSystem) handleShieldTrigger(id types.EntityID, intent *component.Intent) {
	trig, ok := s.ecs.Triggers[id]
	if !ok {
		return
	}
	for hand := types.Hand(0); hand < types.HandCount; hand++ {
		def, ok := defs.TriggerLibrary[trig.SelectedID(hand)]
		if !ok || def.Category != defs.CategoryShield {
			continue
		}
		state := trig.State(def.ID)
		if state == nil || state.CooldownRemaining > 0 {
			continue
		}

		shield, exists := s.ecs.Shields[id]
		holding := intent.Frame.Hold[hand]

		switch {
		case holding && !exists:
			char, ok := s.ecs.Characters[id]
			if !ok || !char.SpendTrion(def.GenerationCost) {
				continue
			}
			s.ecs.Shields[id] = &component.Shield{
				TriggerID:      def.ID,
				Charging:       true,
				Size:           config.ShieldMinSize,
				BaseDurability: def.ShieldDurability,
			}
		case !holding && exists && shield.Charging:
			if tr, ok := s.ecs.Transforms[id]; ok {
				shield.Deploy(tr.Position.Add(tr.FlatForward().Mul(1.0)), tr.FlatForward())
				state.CooldownRemaining = def.Cooldown
			}
		case intent.Frame.Primary[hand] && exists && shield.Deployed && !shield.Tracking:
			// Ручная деактивация развёрнутого щита.
			delete(s.ecs.Shields, id)
			state.CooldownRemaining = def.Cooldown
		}
	}
}
