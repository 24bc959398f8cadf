// internal/system/trigger.go
package system

import (
	"go-trion-combat/internal/component"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/types"

	"github.com/rs/zerolog"
)

// Категории, которым разрешено создавать оружие в каждой руке.
// Кубы-расщепители формируются только в левой руке.
var generationAllowed = map[types.Hand]map[defs.TriggerCategory]bool{
	types.HandRight: {
		defs.CategoryAttacker: true,
		defs.CategorySniper:   true,
		defs.CategoryGunner:   true,
	},
	types.HandLeft: {
		defs.CategoryAttacker: true,
		defs.CategorySniper:   true,
		defs.CategoryGunner:   true,
		defs.CategoryShooter:  true,
	},
}

// TriggerSystem — машина состояний экипировки: выбор слотов, создание
// и снятие оружия, перезарядки и экономика стоимости набора.
// Все отказы — тихие no-op с возвратом false.
type TriggerSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	log        zerolog.Logger
}

func NewTriggerSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, log zerolog.Logger) *TriggerSystem {
	return &TriggerSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		log:        log.With().Str("system", "trigger").Logger(),
	}
}

// Update тикает перезарядки и обрабатывает намерения управляемых сущностей.
func (s *TriggerSystem) Update(deltaTime float64) {
	for id, trig := range s.ecs.Triggers {
		trig.TickCooldowns(deltaTime)

		intent, ok := s.ecs.Intents[id]
		if !ok {
			continue
		}
		for hand := types.Hand(0); hand < types.HandCount; hand++ {
			if slot := intent.Frame.SlotSelect[hand]; slot >= 0 {
				s.SelectSlot(id, hand, slot)
			}
			if intent.Frame.Generate[hand] {
				s.GenerateWeapon(id, hand)
			}
			if intent.Frame.Dismiss[hand] {
				s.DismissWeapon(id, hand)
			}
		}
	}
}

// SelectSlot выбирает слот рукой. Отказ: пустой слот, слот на перезарядке,
// отсутствующая экипировка. При успехе прежний триггер руки деактивируется
// (если его не держит вторая рука), а новому назначается штрафная
// перезарядка смены — нулевая для снайперской категории.
func (s *TriggerSystem) SelectSlot(id types.EntityID, hand types.Hand, slot int) bool {
	trig, ok := s.ecs.Triggers[id]
	if !ok || slot < 0 || slot >= config.SlotCount {
		return false
	}
	newID := trig.Slots[slot]
	if newID == "" {
		return false
	}
	def, ok := defs.TriggerLibrary[newID]
	if !ok {
		s.log.Warn().Str("trigger", newID).Msg("slot references unknown trigger definition")
		return false
	}
	state := trig.State(newID)
	if state == nil || state.CooldownRemaining > 0 {
		return false
	}
	if trig.Selected[hand] == slot {
		return true
	}

	prevID := trig.SelectedID(hand)
	if prevID != "" && prevID != newID {
		otherHand := types.Hand(1 - hand)
		if trig.SelectedID(otherHand) != prevID {
			if prevState := trig.State(prevID); prevState != nil {
				prevState.Active = false
			}
		}
		trig.Generated[hand] = false
		s.dispatcher.Emit(event.WeaponDismissed, event.WeaponEvent{Entity: id, Hand: hand, TriggerID: prevID})
	}

	trig.Selected[hand] = slot
	state.Active = true
	if def.Category != defs.CategorySniper {
		state.CooldownRemaining = config.SwitchPenaltyCooldown
	}
	return true
}

// GenerateWeapon создаёт оружие в руке. Идемпотентно: повторный вызов при
// созданном оружии ничего не списывает. Снайперские триггеры после
// создания сразу готовы к выстрелу — их перезарядка сбрасывается.
func (s *TriggerSystem) GenerateWeapon(id types.EntityID, hand types.Hand) bool {
	trig, ok := s.ecs.Triggers[id]
	if !ok {
		return false
	}
	selID := trig.SelectedID(hand)
	if selID == "" {
		return false
	}
	def, ok := defs.TriggerLibrary[selID]
	if !ok {
		return false
	}
	if !generationAllowed[hand][def.Category] {
		return false
	}
	if trig.Generated[hand] {
		return true
	}
	char, ok := s.ecs.Characters[id]
	if !ok {
		return false
	}
	if !char.SpendTrion(def.GenerationCost) {
		return false
	}

	trig.Generated[hand] = true
	state := trig.State(selID)
	if def.Ammo > 0 {
		state.HasAmmo = true
		state.Ammo = def.Ammo
	}
	if def.Category == defs.CategorySniper {
		state.CooldownRemaining = 0
	}
	s.dispatcher.Emit(event.WeaponGenerated, event.WeaponEvent{Entity: id, Hand: hand, TriggerID: selID})
	return true
}

// DismissWeapon убирает оружие. Стоимость создания не возвращается.
func (s *TriggerSystem) DismissWeapon(id types.EntityID, hand types.Hand) bool {
	trig, ok := s.ecs.Triggers[id]
	if !ok || !trig.Generated[hand] {
		return false
	}
	trig.Generated[hand] = false
	s.dispatcher.Emit(event.WeaponDismissed, event.WeaponEvent{Entity: id, Hand: hand, TriggerID: trig.SelectedID(hand)})
	return true
}

// EquipSet экипирует набор триггеров. Стоимость набора вычитается из
// ёмкости триона; при замене старый набор сначала возвращает свою
// стоимость. Если новый набор не по карману — отказ без изменений.
func (s *TriggerSystem) EquipSet(id types.EntityID, slots [config.SlotCount]string) bool {
	char, ok := s.ecs.Characters[id]
	if !ok {
		return false
	}

	newCost := 0.0
	for _, trigID := range slots {
		if trigID == "" {
			continue
		}
		def, ok := defs.TriggerLibrary[trigID]
		if !ok {
			s.log.Warn().Str("trigger", trigID).Msg("equip set references unknown trigger definition")
			return false
		}
		newCost += def.SetCost
	}

	oldCost := 0.0
	if old, ok := s.ecs.Triggers[id]; ok {
		for _, trigID := range old.Slots {
			if def, ok := defs.TriggerLibrary[trigID]; ok {
				oldCost += def.SetCost
			}
		}
	}

	refunded := char.TrionCapacity + oldCost
	if newCost > refunded {
		return false
	}

	char.SetCapacity(refunded - newCost)
	s.ecs.Triggers[id] = component.NewTrigger(slots)
	return true
}

// ConsumeFire списывает ресурсы одного использования триггера:
// трион, патрон (если есть магазин) и запускает перезарядку.
// Отказ — no-op: перезарядка идёт, магазин пуст или трион не покрывает
// стоимость выстрела.
func (s *TriggerSystem) ConsumeFire(id types.EntityID, hand types.Hand) bool {
	trig, ok := s.ecs.Triggers[id]
	if !ok || !trig.Generated[hand] {
		return false
	}
	selID := trig.SelectedID(hand)
	def, ok := defs.TriggerLibrary[selID]
	if !ok {
		return false
	}
	state := trig.State(selID)
	if state == nil || !state.Ready() {
		return false
	}
	char, ok := s.ecs.Characters[id]
	if !ok {
		return false
	}
	if !char.SpendTrion(def.FireCost) {
		return false
	}

	if state.HasAmmo {
		state.Ammo--
	}
	state.CooldownRemaining = def.Cooldown
	s.dispatcher.Emit(event.TriggerFired, event.WeaponEvent{Entity: id, Hand: hand, TriggerID: selID})
	return true
}
