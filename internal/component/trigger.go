// internal/component/trigger.go
package component

import (
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/types"
)

// TriggerState — состояние одного типа триггера в экипировке.
type TriggerState struct {
	Active            bool
	CooldownRemaining float64
	Ammo              int  // остаток магазина
	HasAmmo           bool // false — триггер без магазина
}

// Ready сообщает, можно ли использовать триггер прямо сейчас.
func (s *TriggerState) Ready() bool {
	if s.CooldownRemaining > 0 {
		return false
	}
	if s.HasAmmo && s.Ammo <= 0 {
		return false
	}
	return true
}

// Trigger — экипировка бойца: 8 слотов (4 основных + 4 запасных),
// состояние каждого типа триггера и выбор по рукам.
type Trigger struct {
	Slots [config.SlotCount]string // ID определений; "" — пустой слот
	// States хранит по одной записи на тип триггера; обе руки с одинаковым
	// типом делят одну запись.
	States map[string]*TriggerState
	// Selected — индекс выбранного слота на руку, -1 — ничего не выбрано.
	Selected [types.HandCount]int
	// Generated — создано ли оружие в руке.
	Generated [types.HandCount]bool
}

// NewTrigger создаёт экипировку из набора слотов.
func NewTrigger(slots [config.SlotCount]string) *Trigger {
	t := &Trigger{
		Slots:  slots,
		States: make(map[string]*TriggerState),
	}
	for h := range t.Selected {
		t.Selected[h] = -1
	}
	for _, id := range slots {
		if id == "" {
			continue
		}
		if _, exists := t.States[id]; !exists {
			t.States[id] = &TriggerState{}
		}
	}
	return t
}

// SelectedID возвращает ID триггера, выбранного данной рукой.
func (t *Trigger) SelectedID(hand types.Hand) string {
	slot := t.Selected[hand]
	if slot < 0 || slot >= config.SlotCount {
		return ""
	}
	return t.Slots[slot]
}

// State возвращает запись состояния типа триггера, nil — если тип
// не входит в экипировку.
func (t *Trigger) State(id string) *TriggerState {
	if id == "" {
		return nil
	}
	return t.States[id]
}

// TickCooldowns уменьшает все активные перезарядки. Значения монотонно
// убывают и останавливаются ровно на нуле.
func (t *Trigger) TickCooldowns(dt float64) {
	for _, state := range t.States {
		if state.CooldownRemaining > 0 {
			state.CooldownRemaining -= dt
			if state.CooldownRemaining < 0 {
				state.CooldownRemaining = 0
			}
		}
	}
}

// SharedAcrossHands сообщает, выбран ли один и тот же тип обеими руками.
func (t *Trigger) SharedAcrossHands(id string) bool {
	return id != "" &&
		t.SelectedID(types.HandRight) == id &&
		t.SelectedID(types.HandLeft) == id
}
