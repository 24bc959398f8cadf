// internal/component/special.go
package component

import (
	"math"

	"go-trion-combat/internal/types"
)

// BladeExtension — временное удлинение клинка. Длина идёт по косинусной
// огибающей: от базы до базы+максимум в середине и обратно к базе в конце,
// после чего состояние истекает само.
type BladeExtension struct {
	TriggerID  string
	BaseLength float64
	MaxLength  float64
	Duration   float64
	Elapsed    float64

	// AttackLinked — вариант, запускаемый только во время активного
	// замаха того же триггера; масштабирует живой объём атаки.
	AttackLinked bool
	SwingEntity  types.EntityID
}

// CurrentLength возвращает текущую длину клинка.
func (b *BladeExtension) CurrentLength() float64 {
	if b.Duration <= 0 {
		return b.BaseLength
	}
	t := b.Elapsed / b.Duration
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	envelope := (1 - math.Cos(2*math.Pi*t)) / 2
	return b.BaseLength + b.MaxLength*envelope
}

// Expired сообщает, закончилось ли удлинение.
func (b *BladeExtension) Expired() bool {
	return b.Elapsed >= b.Duration
}

// CombatIntent — единое состояние "боец атакует", которое читают и машина
// состояний триггеров, и подсистемы особых действий. Заменяет взаимное
// угадывание состояния друг друга.
type CombatIntent struct {
	Attacking   bool
	TriggerID   string
	ActiveSwing types.EntityID // сущность объёма атаки, 0 — нет
}
