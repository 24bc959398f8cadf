// internal/component/character.go
package component

import "go-trion-combat/internal/types"

// Character хранит боевые параметры бойца. Трион одновременно и ресурс,
// и запас прочности: ноль триона означает поражение.
// Инвариант: 0 <= CurrentTrion <= TrionCapacity.
type Character struct {
	CurrentTrion  float64
	TrionCapacity float64
	Team          types.Team
	AttackPower   float64
}

// NewCharacter создаёт бойца с полным запасом триона.
func NewCharacter(capacity float64, team types.Team, attackPower float64) *Character {
	if capacity < 0 {
		capacity = 0
	}
	return &Character{
		CurrentTrion:  capacity,
		TrionCapacity: capacity,
		Team:          team,
		AttackPower:   attackPower,
	}
}

// TakeDamage уменьшает текущий трион. Возвращает true, если боец побеждён.
func (c *Character) TakeDamage(damage float64) bool {
	if damage < 0 {
		damage = 0
	}
	c.CurrentTrion -= damage
	if c.CurrentTrion < 0 {
		c.CurrentTrion = 0
	}
	return c.CurrentTrion == 0
}

// SpendTrion списывает стоимость действия. Возвращает false без изменений,
// если триона не хватает.
func (c *Character) SpendTrion(cost float64) bool {
	if cost < 0 {
		return false
	}
	if c.CurrentTrion < cost {
		return false
	}
	c.CurrentTrion -= cost
	return true
}

// RestoreTrion восстанавливает трион, не превышая ёмкость.
func (c *Character) RestoreTrion(amount float64) {
	if amount < 0 {
		return
	}
	c.CurrentTrion += amount
	if c.CurrentTrion > c.TrionCapacity {
		c.CurrentTrion = c.TrionCapacity
	}
}

// SetCapacity меняет ёмкость триона. При уменьшении текущий запас
// прижимается к новой ёмкости.
func (c *Character) SetCapacity(capacity float64) {
	if capacity < 0 {
		capacity = 0
	}
	c.TrionCapacity = capacity
	if c.CurrentTrion > c.TrionCapacity {
		c.CurrentTrion = c.TrionCapacity
	}
}

// TrionRatio — доля оставшегося триона, [0, 1].
func (c *Character) TrionRatio() float64 {
	if c.TrionCapacity <= 0 {
		return 0
	}
	return c.CurrentTrion / c.TrionCapacity
}
