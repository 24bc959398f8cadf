// internal/component/owner.go
package component

import "go-trion-combat/internal/types"

// Owner связывает сущность-эффект (объём атаки, снаряд) с владельцем.
// Явный компонент вместо внешней карты: время жизни связи совпадает
// со временем жизни эффекта.
type Owner struct {
	EntityID types.EntityID
}

// Defeated помечает побеждённого бойца. Сущность удаляется после
// небольшой задержки, чтобы внешние слои успели отреагировать.
type Defeated struct {
	GraceRemaining float64
}
