// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
type EntityID uint64

// Team — принадлежность к команде, используется для фильтрации
// дружественного огня и самопопаданий.
type Team int

// Hand — рука, которой управляется триггер.
type Hand int

const (
	HandRight Hand = iota
	HandLeft
	HandCount
)
