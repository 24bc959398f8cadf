// internal/entity/ecs.go
package entity

import (
	"go-trion-combat/internal/component"
	"go-trion-combat/internal/types"
)

// ECS владеет всеми сущностями и их компонентами. Отсутствие компонента
// у сущности — не ошибка: системы трактуют его как "возможность
// неприменима". Удаление сущностей отложенное: запрос копится в
// pendingRemoval и применяется на границе тика, чтобы итерация по живым
// картам никогда не видела изменяющуюся коллекцию.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Transforms        map[types.EntityID]*component.Transform
	Velocities        map[types.EntityID]*component.Velocity
	Characters        map[types.EntityID]*component.Character
	Triggers          map[types.EntityID]*component.Trigger
	Colliders         map[types.EntityID]*component.Collider
	Projectiles       map[types.EntityID]*component.Projectile
	Shields           map[types.EntityID]*component.Shield
	SplittingTriggers map[types.EntityID]map[string]*component.SplittingTrigger
	MeleeAttacks      map[types.EntityID]*component.MeleeAttack
	BladeExtensions   map[types.EntityID]*component.BladeExtension
	CombatIntents     map[types.EntityID]*component.CombatIntent
	Intents           map[types.EntityID]*component.Intent
	Owners            map[types.EntityID]*component.Owner
	Defeated          map[types.EntityID]*component.Defeated

	tags           map[types.EntityID]map[string]struct{}
	byTag          map[string]map[types.EntityID]struct{}
	pendingRemoval map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:            1,
		Transforms:        make(map[types.EntityID]*component.Transform),
		Velocities:        make(map[types.EntityID]*component.Velocity),
		Characters:        make(map[types.EntityID]*component.Character),
		Triggers:          make(map[types.EntityID]*component.Trigger),
		Colliders:         make(map[types.EntityID]*component.Collider),
		Projectiles:       make(map[types.EntityID]*component.Projectile),
		Shields:           make(map[types.EntityID]*component.Shield),
		SplittingTriggers: make(map[types.EntityID]map[string]*component.SplittingTrigger),
		MeleeAttacks:      make(map[types.EntityID]*component.MeleeAttack),
		BladeExtensions:   make(map[types.EntityID]*component.BladeExtension),
		CombatIntents:     make(map[types.EntityID]*component.CombatIntent),
		Intents:           make(map[types.EntityID]*component.Intent),
		Owners:            make(map[types.EntityID]*component.Owner),
		Defeated:          make(map[types.EntityID]*component.Defeated),
		tags:              make(map[types.EntityID]map[string]struct{}),
		byTag:             make(map[string]map[types.EntityID]struct{}),
		pendingRemoval:    make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Tag помечает сущность строковым тегом.
func (ecs *ECS) Tag(id types.EntityID, tag string) {
	if ecs.tags[id] == nil {
		ecs.tags[id] = make(map[string]struct{})
	}
	ecs.tags[id][tag] = struct{}{}
	if ecs.byTag[tag] == nil {
		ecs.byTag[tag] = make(map[types.EntityID]struct{})
	}
	ecs.byTag[tag][id] = struct{}{}
}

// Untag снимает тег с сущности.
func (ecs *ECS) Untag(id types.EntityID, tag string) {
	if set, ok := ecs.tags[id]; ok {
		delete(set, tag)
	}
	if set, ok := ecs.byTag[tag]; ok {
		delete(set, id)
	}
}

// HasTag проверяет наличие тега.
func (ecs *ECS) HasTag(id types.EntityID, tag string) bool {
	set, ok := ecs.tags[id]
	if !ok {
		return false
	}
	_, has := set[tag]
	return has
}

// EntitiesWithTag возвращает срез сущностей с данным тегом.
func (ecs *ECS) EntitiesWithTag(tag string) []types.EntityID {
	set := ecs.byTag[tag]
	out := make([]types.EntityID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// ScheduleRemoval запрашивает удаление сущности в конце тика.
// До границы тика сущность остаётся полностью валидной.
func (ecs *ECS) ScheduleRemoval(id types.EntityID) {
	ecs.pendingRemoval[id] = struct{}{}
}

// RemovalPending сообщает, запрошено ли удаление.
func (ecs *ECS) RemovalPending(id types.EntityID) bool {
	_, pending := ecs.pendingRemoval[id]
	return pending
}

// ApplyRemovals выполняет все отложенные удаления, вычищая каждую
// карту компонентов и теги. Вызывается один раз на границе тика.
func (ecs *ECS) ApplyRemovals() {
	for id := range ecs.pendingRemoval {
		ecs.removeNow(id)
	}
	ecs.pendingRemoval = make(map[types.EntityID]struct{})
}

func (ecs *ECS) removeNow(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Characters, id)
	delete(ecs.Triggers, id)
	delete(ecs.Colliders, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Shields, id)
	delete(ecs.SplittingTriggers, id)
	delete(ecs.MeleeAttacks, id)
	delete(ecs.BladeExtensions, id)
	delete(ecs.CombatIntents, id)
	delete(ecs.Intents, id)
	delete(ecs.Owners, id)
	delete(ecs.Defeated, id)

	for tag := range ecs.tags[id] {
		if set, ok := ecs.byTag[tag]; ok {
			delete(set, id)
		}
	}
	delete(ecs.tags, id)
}

// Alive сообщает, держит ли хранилище хоть один компонент сущности.
func (ecs *ECS) Alive(id types.EntityID) bool {
	if _, ok := ecs.Transforms[id]; ok {
		return true
	}
	if _, ok := ecs.Characters[id]; ok {
		return true
	}
	if _, ok := ecs.Projectiles[id]; ok {
		return true
	}
	if _, ok := ecs.MeleeAttacks[id]; ok {
		return true
	}
	if _, ok := ecs.Shields[id]; ok {
		return true
	}
	return len(ecs.tags[id]) > 0
}
