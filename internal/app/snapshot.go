// internal/app/snapshot.go
package app

import "go-trion-combat/internal/types"

// DebugSnapshot — счётчики для HUD и диагностики. Только чтение,
// обратной связи в симуляцию нет.
type DebugSnapshot struct {
	ActiveAttacks     int
	LiveProjectiles   int
	SplittingTriggers int
	Characters        int
}

// Snapshot собирает текущие счётчики симуляции.
func (g *Game) Snapshot() DebugSnapshot {
	snap := DebugSnapshot{
		ActiveAttacks:   len(g.ECS.MeleeAttacks),
		LiveProjectiles: len(g.ECS.Projectiles),
		Characters:      len(g.ECS.Characters),
	}
	for _, cubes := range g.ECS.SplittingTriggers {
		for _, cube := range cubes {
			if cube.Generated() {
				snap.SplittingTriggers++
			}
		}
	}
	return snap
}

// WeaponsFor сообщает о наличии созданного оружия в каждой руке бойца.
func (g *Game) WeaponsFor(id types.EntityID) [types.HandCount]bool {
	if trig, ok := g.ECS.Triggers[id]; ok {
		return trig.Generated
	}
	return [types.HandCount]bool{}
}
