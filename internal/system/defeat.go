// internal/system/defeat.go
package system

import (
	"go-trion-combat/internal/entity"

	"github.com/rs/zerolog"
)

// DefeatSystem ведёт отсчёт задержки после поражения бойца и затем
// запрашивает удаление сущности. Задержка выражена в тиках симуляции,
// а не во внешнем таймере: внешние слои успевают увидеть пометку.
type DefeatSystem struct {
	ecs *entity.ECS
	log zerolog.Logger
}

func NewDefeatSystem(ecs *entity.ECS, log zerolog.Logger) *DefeatSystem {
	return &DefeatSystem{
		ecs: ecs,
		log: log.With().Str("system", "defeat").Logger(),
	}
}

func (s *DefeatSystem) Update(deltaTime float64) {
	for id, defeated := range s.ecs.Defeated {
		defeated.GraceRemaining -= deltaTime
		if defeated.GraceRemaining <= 0 {
			s.log.Debug().Uint64("entity", uint64(id)).Msg("defeated entity removed")
			s.ecs.ScheduleRemoval(id)
		}
	}
}
