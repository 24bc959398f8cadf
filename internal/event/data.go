// internal/event/data.go
package event

import (
	"go-trion-combat/internal/types"

	"github.com/google/uuid"
)

// WeaponEvent — данные событий WeaponGenerated, WeaponDismissed и TriggerFired.
type WeaponEvent struct {
	Entity    types.EntityID
	Hand      types.Hand
	TriggerID string
}

// MeleeHitEvent — данные события MeleeHit. Swing идентифицирует взмах:
// перемасштабированный объём того же удара несёт тот же идентификатор.
type MeleeHitEvent struct {
	Attacker types.EntityID
	Target   types.EntityID
	Swing    uuid.UUID
	Damage   float64
}
