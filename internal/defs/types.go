// internal/defs/types.go
package defs

// TriggerCategory defines the broad behaviour class of a trigger.
type TriggerCategory string

const (
	CategoryAttacker TriggerCategory = "ATTACKER" // ближний бой
	CategoryShooter  TriggerCategory = "SHOOTER"  // кубы-расщепители
	CategoryGunner   TriggerCategory = "GUNNER"   // стрелковое оружие
	CategorySniper   TriggerCategory = "SNIPER"
	CategoryShield   TriggerCategory = "SHIELD"
	CategoryUtility  TriggerCategory = "UTILITY"
)

// ProjectileKind defines how a spawned projectile behaves in flight.
type ProjectileKind string

const (
	ProjectileSimple    ProjectileKind = "SIMPLE"
	ProjectilePiercing  ProjectileKind = "PIERCING"
	ProjectileExplosive ProjectileKind = "EXPLOSIVE"
	ProjectileHoming    ProjectileKind = "HOMING"
)

// ProjectileSpec describes the projectile a ranged trigger fires.
type ProjectileSpec struct {
	Kind            ProjectileKind `json:"kind"`
	Speed           float64        `json:"speed"`
	Lifetime        float64        `json:"lifetime"`
	MaxPierce       int            `json:"maxPierce,omitempty"`
	ExplosionRadius float64        `json:"explosionRadius,omitempty"`
	HomingStrength  float64        `json:"homingStrength,omitempty"`
}

// MeleeSpec describes the swing of an attacker trigger.
type MeleeSpec struct {
	SectorAngle   float64 `json:"sectorAngle"`   // полный угол сектора, градусы
	SwingDuration float64 `json:"swingDuration"` // секунды
	// MaxExtension — запас удлинения клинка. LinkedExtension — укороченный
	// вариант, доступный только во время активного замаха.
	MaxExtension    float64 `json:"maxExtension,omitempty"`
	LinkedExtension float64 `json:"linkedExtension,omitempty"`
	ExtensionCost   float64 `json:"extensionCost,omitempty"`
	LinkedCost      float64 `json:"linkedCost,omitempty"`
}

// TriggerDefinition is the full static description of one equippable trigger.
type TriggerDefinition struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       TriggerCategory `json:"category"`
	SetCost        float64         `json:"setCost"`        // вычитается из ёмкости триона при экипировке
	GenerationCost float64         `json:"generationCost"` // трион за создание оружия
	FireCost       float64         `json:"fireCost"`       // трион за выстрел/залп
	Cooldown       float64         `json:"cooldown"`
	Damage         float64         `json:"damage"`
	Range          float64         `json:"range"`
	Ammo           int             `json:"ammo,omitempty"` // 0 — без магазина
	SpreadHip      float64         `json:"spreadHip,omitempty"`   // градусы
	SpreadAimed    float64         `json:"spreadAimed,omitempty"` // градусы
	Projectile     *ProjectileSpec `json:"projectile,omitempty"`
	Melee          *MeleeSpec      `json:"melee,omitempty"`
	// ShieldDurability — базовая прочность; делится на размер щита.
	ShieldDurability float64 `json:"shieldDurability,omitempty"`
	MaxSplitLevel    int     `json:"maxSplitLevel,omitempty"`
}

// IsRanged reports whether firing this trigger spawns projectiles directly
// (splitting shooter cubes go through their own subsystem).
func (d *TriggerDefinition) IsRanged() bool {
	return d.Projectile != nil && d.Category != CategoryShooter
}
