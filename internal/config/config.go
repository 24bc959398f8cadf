// internal/config/config.go
package config

const (
	TickRate     = 60
	FixedDelta   = 1.0 / float64(TickRate)
	MaxDeltaTime = 0.06

	// Арена. Снаряды за её пределами удаляются.
	ArenaRadius = 250.0
	GroundLevel = 0.0

	// Слоты триггеров: 4 основных + 4 запасных.
	SlotCount     = 8
	MainSlotCount = 4

	// Штраф при смене слота. Снайперские триггеры меняются без штрафа.
	SwitchPenaltyCooldown = 2.0

	CharacterMoveSpeed = 7.0

	// Ближний бой.
	MeleeSectorAngle     = 150.0 // градусы, полный сектор
	MeleeSegments        = 8     // сектор делится на 8 сегментов по времени
	MeleeHeightTolerance = 2.0   // допуск по вертикали при проверке попадания
	MeleeSwingDuration   = 0.4

	// Самонаведение.
	HomingSearchRadius = 20.0
	HomingLerpMin      = 0.02
	HomingLerpMax      = 0.10

	// Пробитие: каждое пробитие уменьшает оставшийся урон.
	PierceDamageFactor = 0.8

	// Прицеливание сужает конус разброса.
	AimSpreadFactor = 0.3

	// Смещение точки выстрела относительно камеры, уменьшает
	// параллакс на ближней дистанции.
	MuzzleForwardOffset = 1.2
	MuzzleHeightOffset  = 1.5

	// Щиты.
	ShieldMinSize        = 1.0
	ShieldMaxSize        = 3.0
	ShieldChargeDuration = 1.5
	ShieldModeDurability = 500.0

	// Удлинение клинка.
	BladeExtensionDuration = 0.2
	BladePowerFloor        = 0.7
	BladePowerCap          = 1.2

	// Кубы-расщепители.
	SplitMaxLevel    = 4
	SplitMinCubeSize = 0.4
	SplitMaxCubeSize = 1.2
	SplitGridSpacing = 0.8

	// Задержка перед удалением побеждённой сущности: слой отрисовки
	// должен успеть показать эффект поражения.
	DefeatGraceDelay = 1.5
)

// Слои коллизий.
const (
	LayerCharacter uint32 = 1 << iota
	LayerProjectile
	LayerMelee
	LayerShield
	LayerGround
)

// SplitDamageScale — множитель урона одного снаряда при залпе N².
// Расщепление меняет урон на покрытие.
var SplitDamageScale = map[int]float64{
	1: 1.0,
	2: 0.45,
	3: 0.30,
	4: 0.22,
}
