// internal/defs/triggers.go
package defs

// defaultTriggers is the built-in trigger catalog. A triggers.json file, when
// present, replaces it entirely.
var defaultTriggers = []TriggerDefinition{
	{
		ID: "KOGETSU", Name: "Kogetsu", Category: CategoryAttacker,
		SetCost: 5, GenerationCost: 4, FireCost: 0, Cooldown: 0.6,
		Damage: 40, Range: 4.5,
		Melee: &MeleeSpec{SectorAngle: 150, SwingDuration: 0.4},
	},
	{
		ID: "SCORPION", Name: "Scorpion", Category: CategoryAttacker,
		SetCost: 3, GenerationCost: 2, FireCost: 0, Cooldown: 0.45,
		Damage: 28, Range: 3.2,
		Melee: &MeleeSpec{
			SectorAngle: 150, SwingDuration: 0.32,
			MaxExtension: 3.0, LinkedExtension: 1.4,
			ExtensionCost: 6, LinkedCost: 3,
		},
	},
	{
		ID: "RAYGUST", Name: "Raygust", Category: CategoryAttacker,
		SetCost: 6, GenerationCost: 5, FireCost: 0, Cooldown: 0.8,
		Damage: 34, Range: 3.8,
		Melee: &MeleeSpec{
			SectorAngle: 150, SwingDuration: 0.5,
			MaxExtension: 4.5, ExtensionCost: 8,
		},
		ShieldDurability: 500,
	},
	{
		ID: "ASTEROID", Name: "Asteroid", Category: CategoryShooter,
		SetCost: 4, GenerationCost: 3, FireCost: 2, Cooldown: 1.2,
		Damage: 30, Range: 60, MaxSplitLevel: 4,
		Projectile: &ProjectileSpec{Kind: ProjectileSimple, Speed: 45, Lifetime: 4.0},
	},
	{
		ID: "HOUND", Name: "Hound", Category: CategoryShooter,
		SetCost: 5, GenerationCost: 3, FireCost: 3, Cooldown: 1.5,
		Damage: 24, Range: 55, MaxSplitLevel: 4,
		Projectile: &ProjectileSpec{Kind: ProjectileHoming, Speed: 32, Lifetime: 5.0, HomingStrength: 3.0},
	},
	{
		ID: "VIPER", Name: "Viper", Category: CategoryShooter,
		SetCost: 5, GenerationCost: 3, FireCost: 2, Cooldown: 1.3,
		Damage: 27, Range: 58, MaxSplitLevel: 4,
		Projectile: &ProjectileSpec{Kind: ProjectilePiercing, Speed: 40, Lifetime: 4.0, MaxPierce: 2},
	},
	{
		ID: "METEORA", Name: "Meteora", Category: CategoryShooter,
		SetCost: 6, GenerationCost: 4, FireCost: 4, Cooldown: 2.0,
		Damage: 45, Range: 50, MaxSplitLevel: 3,
		Projectile: &ProjectileSpec{Kind: ProjectileExplosive, Speed: 30, Lifetime: 4.5, ExplosionRadius: 6.0},
	},
	{
		ID: "ASTEROID_GUN", Name: "Asteroid (Assault Rifle)", Category: CategoryGunner,
		SetCost: 4, GenerationCost: 3, FireCost: 0.4, Cooldown: 0.12,
		Damage: 9, Range: 70, Ammo: 30,
		SpreadHip: 4.0, SpreadAimed: 1.2,
		Projectile: &ProjectileSpec{Kind: ProjectileSimple, Speed: 80, Lifetime: 2.5},
	},
	{
		ID: "HOUND_GUN", Name: "Hound (Handgun)", Category: CategoryGunner,
		SetCost: 5, GenerationCost: 3, FireCost: 0.8, Cooldown: 0.35,
		Damage: 12, Range: 55, Ammo: 12,
		SpreadHip: 5.0, SpreadAimed: 1.8,
		Projectile: &ProjectileSpec{Kind: ProjectileHoming, Speed: 45, Lifetime: 3.0, HomingStrength: 2.2},
	},
	{
		ID: "IBIS", Name: "Ibis", Category: CategorySniper,
		SetCost: 7, GenerationCost: 6, FireCost: 8, Cooldown: 3.5,
		Damage: 110, Range: 180,
		SpreadHip: 2.5, SpreadAimed: 0.15,
		Projectile: &ProjectileSpec{Kind: ProjectileExplosive, Speed: 90, Lifetime: 3.0, ExplosionRadius: 4.0},
	},
	{
		ID: "LIGHTNING", Name: "Lightning", Category: CategorySniper,
		SetCost: 4, GenerationCost: 3, FireCost: 3, Cooldown: 1.8,
		Damage: 55, Range: 160,
		SpreadHip: 2.0, SpreadAimed: 0.1,
		Projectile: &ProjectileSpec{Kind: ProjectileSimple, Speed: 140, Lifetime: 2.0},
	},
	{
		ID: "EAGLET", Name: "Eaglet", Category: CategorySniper,
		SetCost: 5, GenerationCost: 4, FireCost: 5, Cooldown: 2.4,
		Damage: 75, Range: 170,
		SpreadHip: 2.2, SpreadAimed: 0.12,
		Projectile: &ProjectileSpec{Kind: ProjectilePiercing, Speed: 110, Lifetime: 2.5, MaxPierce: 1},
	},
	{
		ID: "SHIELD", Name: "Shield", Category: CategoryShield,
		SetCost: 3, GenerationCost: 2, FireCost: 0, Cooldown: 0.5,
		ShieldDurability: 100,
	},
	{
		ID: "ESCUDO", Name: "Escudo", Category: CategoryShield,
		SetCost: 4, GenerationCost: 3, FireCost: 0, Cooldown: 1.0,
		ShieldDurability: 160,
	},
	{
		ID: "BAGWORM", Name: "Bagworm", Category: CategoryUtility,
		SetCost: 2, GenerationCost: 1, FireCost: 0, Cooldown: 0,
	},
	{
		ID: "GRASSHOPPER", Name: "Grasshopper", Category: CategoryUtility,
		SetCost: 3, GenerationCost: 2, FireCost: 1, Cooldown: 0.9,
	},
}
