// internal/event/types.go
package event

const (
	WeaponGenerated    EventType = "WeaponGenerated"    // Оружие создано в руке
	WeaponDismissed    EventType = "WeaponDismissed"    // Оружие убрано
	TriggerFired       EventType = "TriggerFired"       // Триггер использован
	ProjectileExpired  EventType = "ProjectileExpired"  // Снаряд исчерпал полёт
	MeleeHit           EventType = "MeleeHit"           // Замах поразил цель
	ShieldBroken       EventType = "ShieldBroken"       // Щит разрушен
	CharacterDefeated  EventType = "CharacterDefeated"  // Боец побеждён
	SplitVolleyFired   EventType = "SplitVolleyFired"   // Залп куба-расщепителя
	ExplosionTriggered EventType = "ExplosionTriggered" // Взрыв снаряда
)
