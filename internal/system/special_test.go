// internal/system/special_test.go
package system

import (
	"testing"

	"go-trion-combat/internal/component"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/input"
	"go-trion-combat/internal/types"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpecialRig() (*entity.ECS, *event.Dispatcher, *SpecialSystem) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	return ecs, dispatcher, NewSpecialSystem(ecs, dispatcher, zerolog.Nop())
}

func specialIntent(ecs *entity.ECS, id types.EntityID) *component.Intent {
	intent := &component.Intent{}
	intent.Frame = input.NewFrame()
	intent.Frame.Special = true
	ecs.Intents[id] = intent
	return intent
}

func TestBladeExtensionFreeVariant(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 100, 0, [config.SlotCount]string{"SCORPION"})
	armHand(ecs, id, types.HandRight, 0)
	intent := specialIntent(ecs, id)

	ss.Update(config.FixedDelta)

	ext := ecs.BladeExtensions[id]
	require.NotNil(t, ext)
	assert.False(t, ext.AttackLinked)
	assert.Equal(t, 3.0, ext.MaxLength)
	assert.Equal(t, config.BladeExtensionDuration, ext.Duration)
	assert.Equal(t, 94.0, ecs.Characters[id].CurrentTrion)

	// Повторная активация при живом удлинении — отказ без списания.
	ss.Update(config.FixedDelta)
	assert.Equal(t, 94.0, ecs.Characters[id].CurrentTrion)

	// Удлинение истекает само.
	intent.Frame.Special = false
	ss.Update(config.BladeExtensionDuration + 0.05)
	_, alive := ecs.BladeExtensions[id]
	assert.False(t, alive)
}

func TestBladeExtensionComplementBonus(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 100, 0, [config.SlotCount]string{"SCORPION", "RAYGUST"})
	armHand(ecs, id, types.HandRight, 0)
	specialIntent(ecs, id)

	ss.Update(config.FixedDelta)

	ext := ecs.BladeExtensions[id]
	require.NotNil(t, ext)
	// Парный триггер в наборе усиливает запас удлинения.
	assert.InDelta(t, 3.0*complementExtensionBonus, ext.MaxLength, 1e-9)
}

func TestBladeExtensionLinkedVariantRescalesSwing(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 100, 0, [config.SlotCount]string{"SCORPION"})
	armHand(ecs, id, types.HandRight, 0)

	swingID, melee := addSwingVolume(ecs, id, 0, mgl64.Vec3{}, 28, 3.2)
	ecs.CombatIntents[id] = &component.CombatIntent{
		Attacking:   true,
		TriggerID:   "SCORPION",
		ActiveSwing: swingID,
	}
	intent := specialIntent(ecs, id)

	ss.Update(config.FixedDelta)

	ext := ecs.BladeExtensions[id]
	require.NotNil(t, ext)
	assert.True(t, ext.AttackLinked)
	assert.Equal(t, 1.4, ext.MaxLength)
	assert.Equal(t, swingID, ext.SwingEntity)
	// Привязанный вариант дешевле.
	assert.Equal(t, 97.0, ecs.Characters[id].CurrentTrion)

	// На пике длины радиус замаха вырос, а урон упал в пределах зажима.
	intent.Frame.Special = false
	ss.Update(0.1)
	peak := 3.2 + 1.4
	assert.InDelta(t, melee.BaseRange*peak/3.2, melee.Range, 1e-9)
	ratio := 3.2 / peak
	if ratio < config.BladePowerFloor {
		ratio = config.BladePowerFloor
	}
	assert.InDelta(t, melee.BaseDamage*ratio, melee.Damage, 1e-9)
	assert.InDelta(t, melee.Range, ecs.Colliders[swingID].Size[0], 1e-9)

	// По истечении замах возвращается к базовым параметрам.
	ss.Update(0.2)
	assert.Equal(t, melee.BaseRange, melee.Range)
	assert.Equal(t, melee.BaseDamage, melee.Damage)
	_, alive := ecs.BladeExtensions[id]
	assert.False(t, alive)
}

func TestRaygustShieldModeToggle(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 100, 0, [config.SlotCount]string{"RAYGUST"})
	armHand(ecs, id, types.HandRight, 0)
	intent := specialIntent(ecs, id)

	ss.Update(config.FixedDelta)

	shield := ecs.Shields[id]
	require.NotNil(t, shield)
	assert.True(t, shield.Tracking)
	assert.True(t, shield.Deployed)
	// Режим щита держит фиксированную прочность независимо от размера.
	assert.Equal(t, config.ShieldModeDurability, shield.Durability)

	// Повторное особое действие выключает режим.
	intent.Frame.Special = true
	ss.Update(config.FixedDelta)
	_, alive := ecs.Shields[id]
	assert.False(t, alive)
}

func TestRaygustShieldModeFollowsWielder(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 100, 0, [config.SlotCount]string{"RAYGUST"})
	armHand(ecs, id, types.HandRight, 0)
	intent := specialIntent(ecs, id)

	ss.Update(config.FixedDelta)
	intent.Frame.Special = false

	ecs.Transforms[id].Position = mgl64.Vec3{5, 0, 5}
	ss.Update(config.FixedDelta)

	shield := ecs.Shields[id]
	require.NotNil(t, shield)
	assert.InDelta(t, 5.0, shield.Position.X(), 1e-9)
}

func TestRaygustExtendsOnlyWhileAttacking(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 100, 0, [config.SlotCount]string{"RAYGUST"})
	armHand(ecs, id, types.HandRight, 0)

	swingID, _ := addSwingVolume(ecs, id, 0, mgl64.Vec3{}, 34, 3.8)
	ecs.CombatIntents[id] = &component.CombatIntent{
		Attacking:   true,
		TriggerID:   "RAYGUST",
		ActiveSwing: swingID,
	}
	specialIntent(ecs, id)

	ss.Update(config.FixedDelta)

	// Посреди замаха особое действие удлиняет клинок, а не включает щит.
	ext := ecs.BladeExtensions[id]
	require.NotNil(t, ext)
	assert.Equal(t, 4.5, ext.MaxLength)
	_, hasShield := ecs.Shields[id]
	assert.False(t, hasShield)
}

func TestShieldTriggerChargeAndDeploy(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 100, 0, [config.SlotCount]string{"SHIELD"})
	trig := ecs.Triggers[id]
	trig.Selected[types.HandRight] = 0

	intent := &component.Intent{}
	intent.Frame = input.NewFrame()
	intent.Frame.Hold[types.HandRight] = true
	ecs.Intents[id] = intent

	ss.Update(config.FixedDelta)

	shield := ecs.Shields[id]
	require.NotNil(t, shield)
	assert.True(t, shield.Charging)
	assert.Equal(t, 98.0, ecs.Characters[id].CurrentTrion)

	// Удержание растит размер до максимума.
	ss.Update(config.ShieldChargeDuration)
	assert.InDelta(t, config.ShieldMaxSize, shield.Size, 1e-9)

	// Отпускание фиксирует позу и прочность.
	intent.Frame.Hold[types.HandRight] = false
	ss.Update(config.FixedDelta)
	assert.True(t, shield.Deployed)
	assert.InDelta(t, 100.0/config.ShieldMaxSize, shield.Durability, 1e-9)
	assert.Equal(t, 0.5, trig.State("SHIELD").CooldownRemaining)
}

func TestShieldManualDeactivation(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 100, 0, [config.SlotCount]string{"SHIELD"})
	trig := ecs.Triggers[id]
	trig.Selected[types.HandRight] = 0

	shield := &component.Shield{TriggerID: "SHIELD", Size: 1, BaseDurability: 100}
	shield.Deploy(mgl64.Vec3{0, 1, 1}, mgl64.Vec3{0, 0, 1})
	ecs.Shields[id] = shield

	intent := &component.Intent{}
	intent.Frame = input.NewFrame()
	intent.Frame.Primary[types.HandRight] = true
	ecs.Intents[id] = intent

	ss.Update(config.FixedDelta)

	_, alive := ecs.Shields[id]
	assert.False(t, alive)
	assert.Equal(t, 0.5, trig.State("SHIELD").CooldownRemaining)
}

func TestShieldChargeRequiresTrion(t *testing.T) {
	ecs, _, ss := newSpecialRig()
	id := addCharacter(ecs, 1, 0, [config.SlotCount]string{"SHIELD"})
	ecs.Triggers[id].Selected[types.HandRight] = 0

	intent := &component.Intent{}
	intent.Frame = input.NewFrame()
	intent.Frame.Hold[types.HandRight] = true
	ecs.Intents[id] = intent

	ss.Update(config.FixedDelta)
	_, exists := ecs.Shields[id]
	assert.False(t, exists)
}
