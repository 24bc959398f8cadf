// internal/system/collision_test.go
package system

import (
	"testing"

	"go-trion-combat/internal/component"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/entity"
	"go-trion-combat/internal/event"
	"go-trion-combat/internal/types"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollisionRig() (*entity.ECS, *event.Dispatcher, *CollisionSystem) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	return ecs, dispatcher, NewCollisionSystem(ecs, dispatcher, zerolog.Nop())
}

func addSwingVolume(ecs *entity.ECS, owner types.EntityID, team types.Team, origin mgl64.Vec3, damage, rng float64) (types.EntityID, *component.MeleeAttack) {
	id := ecs.NewEntity()
	melee := &component.MeleeAttack{
		OwnerID:     owner,
		Team:        team,
		SwingID:     uuid.New(),
		Damage:      damage,
		BaseDamage:  damage,
		Range:       rng,
		BaseRange:   rng,
		SectorAngle: config.MeleeSectorAngle,
		Segments:    config.MeleeSegments,
		Duration:    0.4,
		Origin:      origin,
		Facing:      mgl64.Vec3{0, 0, 1},
		HitTargets:  make(map[types.EntityID]struct{}),
	}
	ecs.MeleeAttacks[id] = melee
	ecs.Transforms[id] = &component.Transform{Position: origin}
	ecs.Colliders[id] = &component.Collider{
		Shape:     component.ShapeSphere,
		Size:      mgl64.Vec3{rng, 0, 0},
		Layer:     config.LayerMelee,
		Mask:      config.LayerCharacter,
		IsTrigger: true,
	}
	return id, melee
}

func TestProjectileHitAppliesDamage(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	_, target := addTarget(ecs, 1, mgl64.Vec3{0, 1, 0}, 100)
	pid, _ := addProjectile(ecs, defs.ProjectileSimple, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 30)

	cs.Update(config.FixedDelta)

	assert.Equal(t, 70.0, target.CurrentTrion)
	assert.True(t, ecs.RemovalPending(pid))
}

func TestProjectileOwnerImmunity(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	tid, target := addTarget(ecs, 1, mgl64.Vec3{0, 1, 0}, 100)
	_, proj := addProjectile(ecs, defs.ProjectileSimple, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 30)
	proj.OwnerID = tid
	proj.Team = 0

	cs.Update(config.FixedDelta)
	assert.Equal(t, 100.0, target.CurrentTrion)
}

func TestProjectileTeamFilter(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	_, ally := addTarget(ecs, 0, mgl64.Vec3{0, 1, 0}, 100)
	pid, _ := addProjectile(ecs, defs.ProjectileSimple, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 30)

	cs.Update(config.FixedDelta)

	assert.Equal(t, 100.0, ally.CurrentTrion)
	assert.False(t, ecs.RemovalPending(pid))
}

func TestDeployedShieldAbsorbsProjectileCompletely(t *testing.T) {
	ecs, dispatcher, cs := newCollisionRig()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.ShieldBroken, rec)

	tid, target := addTarget(ecs, 1, mgl64.Vec3{0, 1, 0}, 100)
	shield := &component.Shield{Size: 2, BaseDurability: 100}
	shield.Deploy(mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, -1})
	ecs.Shields[tid] = shield
	require.InDelta(t, 50.0, shield.Durability, 1e-9)

	pid, _ := addProjectile(ecs, defs.ProjectileSimple, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 60)

	cs.Update(config.FixedDelta)

	// Щит разрушен, избыток урона не дошёл до носителя, снаряд израсходован.
	_, hasShield := ecs.Shields[tid]
	assert.False(t, hasShield)
	assert.Equal(t, 100.0, target.CurrentTrion)
	assert.True(t, ecs.RemovalPending(pid))
	assert.Equal(t, 1, rec.count(event.ShieldBroken))
}

func TestDeployedShieldSurvivesWeakHit(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	tid, target := addTarget(ecs, 1, mgl64.Vec3{0, 1, 0}, 100)
	shield := &component.Shield{Size: 1, BaseDurability: 100}
	shield.Deploy(mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, -1})
	ecs.Shields[tid] = shield

	pid, _ := addProjectile(ecs, defs.ProjectileSimple, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 30)

	cs.Update(config.FixedDelta)

	assert.InDelta(t, 70.0, shield.Durability, 1e-9)
	assert.True(t, shield.Deployed)
	assert.Equal(t, 100.0, target.CurrentTrion)
	assert.True(t, ecs.RemovalPending(pid))
}

func TestPiercingProjectileContinuesWithReducedDamage(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	tid, target := addTarget(ecs, 1, mgl64.Vec3{0, 1, 0}, 200)
	pid, proj := addProjectile(ecs, defs.ProjectilePiercing, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 40)
	proj.MaxPierce = 2

	cs.Update(config.FixedDelta)

	assert.Equal(t, 160.0, target.CurrentTrion)
	assert.False(t, ecs.RemovalPending(pid))
	assert.Equal(t, 1, proj.PierceCount)
	assert.InDelta(t, 32.0, proj.Damage, 1e-9)
	assert.True(t, proj.AlreadyPierced(tid))

	// Пробитая цель повторно не бьётся тем же снарядом.
	cs.Update(config.FixedDelta)
	assert.Equal(t, 160.0, target.CurrentTrion)
}

func TestPiercingBudgetExhausted(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	addTarget(ecs, 1, mgl64.Vec3{0, 1, 0}, 200)
	pid, proj := addProjectile(ecs, defs.ProjectilePiercing, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 40)
	proj.MaxPierce = 0

	cs.Update(config.FixedDelta)
	assert.True(t, ecs.RemovalPending(pid))
}

func TestExplosiveProjectileSplashesOnImpact(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	_, direct := addTarget(ecs, 1, mgl64.Vec3{0, 1, 0}, 100)
	_, nearby := addTarget(ecs, 1, mgl64.Vec3{3, 1, 0}, 100)
	pid, proj := addProjectile(ecs, defs.ProjectileExplosive, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 45)
	proj.ExplosionRadius = 6.0

	cs.Update(config.FixedDelta)

	assert.True(t, ecs.RemovalPending(pid))
	assert.Less(t, direct.CurrentTrion, 100.0)
	assert.Less(t, nearby.CurrentTrion, 100.0)
	// Ближе к центру — больнее.
	assert.Less(t, direct.CurrentTrion, nearby.CurrentTrion)
}

func TestMeleeHitsTargetExactlyOncePerSwing(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	owner := ecs.NewEntity()

	// Цель в 60° от направления взгляда, в пределах дальности.
	pos := mgl64.Vec3{1.7320508, 0, 1.0}
	_, target := addTarget(ecs, 1, pos, 100)
	_, melee := addSwingVolume(ecs, owner, 0, mgl64.Vec3{}, 45, 4.5)

	// Прогоняем весь замах: каждый сегмент проверяется по очереди.
	for seg := 0; seg < melee.Segments; seg++ {
		melee.Elapsed = (float64(seg) + 0.5) / float64(melee.Segments) * melee.Duration
		cs.Update(config.FixedDelta)
	}

	assert.Equal(t, 55.0, target.CurrentTrion)
}

func TestMeleeHitEventCarriesSwingIdentity(t *testing.T) {
	ecs, dispatcher, cs := newCollisionRig()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.MeleeHit, rec)

	owner := ecs.NewEntity()
	tid, _ := addTarget(ecs, 1, mgl64.Vec3{0, 0, 2}, 100)
	_, melee := addSwingVolume(ecs, owner, 0, mgl64.Vec3{}, 45, 4.5)

	for seg := 0; seg < melee.Segments; seg++ {
		melee.Elapsed = (float64(seg) + 0.5) / float64(melee.Segments) * melee.Duration
		cs.Update(config.FixedDelta)
	}

	// Один удар — одно событие, с идентификатором именно этого взмаха.
	require.Equal(t, 1, rec.count(event.MeleeHit))
	hit, ok := rec.events[0].Data.(event.MeleeHitEvent)
	require.True(t, ok)
	assert.Equal(t, owner, hit.Attacker)
	assert.Equal(t, tid, hit.Target)
	assert.Equal(t, melee.SwingID, hit.Swing)
	assert.Equal(t, melee.Damage, hit.Damage)
}

func TestDefeatGraceHonorsBalanceOverride(t *testing.T) {
	t.Cleanup(defs.ResetBalance)
	defs.Balance.DefeatGrace = 0.25

	ecs, _, cs := newCollisionRig()
	tid, _ := addTarget(ecs, 1, mgl64.Vec3{0, 1, 0}, 20)
	addProjectile(ecs, defs.ProjectileSimple, 0, mgl64.Vec3{0, 1, 0.5}, mgl64.Vec3{0, 0, 10}, 30)

	cs.Update(config.FixedDelta)

	defeated := ecs.Defeated[tid]
	require.NotNil(t, defeated)
	assert.Equal(t, 0.25, defeated.GraceRemaining)
}

func TestMeleeBypassesDeployedShield(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	owner := ecs.NewEntity()

	tid, target := addTarget(ecs, 1, mgl64.Vec3{0, 0, 2}, 100)
	shield := &component.Shield{Size: 1, BaseDurability: 100}
	shield.Deploy(mgl64.Vec3{0, 1, 1.5}, mgl64.Vec3{0, 0, -1})
	ecs.Shields[tid] = shield

	_, melee := addSwingVolume(ecs, owner, 0, mgl64.Vec3{}, 45, 4.5)
	for seg := 0; seg < melee.Segments; seg++ {
		melee.Elapsed = (float64(seg) + 0.5) / float64(melee.Segments) * melee.Duration
		cs.Update(config.FixedDelta)
	}

	// Клинок обходит барьер: урон идёт в трион, щит не тронут.
	assert.Equal(t, 55.0, target.CurrentTrion)
	assert.InDelta(t, 100.0, shield.Durability, 1e-9)
}

func TestMeleeHeightTolerance(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	owner := ecs.NewEntity()

	_, target := addTarget(ecs, 1, mgl64.Vec3{0, 3, 2}, 100)
	_, melee := addSwingVolume(ecs, owner, 0, mgl64.Vec3{}, 45, 4.5)

	for seg := 0; seg < melee.Segments; seg++ {
		melee.Elapsed = (float64(seg) + 0.5) / float64(melee.Segments) * melee.Duration
		cs.Update(config.FixedDelta)
	}
	assert.Equal(t, 100.0, target.CurrentTrion)
}

func TestMeleeRespectsRange(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	owner := ecs.NewEntity()

	_, target := addTarget(ecs, 1, mgl64.Vec3{0, 0, 6}, 100)
	_, melee := addSwingVolume(ecs, owner, 0, mgl64.Vec3{}, 45, 4.5)

	for seg := 0; seg < melee.Segments; seg++ {
		melee.Elapsed = (float64(seg) + 0.5) / float64(melee.Segments) * melee.Duration
		cs.Update(config.FixedDelta)
	}
	assert.Equal(t, 100.0, target.CurrentTrion)
}

func TestMeleeSkipsOwnerAndAllies(t *testing.T) {
	ecs, _, cs := newCollisionRig()
	ownerID, ownerChar := addTarget(ecs, 0, mgl64.Vec3{0, 0, 1}, 100)
	_, ally := addTarget(ecs, 0, mgl64.Vec3{0, 0, 2}, 100)
	_, melee := addSwingVolume(ecs, ownerID, 0, mgl64.Vec3{}, 45, 4.5)

	for seg := 0; seg < melee.Segments; seg++ {
		melee.Elapsed = (float64(seg) + 0.5) / float64(melee.Segments) * melee.Duration
		cs.Update(config.FixedDelta)
	}
	assert.Equal(t, 100.0, ownerChar.CurrentTrion)
	assert.Equal(t, 100.0, ally.CurrentTrion)
}
