// internal/component/projectile_test.go
package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestProjectileExpired(t *testing.T) {
	p := &Projectile{Lifetime: 5.0, MaxRange: 60}
	assert.False(t, p.Expired())

	p.Age = 5.0
	assert.True(t, p.Expired())

	p.Age = 0
	p.Traveled = 60
	assert.True(t, p.Expired())
}

func TestProjectilePierceBookkeeping(t *testing.T) {
	p := &Projectile{}
	assert.False(t, p.AlreadyPierced(3))
	p.MarkPierced(3)
	assert.True(t, p.AlreadyPierced(3))
	assert.False(t, p.AlreadyPierced(4))
}

func TestProjectileSpeed(t *testing.T) {
	p := &Projectile{Velocity: mgl64.Vec3{3, 0, 4}}
	assert.InDelta(t, 5.0, p.Speed(), 1e-12)
}
