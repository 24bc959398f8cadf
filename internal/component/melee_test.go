// internal/component/melee_test.go
package component

import (
	"math"
	"testing"

	"go-trion-combat/internal/types"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func newTestSwing() *MeleeAttack {
	return &MeleeAttack{
		SectorAngle: 150,
		Segments:    8,
		Duration:    0.4,
		Facing:      mgl64.Vec3{0, 0, 1},
		HitTargets:  make(map[types.EntityID]struct{}),
	}
}

func TestActiveSegmentProgression(t *testing.T) {
	m := newTestSwing()

	m.Elapsed = 0
	assert.Equal(t, 0, m.ActiveSegment())

	m.Elapsed = 0.06
	assert.Equal(t, 1, m.ActiveSegment())

	m.Elapsed = 0.39
	assert.Equal(t, 7, m.ActiveSegment())

	// Последний сегмент остаётся активным и после конца замаха.
	m.Elapsed = 0.5
	assert.Equal(t, 7, m.ActiveSegment())
}

func TestInActiveSegmentRejectsOutsideSector(t *testing.T) {
	m := newTestSwing()
	// 80° от взгляда — за пределами полусектора в 75°.
	outside := mgl64.Vec3{math.Sin(mgl64.DegToRad(80)), 0, math.Cos(mgl64.DegToRad(80))}
	for seg := 0; seg < m.Segments; seg++ {
		m.Elapsed = (float64(seg) + 0.5) / float64(m.Segments) * m.Duration
		assert.False(t, m.InActiveSegment(outside))
	}
}

func TestInActiveSegmentMatchesSingleSegment(t *testing.T) {
	m := newTestSwing()
	target := mgl64.Vec3{math.Sin(mgl64.DegToRad(60)), 0, math.Cos(mgl64.DegToRad(60))}

	hits := 0
	for seg := 0; seg < m.Segments; seg++ {
		m.Elapsed = (float64(seg) + 0.5) / float64(m.Segments) * m.Duration
		if m.InActiveSegment(target) {
			hits++
		}
	}
	// Направление на цель принадлежит ровно одному сегменту сектора.
	assert.Equal(t, 1, hits)
}

func TestInActiveSegmentDistinguishesSides(t *testing.T) {
	m := newTestSwing()
	left := mgl64.Vec3{-math.Sin(mgl64.DegToRad(60)), 0, math.Cos(mgl64.DegToRad(60))}
	right := mgl64.Vec3{math.Sin(mgl64.DegToRad(60)), 0, math.Cos(mgl64.DegToRad(60))}

	segOf := func(dir mgl64.Vec3) int {
		for seg := 0; seg < m.Segments; seg++ {
			m.Elapsed = (float64(seg) + 0.5) / float64(m.Segments) * m.Duration
			if m.InActiveSegment(dir) {
				return seg
			}
		}
		return -1
	}
	assert.NotEqual(t, segOf(left), segOf(right))
}

func TestSwingHitBookkeeping(t *testing.T) {
	m := newTestSwing()
	assert.False(t, m.AlreadyHit(42))
	m.MarkHit(42)
	assert.True(t, m.AlreadyHit(42))
	assert.False(t, m.AlreadyHit(7))
}

func TestSwingFinished(t *testing.T) {
	m := newTestSwing()
	m.Elapsed = 0.39
	assert.False(t, m.Finished())
	m.Elapsed = 0.4
	assert.True(t, m.Finished())
}
