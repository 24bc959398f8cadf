// internal/component/melee.go
package component

import (
	"go-trion-combat/internal/types"
	"go-trion-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// MeleeAttack — временный объём атаки ближнего боя. Сектор делится на
// сегменты, раскрывающиеся по времени замаха; в каждый момент проверяется
// только активный сегмент, поэтому один взмах не задевает цель дважды
// своим визуальным следом.
type MeleeAttack struct {
	OwnerID types.EntityID
	Team    types.Team
	SwingID uuid.UUID

	TriggerID  string
	Damage     float64
	BaseDamage float64
	Range      float64
	BaseRange  float64

	SectorAngle float64 // полный угол, градусы
	Segments    int
	Duration    float64
	Elapsed     float64

	Origin mgl64.Vec3
	Facing mgl64.Vec3 // горизонтальное направление взгляда при замахе

	// Цели, уже поражённые этим взмахом.
	HitTargets map[types.EntityID]struct{}
}

// ActiveSegment возвращает индекс раскрывающегося сейчас сегмента.
func (m *MeleeAttack) ActiveSegment() int {
	if m.Duration <= 0 || m.Segments <= 0 {
		return 0
	}
	seg := int(m.Elapsed / m.Duration * float64(m.Segments))
	if seg >= m.Segments {
		seg = m.Segments - 1
	}
	if seg < 0 {
		seg = 0
	}
	return seg
}

// Finished сообщает, завершён ли замах.
func (m *MeleeAttack) Finished() bool {
	return m.Elapsed >= m.Duration
}

// AlreadyHit проверяет, была ли цель уже поражена этим взмахом.
func (m *MeleeAttack) AlreadyHit(target types.EntityID) bool {
	_, hit := m.HitTargets[target]
	return hit
}

// MarkHit запоминает поражённую цель.
func (m *MeleeAttack) MarkHit(target types.EntityID) {
	m.HitTargets[target] = struct{}{}
}

// InActiveSegment проверяет, попадает ли направление на цель в активный
// сегмент сектора. Сегменты раскрываются слева направо относительно
// направления взгляда.
func (m *MeleeAttack) InActiveSegment(toTarget mgl64.Vec3) bool {
	half := mgl64.DegToRad(m.SectorAngle) / 2
	angle := utils.FlatAngleBetween(m.Facing, toTarget)
	if angle > half {
		return false
	}

	// Знак угла: слева или справа от взгляда.
	cross := m.Facing.X()*toTarget.Z() - m.Facing.Z()*toTarget.X()
	if cross > 0 {
		angle = -angle
	}

	segWidth := mgl64.DegToRad(m.SectorAngle) / float64(m.Segments)
	seg := int((angle + half) / segWidth)
	if seg >= m.Segments {
		seg = m.Segments - 1
	}
	return seg == m.ActiveSegment()
}
