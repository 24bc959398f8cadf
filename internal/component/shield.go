// internal/component/shield.go
package component

import (
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Shield — защитный барьер бойца. Два варианта жизненного цикла:
// обычный щит заряжается (размер растёт непрерывно от 1 до 3) и
// фиксируется при развёртывании; режим щита (Raygust) отслеживает
// носителя и имеет фиксированную прочность.
type Shield struct {
	TriggerID string

	Charging   bool
	ChargeTime float64 // накопленное время зарядки
	Size       float64 // 1..3, непрерывно во время зарядки

	Deployed       bool
	BaseDurability float64
	Durability     float64

	// Поза, зафиксированная в момент развёртывания.
	Position mgl64.Vec3
	Normal   mgl64.Vec3

	// Tracking — щит следует за носителем (режим щита Raygust).
	Tracking bool
}

// ChargeTick наращивает размер во время зарядки.
func (s *Shield) ChargeTick(dt float64) {
	if !s.Charging {
		return
	}
	s.ChargeTime += dt
	t := utils.Clamp(s.ChargeTime/config.ShieldChargeDuration, 0, 1)
	s.Size = utils.Lerp(config.ShieldMinSize, config.ShieldMaxSize, t)
}

// Deploy фиксирует щит: прочность обратно пропорциональна размеру.
func (s *Shield) Deploy(position, normal mgl64.Vec3) {
	s.Charging = false
	s.Deployed = true
	if s.Size < config.ShieldMinSize {
		s.Size = config.ShieldMinSize
	}
	s.Durability = s.BaseDurability / s.Size
	s.Position = position
	s.Normal = normal
}

// Absorb поглощает удар. Возвращает true, если щит разрушен.
// Избыточный урон не переносится на носителя.
func (s *Shield) Absorb(damage float64) bool {
	if !s.Deployed {
		return false
	}
	s.Durability -= damage
	if s.Durability <= 0 {
		s.Durability = 0
		s.Deployed = false
		return true
	}
	return false
}
