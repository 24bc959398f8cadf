// internal/utils/math.go
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleBetween возвращает угол между двумя векторами в радианах.
// Для нулевых векторов возвращает π, чтобы такие пары никогда
// не проходили секторные проверки.
func AngleBetween(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < 1e-9 || lb < 1e-9 {
		return math.Pi
	}
	cos := a.Dot(b) / (la * lb)
	cos = Clamp(cos, -1.0, 1.0)
	return math.Acos(cos)
}

// FlatAngleBetween — угол между проекциями векторов на горизонтальную
// плоскость. Секторные проверки ближнего боя игнорируют вертикаль,
// высота учитывается отдельным допуском.
func FlatAngleBetween(a, b mgl64.Vec3) float64 {
	return AngleBetween(mgl64.Vec3{a.X(), 0, a.Z()}, mgl64.Vec3{b.X(), 0, b.Z()})
}

// DirectionFromAngles строит единичный вектор взгляда из углов камеры.
// yaw отсчитывается от оси +Z, pitch — вверх от горизонта.
func DirectionFromAngles(yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return mgl64.Vec3{
		math.Sin(yaw) * cp,
		math.Sin(pitch),
		math.Cos(yaw) * cp,
	}
}

// RotateTowards поворачивает направление from к направлению to на долю t,
// сохраняя единичную длину. Используется для самонаведения.
func RotateTowards(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	blended := from.Mul(1 - t).Add(to.Mul(t))
	if blended.Len() < 1e-9 {
		return from
	}
	return blended.Normalize()
}
