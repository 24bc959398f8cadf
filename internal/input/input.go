// internal/input/input.go
package input

import "github.com/go-gl/mathgl/mgl64"

// Frame — намерения игрока на один тик. Захват клавиш и маппинг —
// забота внешнего слоя; симуляция видит только готовые флаги.
type Frame struct {
	Move mgl64.Vec2 // вектор движения в плоскости
	Look mgl64.Vec3 // направление взгляда относительно камеры

	// Действия по рукам: [0] — правая, [1] — левая.
	Primary [2]bool
	Hold    [2]bool

	// Выбор слота по рукам, -1 — нет запроса.
	SlotSelect [2]int

	Generate [2]bool
	Dismiss  [2]bool

	Split   bool // продвинуть уровень куба-расщепителя
	Special bool // особое действие (удлинение клинка / режим щита)
}

// NewFrame возвращает кадр без запросов выбора слота.
func NewFrame() Frame {
	return Frame{SlotSelect: [2]int{-1, -1}}
}

// Camera — состояние камеры, влияющее на прицеливание.
type Camera struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
	Aiming   bool
	Scoped   bool
}
