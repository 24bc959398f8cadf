// internal/component/intent.go
package component

import "go-trion-combat/internal/input"

// Intent хранит последний кадр ввода и состояние камеры для управляемой
// сущности. Ввод приходит от внешнего слоя раз в тик и читается системами;
// обратной связи в слой ввода нет.
type Intent struct {
	Frame  input.Frame
	Camera input.Camera
}
