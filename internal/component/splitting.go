// internal/component/splitting.go
package component

// SplitPhase — фаза куба-расщепителя.
type SplitPhase int

const (
	SplitUngenerated SplitPhase = iota
	SplitGenerated
)

// SplittingTrigger — состояние куба-расщепителя одного экипированного
// триггера категории SHOOTER. Уровень N даёт сетку N×N и залп из N²
// снарядов; выстрел всегда возвращает куб в несгенерированное состояние.
type SplittingTrigger struct {
	TriggerID string
	Phase     SplitPhase
	Level     int     // 1..MaxSplitLevel
	CubeSize  float64 // масштабируется долей оставшегося триона
}

// Generated сообщает, сформирован ли куб.
func (s *SplittingTrigger) Generated() bool {
	return s.Phase == SplitGenerated
}

// UnitCount — количество субмуниций на текущем уровне.
func (s *SplittingTrigger) UnitCount() int {
	return s.Level * s.Level
}

// Reset возвращает куб в исходное состояние.
func (s *SplittingTrigger) Reset() {
	s.Phase = SplitUngenerated
	s.Level = 0
	s.CubeSize = 0
}
