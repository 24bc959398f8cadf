// cmd/sim/main.go
package main

import (
	"flag"
	"os"
	"time"

	"go-trion-combat/internal/app"
	"go-trion-combat/internal/config"
	"go-trion-combat/internal/defs"
	"go-trion-combat/internal/input"
	"go-trion-combat/internal/types"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Запускает симуляцию без отрисовки: два бойца, фиксированный тик,
// периодический вывод счётчиков. Полезно для профилирования баланса.
func main() {
	configDir := flag.String("config", ".", "directory with balance.json")
	ticks := flag.Int("ticks", 600, "number of fixed ticks to simulate")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	balance, err := defs.LoadBalance(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load balance config")
	}

	g := app.NewGame(log, balance.Seed)

	attacker := g.SpawnCharacter(0, 100, 5, mgl64.Vec3{0, 0, 0}, [config.SlotCount]string{
		"KOGETSU", "ASTEROID_GUN", "ASTEROID", "SHIELD",
		"SCORPION", "BAGWORM", "", "",
	})
	defender := g.SpawnCharacter(1, 80, 3, mgl64.Vec3{0, 0, 10}, [config.SlotCount]string{
		"IBIS", "HOUND", "SHIELD", "RAYGUST",
		"LIGHTNING", "", "", "",
	})
	if attacker == 0 || defender == 0 {
		log.Fatal().Msg("failed to spawn demo characters")
	}

	// Боец 1 выбирает огнестрел и стреляет в сторону противника.
	frame := input.NewFrame()
	frame.SlotSelect[types.HandRight] = 1
	g.ApplyInput(attacker, frame, input.Camera{})
	g.Update(config.FixedDelta)

	for i := 0; i < *ticks; i++ {
		frame = input.NewFrame()
		if i == int(config.SwitchPenaltyCooldown/config.FixedDelta)+1 {
			frame.Generate[types.HandRight] = true
		}
		if i > int(config.SwitchPenaltyCooldown/config.FixedDelta)+1 {
			frame.Primary[types.HandRight] = true
		}
		g.ApplyInput(attacker, frame, input.Camera{Position: mgl64.Vec3{0, 1.6, -2}})
		g.Update(config.FixedDelta)

		if i%60 == 0 {
			snap := g.Snapshot()
			log.Info().
				Int("tick", i).
				Int("attacks", snap.ActiveAttacks).
				Int("projectiles", snap.LiveProjectiles).
				Int("cubes", snap.SplittingTriggers).
				Int("characters", snap.Characters).
				Msg("simulation state")
		}
	}

	snap := g.Snapshot()
	log.Info().
		Int("projectiles", snap.LiveProjectiles).
		Int("characters", snap.Characters).
		Msg("simulation finished")
}
