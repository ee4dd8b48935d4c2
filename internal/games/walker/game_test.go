package walker

import (
	"math"
	"testing"

	"github.com/vovakirdan/raymaze/internal/core"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testRuntimeConfig(12345)

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i%3 == 0 {
			input.Set(core.ActionForward)
		}
		if i%7 == 0 {
			input.Set(core.ActionTurnRight)
		}
		if i == 50 {
			input.Set(core.ActionStrafeLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.X != snap2.X || snap1.Y != snap2.Y {
		t.Errorf("Position mismatch: (%v,%v) vs (%v,%v)", snap1.X, snap1.Y, snap2.X, snap2.Y)
	}
	if snap1.Heading != snap2.Heading {
		t.Errorf("Heading mismatch: %v vs %v", snap1.Heading, snap2.Heading)
	}
	if snap1.Moves != snap2.Moves {
		t.Errorf("Moves mismatch: %d vs %d", snap1.Moves, snap2.Moves)
	}
	if snap1.Layout != snap2.Layout {
		t.Error("Layout mismatch for identical seeds")
	}
}

func TestResetSpawnsAtEntrance(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(42))

	if g.cfgErr != nil {
		t.Fatalf("Reset failed: %v", g.cfgErr)
	}
	if g.player.X != 1.5 || g.player.Y != 0.5 {
		t.Errorf("expected spawn (1.5, 0.5), got (%v, %v)", g.player.X, g.player.Y)
	}
	if g.player.Heading != math.Pi/2 {
		t.Errorf("expected initial heading pi/2, got %v", g.player.Heading)
	}
	if g.player.FOV != g.cfg.Player.FOV {
		t.Errorf("expected configured FOV %v, got %v", g.cfg.Player.FOV, g.player.FOV)
	}
}

func TestRaceCompletesAtExit(t *testing.T) {
	g := NewRace()
	g.Reset(testRuntimeConfig(7))

	// Walk the player onto the exit cell directly.
	g.player.X = float64(g.maze.Exit.X) + 0.5
	g.player.Y = float64(g.maze.Exit.Y) + 0.5
	g.checkExit()

	if !g.completed {
		t.Error("race should complete when the exit cell is reached")
	}
	if g.mazesCleared != 1 {
		t.Errorf("expected 1 maze cleared, got %d", g.mazesCleared)
	}
	if !g.State().Completed || !g.State().GameOver {
		t.Error("state should report completion")
	}
}

func TestExploreRegeneratesAtExit(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	g.player.X = float64(g.maze.Exit.X) + 0.5
	g.player.Y = float64(g.maze.Exit.Y) + 0.5
	g.checkExit()

	if g.completed {
		t.Error("explore mode should never complete")
	}
	if g.mazesCleared != 1 {
		t.Errorf("expected 1 maze cleared, got %d", g.mazesCleared)
	}
	// Player respawns at the entrance of the fresh maze.
	if g.player.X != 1.5 || g.player.Y != 0.5 {
		t.Errorf("expected respawn at (1.5, 0.5), got (%v, %v)", g.player.X, g.player.Y)
	}
}

func TestPauseBlocksMovement(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(99))

	g.Step(frame(core.ActionPause))
	if !g.paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	g.Step(frame(core.ActionForward))
	after := g.Snapshot()

	if after.X != before.X || after.Y != before.Y || after.Moves != before.Moves {
		t.Error("movement should be ignored while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.paused {
		t.Error("second pause action should unpause")
	}
}

func TestMovesCountsOnlyTranslations(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(5))

	g.Step(frame(core.ActionTurnLeft))
	g.Step(frame(core.ActionWidenFOV))
	if g.moves != 0 {
		t.Errorf("rotations and FOV changes should not count as moves, got %d", g.moves)
	}

	// Heading pi/2 from the spawn points down the seed tunnel, which is
	// always open.
	g.Step(frame(core.ActionForward))
	if g.moves != 1 {
		t.Errorf("accepted translation should count, got %d moves", g.moves)
	}
}

func TestMapToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(5))

	if g.showMap {
		t.Fatal("map inset should start hidden")
	}
	g.Step(frame(core.ActionToggleMap))
	if !g.showMap {
		t.Error("toggle should show the map inset")
	}
	g.Step(frame(core.ActionToggleMap))
	if g.showMap {
		t.Error("second toggle should hide the map inset")
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	g := NewRace()
	g.Reset(testRuntimeConfig(7))

	g.player.X = float64(g.maze.Exit.X) + 0.5
	g.player.Y = float64(g.maze.Exit.Y) + 0.5
	g.checkExit()
	if !g.completed {
		t.Fatal("race should be completed")
	}

	g.Step(frame(core.ActionRestart))
	if g.completed {
		t.Error("restart should clear completion")
	}
	if g.moves != 0 || g.mazesCleared != 0 {
		t.Errorf("restart should reset counters, got moves=%d cleared=%d", g.moves, g.mazesCleared)
	}
}

func TestInvalidMapOverrideSurfaces(t *testing.T) {
	SetMapSize(6, 6) // even dimensions are invalid
	defer SetMapSize(0, 0)

	g := New()
	g.Reset(testRuntimeConfig(1))

	if g.ConfigError() == nil {
		t.Fatal("even map dimensions should produce a configuration error")
	}

	// Stepping with a broken config must not panic or advance the world.
	g.Step(frame(core.ActionForward))
	if g.moves != 0 {
		t.Error("no moves should be possible with a configuration error")
	}
}

func TestWindowTooSmall(t *testing.T) {
	cfg := core.RuntimeConfig{
		Seed:    333,
		ScreenW: 10, // Too small
		ScreenH: 4,  // Too small
	}

	g := New()
	g.Reset(cfg)

	if !g.tooSmall {
		t.Error("game should detect window is too small")
	}

	g.Step(frame(core.ActionForward))
	if g.moves != 0 {
		t.Error("movement should be ignored while the window is too small")
	}
}

func TestGameIDsAndTitles(t *testing.T) {
	explore := New()
	if explore.ID() != "explore" || explore.Title() != "Maze Explorer" {
		t.Errorf("unexpected explore identity: %s / %s", explore.ID(), explore.Title())
	}

	race := NewRace()
	if race.ID() != "race" || race.Title() != "Maze Race" {
		t.Errorf("unexpected race identity: %s / %s", race.ID(), race.Title())
	}
}
