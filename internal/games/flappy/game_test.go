package flappy

import (
	"testing"

	"github.com/pkazakov/termgames/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func jump(g *Game) {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Step(in)
}

func TestResetLeavesPhysicsFrozen(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	y := g.birdY
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.birdY != y {
		t.Errorf("bird fell before the first flap: %v -> %v", y, g.birdY)
	}
	if g.State().GameOver {
		t.Error("fresh session must not be game over")
	}
}

func TestJumpStartsAndLifts(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	y := g.birdY
	jump(g)

	if !g.started {
		t.Fatal("jump should start the session")
	}
	if g.birdY >= y {
		t.Errorf("bird did not rise on flap: %v -> %v", y, g.birdY)
	}
}

func TestGravityPullsDown(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	jump(g)

	// Let gravity overcome the impulse
	prev := g.birdY
	falling := false
	for i := 0; i < 60 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
		if g.birdY > prev {
			falling = true
			break
		}
		prev = g.birdY
	}

	if !falling {
		t.Error("bird never started falling after the flap")
	}
}

func TestFallSpeedIsCapped(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	jump(g)

	for i := 0; i < 100 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
		if g.velY > g.cfg.Physics.MaxFallSpeed {
			t.Fatalf("fall speed %v exceeds cap %v", g.velY, g.cfg.Physics.MaxFallSpeed)
		}
	}
}

func TestGroundEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	// Keep pipes out of the way so the only hazard is the ground
	g.pipes = nil
	jump(g)

	for i := 0; i < 500 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	if !g.State().GameOver {
		t.Error("expected game over on the ground")
	}
}

func TestPipeCollisionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.started = true

	// Plant a solid pipe right on the bird with the gap far away
	g.pipes = []Pipe{{X: g.birdX, GapY: g.fieldH - 2}}
	g.birdY = 1
	g.velY = 0

	g.Step(core.NewInputFrame())

	if !g.State().GameOver {
		t.Error("expected game over inside a pipe body")
	}
}

func TestGapIsSafe(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.started = true

	g.pipes = []Pipe{{X: g.birdX, GapY: 3}}
	g.birdY = 4 // inside the gap
	g.velY = 0
	g.cfg.Physics.Gravity = 0 // hold position for the check

	g.Step(core.NewInputFrame())

	if g.State().GameOver {
		t.Error("bird inside the gap must survive")
	}
}

func TestScorePerPipePassed(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.started = true
	g.cfg.Physics.Gravity = 0
	g.birdY = float64(g.pipes[0].GapY) // won't matter, pipe is behind

	// Place a single pipe just behind the scoring line and scroll once
	g.pipes = []Pipe{{X: g.birdX - g.cfg.Obstacles.PipeWidth, GapY: 3}}
	g.moveTicker = g.cfg.Obstacles.MoveEvery - 1

	g.Step(core.NewInputFrame())

	if g.score != 1 {
		t.Errorf("score = %d after passing a pipe, want 1", g.score)
	}

	// The same pipe never scores twice
	g.moveTicker = g.cfg.Obstacles.MoveEvery - 1
	g.Step(core.NewInputFrame())
	if g.score != 1 {
		t.Errorf("score = %d, pipe scored twice", g.score)
	}
}

func TestPipesRecycleAhead(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.started = true
	g.cfg.Physics.Gravity = 0
	g.birdY = float64(g.fieldH / 2)
	g.pipes[0].GapY = g.fieldH / 2 // keep the bird safe

	firstX := g.pipes[0].X
	for i := 0; i < (firstX+g.cfg.Obstacles.PipeWidth+2)*g.cfg.Obstacles.MoveEvery; i++ {
		g.Step(core.NewInputFrame())
		if g.State().GameOver {
			t.Fatal("setup: unexpected game over while scrolling")
		}
	}

	for _, p := range g.pipes {
		if p.X+g.cfg.Obstacles.PipeWidth < 0 {
			t.Errorf("pipe at X=%d was never recycled", p.X)
		}
	}
}

func TestDeterministicGaps(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(99))
	g2 := New()
	g2.Reset(testConfig(99))

	for i := range g1.pipes {
		if g1.pipes[i].GapY != g2.pipes[i].GapY {
			t.Errorf("pipe %d gap differs: %d vs %d", i, g1.pipes[i].GapY, g2.pipes[i].GapY)
		}
	}
}
