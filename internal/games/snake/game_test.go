package snake

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

// stepUntilMove ticks the game enough frames for one grid step.
func stepUntilMove(g *Game, a core.Action) {
	for i := 0; i < g.moveEveryTicks; i++ {
		in := core.NewInputFrame()
		if i == 0 && a != core.ActionNone {
			in.Set(a)
		}
		g.Step(in)
	}
}

func TestResetPlacesSnakeAndFood(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	if len(g.snake) != 3 {
		t.Fatalf("snake length = %d, want 3", len(g.snake))
	}
	if g.direction != DirRight {
		t.Errorf("initial direction = %v, want right", g.direction)
	}

	for _, p := range g.snake {
		if p == g.food {
			t.Error("food spawned on the snake")
		}
	}
	if g.State().GameOver {
		t.Error("fresh session must not be game over")
	}
}

func TestDeterministicFood(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(7))
	g2 := New()
	g2.Reset(testConfig(7))

	if g1.food != g2.food {
		t.Errorf("same seed placed food at %v vs %v", g1.food, g2.food)
	}
}

func TestSnakeMovesForward(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	head := g.snake[0]
	stepUntilMove(g, core.ActionNone)

	want := Point{head.X + 1, head.Y}
	if g.snake[0] != want {
		t.Errorf("head = %v after one step, want %v", g.snake[0], want)
	}
	if len(g.snake) != 3 {
		t.Errorf("length changed without food: %d", len(g.snake))
	}
}

func TestCannotReverse(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	head := g.snake[0]
	stepUntilMove(g, core.ActionLeft) // opposite of initial right

	want := Point{head.X + 1, head.Y}
	if g.snake[0] != want {
		t.Errorf("reverse input turned the snake: head %v, want %v", g.snake[0], want)
	}
}

func TestTurning(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	head := g.snake[0]
	stepUntilMove(g, core.ActionDown)

	want := Point{head.X, head.Y + 1}
	if g.snake[0] != want {
		t.Errorf("head = %v after down turn, want %v", g.snake[0], want)
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// March right until the wall
	for i := 0; i < g.mapWidth+2; i++ {
		stepUntilMove(g, core.ActionNone)
		if g.State().GameOver {
			break
		}
	}
	if !g.State().GameOver {
		t.Error("expected game over at the right wall")
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Plant food directly ahead of the head
	head := g.snake[0]
	g.food = Point{head.X + 1, head.Y}

	stepUntilMove(g, core.ActionNone)
	if g.score != 1 {
		t.Errorf("score = %d after eating, want 1", g.score)
	}

	// Growth lands on the following step
	stepUntilMove(g, core.ActionNone)
	if len(g.snake) != 4 {
		t.Errorf("length = %d after eating, want 4", len(g.snake))
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Grow to length 5 so a tight loop bites the tail
	for i := 0; i < 2; i++ {
		head := g.snake[0]
		g.food = Point{head.X + 1, head.Y}
		stepUntilMove(g, core.ActionNone)
	}
	stepUntilMove(g, core.ActionNone) // flush pending growth

	if len(g.snake) != 5 {
		t.Fatalf("setup: length = %d, want 5", len(g.snake))
	}

	// Right -> down -> left -> up curls into the body
	stepUntilMove(g, core.ActionDown)
	stepUntilMove(g, core.ActionLeft)
	stepUntilMove(g, core.ActionUp)

	if !g.State().GameOver {
		t.Error("expected game over from self collision")
	}
}

func TestPauseFreezesSnake(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	head := g.snake[0]
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.snake[0] != head {
		t.Error("snake moved while paused")
	}
}

func TestSpeedUpTightensInterval(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	start := g.moveEveryTicks
	// Eat enough food to trigger at least one speed-up
	for i := 0; i < g.cfg.Speed.SpeedUpEvery; i++ {
		head := g.snake[0]
		g.food = Point{head.X + 1, head.Y}
		stepUntilMove(g, core.ActionNone)
		if g.State().GameOver {
			t.Fatal("setup: game ended while feeding")
		}
	}

	if g.moveEveryTicks >= start {
		t.Errorf("moveEveryTicks = %d, want below %d", g.moveEveryTicks, start)
	}
}
