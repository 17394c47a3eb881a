package juan

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/juan-jump/internal/core"
	"github.com/vovakirdan/juan-jump/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical worlds
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i == 0 {
			inputs[i].Set(core.ActionJump)
		}
		if (i/45)%2 == 0 {
			inputs[i].SetTilt(0.3, 0)
		} else {
			inputs[i].SetTilt(-0.25, 0)
		}
	}

	g1 := newTestGame(12345)
	g2 := newTestGame(12345)
	for i, in := range inputs {
		r1 := g1.Step(in)
		r2 := g2.Step(in)
		if !reflect.DeepEqual(r1, r2) {
			t.Fatalf("tick %d: results differ: %+v vs %+v", i, r1, r2)
		}
		if r1.State.GameOver {
			break
		}
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("Determinism failed: snapshots differ")
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", g1.tickCount, g2.tickCount)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)
	initial := g.Snapshot()

	g.Step(jumpFrame())
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Started || state.Paused {
		t.Errorf("Reset() should start fresh, got %+v", state)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset() should zero tickCount, got %d", g.tickCount)
	}
	if !reflect.DeepEqual(g.Snapshot(), initial) {
		t.Error("Reset() with the same seed should rebuild the same level")
	}
}

func TestInitialLayout(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(7)

	if len(g.platforms) != cfg.Platforms.Count {
		t.Fatalf("pool size = %d, expected %d", len(g.platforms), cfg.Platforms.Count)
	}

	spacing := cfg.World.Height / float64(cfg.Platforms.Count)
	for i, p := range g.platforms {
		lo := float64(i)*spacing + cfg.Platforms.BandPadding
		hi := float64(i+1)*spacing - cfg.Platforms.BandPadding
		if p.Pos.Y < lo || p.Pos.Y > hi {
			t.Errorf("platform %d y = %v outside band [%v, %v]", i, p.Pos.Y, lo, hi)
		}
		if p.Pos.X < 0 || p.Pos.X > cfg.World.Width {
			t.Errorf("platform %d x = %v outside the screen", i, p.Pos.X)
		}
		if p.Category != CategoryNormal || !p.Active || !p.Collidable {
			t.Errorf("platform %d should start as an active normal platform", i)
		}
	}

	if g.ball.Pos != vec(cfg.World.Width/2, cfg.Ball.SpawnOffset+cfg.Ball.Radius) {
		t.Errorf("ball spawned at %+v", g.ball.Pos)
	}
	if g.floor.Pos.Y != cfg.Platforms.FloorHeight/2 || g.floor.Size.W != cfg.World.Width {
		t.Errorf("floor = %+v", g.floor)
	}
}

func TestBallRestsUntilFirstTouch(t *testing.T) {
	g := newTestGame(1)
	spawn := g.ball

	for i := 0; i < 120; i++ {
		in := core.NewInputFrame()
		in.SetTilt(1, 0)
		res := g.Step(in)
		if res.Sounds != nil {
			t.Fatalf("tick %d: unexpected sounds %v", i, res.Sounds)
		}
		if res.State.Started {
			t.Fatal("game started without a touch")
		}
	}

	if g.ball.Pos != spawn.Pos || g.ball.Vel != spawn.Vel {
		t.Errorf("ball moved before the first touch: %+v", g.ball)
	}
}

func TestFirstTouchLaunchesBall(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(1)
	spawnY := g.ball.Pos.Y

	res := g.Step(jumpFrame())

	if !res.State.Started {
		t.Fatal("first touch should start the game")
	}
	if !reflect.DeepEqual(res.Sounds, []string{SoundJump}) {
		t.Errorf("sounds = %v, expected [jump]", res.Sounds)
	}
	launch := cfg.World.Height*cfg.Contact.BounceFactor - spawnY
	if g.ball.Vel.Y <= 0 || g.ball.Vel.Y > launch {
		t.Errorf("vy = %v, expected just under %v after one tick of gravity", g.ball.Vel.Y, launch)
	}
	if g.ball.Pos.Y <= spawnY {
		t.Error("ball should rise after the first touch")
	}

	// A second touch is not a relaunch
	vy := g.ball.Vel.Y
	res = g.Step(jumpFrame())
	if g.ball.Vel.Y >= vy {
		t.Error("jump after start should not add velocity")
	}
	for _, s := range res.Sounds {
		if s == SoundJump {
			t.Error("jump after start should not play the jump sound")
		}
	}
}

func TestGameOverPersistsScores(t *testing.T) {
	g := newTestGame(3)
	keeper := newMemKeeper()
	keeper.values[KeyHighScore] = 1000000
	g.SetScoreKeeper(keeper)

	g.Step(jumpFrame())
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	best := g.session.Score.Best()
	if best == 0 {
		t.Fatal("ball should have climbed")
	}

	g.ball.Pos.Y = -100
	g.ball.Vel.Y = -10
	res := g.Step(core.NewInputFrame())

	if !res.State.GameOver {
		t.Fatal("ball below the screen should end the game")
	}
	if res.State.Score != best {
		t.Errorf("final score = %d, expected best %d", res.State.Score, best)
	}
	if len(res.Sounds) == 0 || res.Sounds[len(res.Sounds)-1] != SoundGameOver {
		t.Errorf("sounds = %v, expected gameOver last", res.Sounds)
	}
	if keeper.values[KeyLastScore] != best {
		t.Errorf("LastScore = %d, expected %d", keeper.values[KeyLastScore], best)
	}
	if keeper.values[KeyHighScore] != 1000000 {
		t.Errorf("HighScore overwritten with a lower score: %d", keeper.values[KeyHighScore])
	}

	// Ended sessions are frozen
	after := g.Step(jumpFrame())
	if after.Sounds != nil || !after.State.GameOver {
		t.Errorf("ended game should not react: %+v", after)
	}
	if len(keeper.writes) != 1 {
		t.Errorf("writes = %v, expected a single LastScore write", keeper.writes)
	}
}

func TestGameOverRaisesHighScore(t *testing.T) {
	g := newTestGame(3)
	keeper := newMemKeeper()
	g.SetScoreKeeper(keeper)

	g.Step(jumpFrame())
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	g.ball.Pos.Y = -100
	g.Step(core.NewInputFrame())

	best := g.session.Score.Best()
	if keeper.values[KeyHighScore] != best || keeper.values[KeyLastScore] != best {
		t.Errorf("keeper = %v, expected both keys = %d", keeper.values, best)
	}
}

func TestGameOverWithoutKeeper(t *testing.T) {
	g := newTestGame(3)
	g.Step(jumpFrame())
	g.ball.Pos.Y = -100
	if res := g.Step(core.NewInputFrame()); !res.State.GameOver {
		t.Error("game over should not need a keeper")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(5)
	g.Step(jumpFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("P should pause")
	}

	clock, ball, ticks := g.session.Clock, g.ball, g.tickCount
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.session.Clock != clock || g.ball != ball || g.tickCount != ticks {
		t.Error("paused game should not advance")
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Fatal("P should resume")
	}
	if g.tickCount != ticks+1 {
		t.Error("resumed game should advance")
	}
}

func TestFallenPlatformsAreRecycled(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(9)
	g.Step(jumpFrame())

	g.platforms[0].Pos.Y = -100
	g.platforms[0].Active = false // spent breakable
	g.Step(core.NewInputFrame())

	p := g.platforms[0]
	if p.Pos.Y < cfg.World.Height-100 {
		t.Errorf("platform y = %v, expected it above the screen", p.Pos.Y)
	}
	if !p.Active || !p.Collidable || p.Alpha != 1 {
		t.Errorf("recycled platform not restored: %+v", p)
	}
}

func TestPlatformsStayPutBeforeStart(t *testing.T) {
	g := newTestGame(9)
	g.platforms[0].Pos.Y = -100

	g.Step(core.NewInputFrame())
	if g.platforms[0].Pos.Y != -100 {
		t.Error("no recycling before the first touch")
	}
}

func TestFallingBallBouncesOnPlatform(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(11)
	g.Step(jumpFrame())

	// Drop the ball onto a lone normal platform well above the floor
	for i := range g.platforms {
		g.platforms[i].Pos.Y = 2000
	}
	p := &g.platforms[3]
	p.Pos = vec(195, 600)
	p.touching = false
	g.ball.Pos = vec(p.Pos.X, p.Pos.Y+p.Size.H/2+g.ball.Radius+1)
	g.ball.Vel = vec(0, -120)

	res := g.Step(core.NewInputFrame())

	if g.session.Contact != ContactBouncing {
		t.Fatalf("contact = %v, expected Bouncing", g.session.Contact)
	}
	if g.ball.Vel.Y <= 0 || g.ball.Vel.Y > cfg.Physics.MaxVelocityY {
		t.Errorf("vy = %v after bounce", g.ball.Vel.Y)
	}
	if !reflect.DeepEqual(res.Sounds, []string{SoundJump}) {
		t.Errorf("sounds = %v", res.Sounds)
	}
}

func TestRegisteredWithRegistry(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", GameID, err)
	}
	if g.ID() != GameID || g.Title() != "Juan Jump" {
		t.Errorf("got %q / %q", g.ID(), g.Title())
	}
	if _, ok := g.(registry.Persistent); !ok {
		t.Error("game should accept a score keeper")
	}
}

func TestSnapshotTextures(t *testing.T) {
	g := newTestGame(2)
	g.platforms[1].Category = CategoryPowerUp
	g.platforms[2].Category = CategoryMoving
	g.platforms[2].Facing = FacingRight

	f := g.Snapshot()
	if len(f.Platforms) != len(g.platforms) {
		t.Fatalf("sprites = %d, expected %d", len(f.Platforms), len(g.platforms))
	}
	if f.Platforms[1].TextureID != "tweet" {
		t.Errorf("power-up texture = %q", f.Platforms[1].TextureID)
	}
	if f.Platforms[2].TextureID != "strapOfDollarsRight" {
		t.Errorf("moving texture = %q", f.Platforms[2].TextureID)
	}
	if !strings.HasPrefix(f.Platforms[0].TextureID, "dollar") {
		t.Errorf("normal texture = %q", f.Platforms[0].TextureID)
	}
	if f.Score != "Score: 0" || f.Started {
		t.Errorf("fresh frame = %+v", f)
	}
}

func TestRender(t *testing.T) {
	sizes := [][2]int{{0, 0}, {1, 1}, {10, 5}, {80, 24}, {200, 60}}

	for _, size := range sizes {
		g := newTestGame(4)
		scr := core.NewScreen(size[0], size[1])
		g.Render(scr)

		g.Step(jumpFrame())
		for i := 0; i < 30; i++ {
			g.Step(core.NewInputFrame())
		}
		g.Render(scr)
	}

	g := newTestGame(4)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "JUAN JUMP") {
		t.Error("title screen should show the game name")
	}
	if !strings.ContainsRune(scr.String(), BallChar) {
		t.Error("ball should be drawn")
	}

	g.Step(jumpFrame())
	g.ball.Pos.Y = -100
	g.Step(core.NewInputFrame())
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over message should be drawn")
	}
}

func TestSuperJumpClearsAfterExactDuration(t *testing.T) {
	tests := []struct {
		rate      int
		wantTicks int
	}{
		{60, 150},
		{30, 75},
		{20, 50},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dHz", tt.rate), func(t *testing.T) {
			g := NewWithConfig(testConfig())
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tt.rate, Seed: 9})
			g.Step(jumpFrame())

			g.ball.Vel.Y = -100
			powerUp := Platform{Category: CategoryPowerUp, Active: true, Collidable: true, Alpha: 1}
			if got := g.contacts.Resolve(&g.session, &g.ball, &powerUp); got != ContactSuperJumping {
				t.Fatalf("Resolve = %v, want SuperJumping", got)
			}

			ticks := 0
			for g.session.SuperJump.Active && ticks < 1000 {
				g.Step(core.NewInputFrame())
				ticks++
			}
			if ticks != tt.wantTicks {
				t.Errorf("super jump cleared after %d ticks, want %d (clock %v)", ticks, tt.wantTicks, g.session.Clock)
			}
			if g.session.Ended {
				t.Error("session ended before the super jump expired")
			}
		})
	}
}

func TestSessionTickDoesNotDrift(t *testing.T) {
	var s Session
	for i := 0; i < 150; i++ {
		s.Tick(60)
	}
	if s.Clock != 2500*time.Millisecond {
		t.Errorf("Clock after 150 ticks at 60 Hz = %v, want 2.5s", s.Clock)
	}

	s.Ended = true
	s.Tick(60)
	if s.Ticks != 150 {
		t.Errorf("ended session ticked to %d", s.Ticks)
	}
}

func TestRenderFloorSpansPlayField(t *testing.T) {
	g := newTestGame(4)
	for i := range g.platforms {
		g.platforms[i].Pos.Y = 2000
	}
	g.ball.Pos.Y = 400
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	v := newViewport(g.cfg.World.Width, g.cfg.World.Height, 80, 24)
	_, fy := v.cell(g.floor.Pos)
	for x := v.left; x < v.left+v.cols; x++ {
		if cell := scr.GetCell(x, fy); cell.Rune != FloorChar || cell.Color != core.ColorDarkGreen {
			t.Fatalf("floor cell (%d, %d) = %+v", x, fy, cell)
		}
	}
	if scr.GetCell(v.left-1, fy).Rune == FloorChar || scr.GetCell(v.left+v.cols, fy).Rune == FloorChar {
		t.Error("floor should stop at the side walls")
	}
}
