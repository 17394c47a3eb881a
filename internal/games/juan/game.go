// Package juan implements Juan Jump, a tilt-steered bouncing-ball climber.
// The ball bounces across procedurally recycled platforms while the world
// scrolls down beneath it; the game ends when the ball falls off the bottom.
package juan

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/juan-jump/internal/config"
	"github.com/vovakirdan/juan-jump/internal/core"
	"github.com/vovakirdan/juan-jump/internal/registry"
)

// GameID is the registry identifier.
const GameID = "juan"

// Game implements the Juan Jump game logic.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.JuanConfig
	fixedCfg  *config.JuanConfig // set by NewWithConfig; skips file loading
	rng       *rand.Rand
	ball      Ball
	floor     Platform
	platforms []Platform
	recycler  *Recycler
	scroll    ScrollEngine
	contacts  ContactResolver
	session   Session
	keeper    registry.ScoreKeeper
	paused    bool
	tickCount int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		log.Warn("unknown difficulty, using normal", "preset", preset)
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// New creates a new game instance that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.JuanConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Juan Jump"
}

// SetScoreKeeper attaches the persistence collaborator used at game over.
func (g *Game) SetScoreKeeper(k registry.ScoreKeeper) {
	g.keeper = k
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.recycler = NewRecycler(g.rng, g.cfg)
	g.scroll = NewScrollEngine(g.cfg.Scroll, g.cfg.World.Height)
	g.contacts = NewContactResolver(g.cfg.Contact, g.cfg.World.Height)
	g.session = Session{}
	g.paused = false
	g.tickCount = 0

	g.spawnBall()
	g.addFloor()
	g.makePlatforms()
}

// loadConfig resolves the config for a new session.
func (g *Game) loadConfig() config.JuanConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.LoadJuan(configPath)
	if err != nil {
		log.Warn("falling back to default config", "error", err)
		cfg = config.DefaultJuanConfig()
	}
	if difficultyPreset != "" {
		config.ApplyJuanPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// spawnBall places the ball at the bottom center, at rest.
func (g *Game) spawnBall() {
	r := g.cfg.Ball.Radius
	g.ball = Ball{
		Pos:    core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.Ball.SpawnOffset + r},
		Radius: r,
	}
}

// addFloor creates the floor the ball starts on. It bounces like a normal
// platform and scrolls with the world, but is never recycled.
func (g *Game) addFloor() {
	h := g.cfg.Platforms.FloorHeight
	g.floor = Platform{
		Pos:        core.Vec2{X: g.cfg.World.Width / 2, Y: h / 2},
		Size:       config.Size{W: g.cfg.World.Width, H: h},
		Category:   CategoryNormal,
		Active:     true,
		Collidable: true,
		Alpha:      1,
	}
}

// makePlatforms fills the pool with normal platforms, one per horizontal band.
func (g *Game) makePlatforms() {
	count := max(g.cfg.Platforms.Count, 1)
	spacing := g.cfg.World.Height / float64(count)
	pad := g.cfg.Platforms.BandPadding
	size := SizeFor(CategoryNormal, g.cfg.Platforms)

	g.platforms = make([]Platform, count)
	for i := range g.platforms {
		lo := float64(i)*spacing + pad
		hi := float64(i+1)*spacing - pad
		y := (lo + hi) / 2
		if hi > lo {
			y = lo + g.rng.Float64()*(hi-lo)
		}
		x := g.rng.Float64() * g.cfg.World.Width
		g.platforms[i] = Platform{
			Pos:        core.Vec2{X: x, Y: y},
			Size:       size,
			Category:   CategoryNormal,
			Facing:     facingAt(x, g.cfg.World.Width),
			Active:     true,
			Collidable: true,
			Alpha:      1,
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Ended {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := 1.0 / float64(g.runtime.TickRate)
	g.session.Tick(g.runtime.TickRate)

	if !g.session.Started && in.Has(core.ActionJump) {
		g.start()
	}

	steer := Steering(in.TiltSample(), g.cfg.Physics)
	g.ball.Rotation = -steer / 5
	gravity := Gravity(steer, g.session.Started, g.session.SuperJump.Active, g.cfg.Physics)
	Integrate(&g.ball, gravity, dt, g.cfg.Physics)
	g.resolveContacts()

	for i := range g.platforms {
		g.platforms[i].animate(dt, g.cfg.World.Width, g.cfg.Platforms.MovingPeriod, g.cfg.Contact.BreakFade)
	}

	if g.session.Started {
		delta := g.scroll.Step(g.ball.Pos.Y, g.ball.Vel.Y, &g.session.SuperJump)
		Apply(delta, g.platforms, &g.floor)
		g.recycleFallen()

		g.session.Score.Update(g.ball.Pos.Y, g.ball.Radius, g.floor.Pos.Y, g.floor.Size.H)
	}

	g.ball.Wrap(g.cfg.World.Width)

	if g.ball.FellOff() {
		g.end()
	}

	return core.StepResult{State: g.State(), Sounds: g.session.drainSounds()}
}

// start handles the first touch: the ball is launched and gravity switches on.
func (g *Game) start() {
	g.session.Started = true
	g.ball.Vel.Y = g.contacts.BounceVelocity(g.ball.Pos.Y)
	g.session.emit(SoundJump)
}

// resolveContacts dispatches every contact that began this tick.
func (g *Game) resolveContacts() {
	if beginContact(&g.ball, &g.floor) && g.session.Started {
		g.contacts.Resolve(&g.session, &g.ball, &g.floor)
	}
	for i := range g.platforms {
		p := &g.platforms[i]
		if beginContact(&g.ball, p) && g.session.Started {
			g.contacts.Resolve(&g.session, &g.ball, p)
		}
	}
}

// recycleFallen respawns every platform that dropped below the screen.
func (g *Game) recycleFallen() {
	for i := range g.platforms {
		if g.platforms[i].BelowScreen() {
			g.recycler.Recycle(&g.platforms[i])
		}
	}
}

// end finishes the session and hands the best score to persistence.
func (g *Game) end() {
	g.session.Ended = true
	g.session.SuperJump.Reset()
	g.session.emit(SoundGameOver)

	if g.keeper == nil {
		return
	}
	best := g.session.Score.Best()
	if err := g.keeper.Store(KeyLastScore, best); err != nil {
		log.Warn("could not store last score", "error", err)
	}
	if _, err := g.keeper.StoreIfGreater(KeyHighScore, best); err != nil {
		log.Warn("could not store high score", "error", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score.Best(),
		GameOver: g.session.Ended,
		Paused:   g.paused,
		Started:  g.session.Started,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

var _ registry.Persistent = (*Game)(nil)
