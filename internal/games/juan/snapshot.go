package juan

import (
	"github.com/vovakirdan/juan-jump/internal/config"
	"github.com/vovakirdan/juan-jump/internal/core"
)

// Sprite is what the rendering collaborator needs to draw one platform.
type Sprite struct {
	Pos       core.Vec2
	Size      config.Size
	TextureID string
	Visible   bool
	Alpha     float64
}

// BallSprite is the ball's render state.
type BallSprite struct {
	Pos      core.Vec2
	Radius   float64
	Rotation float64
}

// Frame is a complete render snapshot of one tick, in world coordinates.
type Frame struct {
	World       config.JuanWorld
	Platforms   []Sprite
	Floor       Sprite
	Ball        BallSprite
	Score       string
	ScoreRising bool
	SuperJump   bool
	Started     bool
	GameOver    bool
	Paused      bool
}

// Snapshot returns the current render state.
func (g *Game) Snapshot() Frame {
	f := Frame{
		World:     g.cfg.World,
		Platforms: make([]Sprite, 0, len(g.platforms)),
		Floor: Sprite{
			Pos:       g.floor.Pos,
			Size:      g.floor.Size,
			TextureID: "bottom",
			Visible:   true,
			Alpha:     1,
		},
		Ball: BallSprite{
			Pos:      g.ball.Pos,
			Radius:   g.ball.Radius,
			Rotation: g.ball.Rotation,
		},
		Score:       g.session.Score.Display(),
		ScoreRising: g.session.Score.Rising(),
		SuperJump:   g.session.SuperJump.Active,
		Started:     g.session.Started,
		GameOver:    g.session.Ended,
		Paused:      g.paused,
	}
	for i := range g.platforms {
		p := &g.platforms[i]
		f.Platforms = append(f.Platforms, Sprite{
			Pos:       p.Pos,
			Size:      p.Size,
			TextureID: TextureID(p.Category, p.Facing),
			Visible:   p.Visible(),
			Alpha:     p.Alpha,
		})
	}
	return f
}
