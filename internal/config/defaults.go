package config

import (
	_ "embed"
)

//go:embed defaults/juan.yaml
var defaultJuanYAML []byte

// DefaultJuanConfig returns the default Juan configuration.
// It mirrors defaults/juan.yaml and is used when the embedded file cannot be parsed.
func DefaultJuanConfig() JuanConfig {
	return JuanConfig{
		World: JuanWorld{
			Width:  390,
			Height: 844,
		},
		Ball: JuanBall{
			Radius:      15,
			SpawnOffset: 20,
		},
		Physics: JuanPhysics{
			Gravity:        9.8,
			PointsPerMeter: 150,
			TiltGain:       20,
			SuperJumpPull:  -0.1,
			MaxVelocityX:   1000,
			MaxVelocityY:   1200,
		},
		Scroll: JuanScroll{
			VelocityDivisor: 50,
			SuperJumpBase:   30,
			SuperJumpStep:   0.16,
		},
		Platforms: JuanPlatforms{
			Count:        10,
			Normal:       Size{W: 64, H: 18},
			Breakable:    Size{W: 64, H: 18},
			Moving:       Size{W: 96, H: 18},
			PowerUp:      Size{W: 36, H: 36},
			FloorHeight:  20,
			MovingPeriod: 2,
			BandPadding:  10,
		},
		Recycle: JuanRecycle{
			PowerUpOdds:   35,
			MovingOdds:    5,
			BreakableOdds: 5,
		},
		Contact: JuanContact{
			BounceFactor:      1.2,
			SuperJumpVelocity: 10,
			SuperJumpDuration: 2.5,
			BreakFade:         0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "juan":
		return defaultJuanYAML
	default:
		return nil
	}
}
