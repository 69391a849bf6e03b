package breakout

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Events is a set of game-semantic transitions that happened in one tick.
type Events uint8

const (
	EventBrickHit     Events = 1 << iota // A brick was destroyed
	EventLifeLost                        // Ball fell off, a life was used
	EventLevelCleared                    // Last brick gone, next level started
	EventGameOver                        // Ball fell off with no lives left; full reset
)

// Has reports whether e contains every event in other.
func (e Events) Has(other Events) bool {
	return e&other == other && other != 0
}

// String lists the events, e.g. "BrickHit|LevelCleared".
func (e Events) String() string {
	names := []struct {
		ev   Events
		name string
	}{
		{EventBrickHit, "BrickHit"},
		{EventLifeLost, "LifeLost"},
		{EventLevelCleared, "LevelCleared"},
		{EventGameOver, "GameOver"},
	}

	var parts []string
	for _, n := range names {
		if e.Has(n.ev) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}

// MarshalYAML renders the event set by name.
func (e Events) MarshalYAML() (any, error) {
	return e.String(), nil
}

// BrickView is the render view of one brick.
type BrickView struct {
	Rect  core.Rect  `yaml:"rect"`
	Color core.Color `yaml:"color"`
	Alive bool       `yaml:"alive"`
}

// Frame is the immutable per-tick snapshot handed to renderers.
type Frame struct {
	Tick   uint64      `yaml:"tick"`
	Level  int         `yaml:"level"`
	Score  int         `yaml:"score"`
	Lives  int         `yaml:"lives"`
	Paddle core.Rect   `yaml:"paddle"`
	Ball   core.Circle `yaml:"ball"`
	Bricks []BrickView `yaml:"bricks"`
	Events Events      `yaml:"events"`
}

// LiveBricks returns only the bricks still standing.
func (f Frame) LiveBricks() []BrickView {
	live := make([]BrickView, 0, len(f.Bricks))
	for _, b := range f.Bricks {
		if b.Alive {
			live = append(live, b)
		}
	}
	return live
}

func (g *Game) frame(events Events) Frame {
	bricks := make([]BrickView, 0, g.bricks.Len())
	for _, b := range g.bricks.bricks {
		bricks = append(bricks, BrickView{Rect: b.Rect, Color: b.Color, Alive: b.Alive})
	}

	return Frame{
		Tick:   g.tick,
		Level:  g.level,
		Score:  g.score,
		Lives:  g.lives,
		Paddle: g.paddle.Rect(),
		Ball:   g.ball.Circle(),
		Bricks: bricks,
		Events: events,
	}
}

// State is the complete simulation state in primitive form, used for
// determinism checks and the headless summary.
type State struct {
	Tick    uint64  `yaml:"tick"`
	Lives   int     `yaml:"lives"`
	Score   int     `yaml:"score"`
	Level   int     `yaml:"level"`
	PaddleX float64 `yaml:"paddle_x"`
	BallX   float64 `yaml:"ball_x"`
	BallY   float64 `yaml:"ball_y"`
	BallDX  float64 `yaml:"ball_dx"`
	BallDY  float64 `yaml:"ball_dy"`

	BricksAlive int `yaml:"bricks_alive"`

	// Per brick in row-major order: alive flag and color
	BrickAlive  []bool   `yaml:"-"`
	BrickColors []string `yaml:"-"`
}

// State returns the current simulation state.
func (g *Game) State() State {
	n := g.bricks.Len()
	s := State{
		Tick:        g.tick,
		Lives:       g.lives,
		Score:       g.score,
		Level:       g.level,
		PaddleX:     g.paddle.X,
		BallX:       g.ball.X,
		BallY:       g.ball.Y,
		BallDX:      g.ball.DX,
		BallDY:      g.ball.DY,
		BricksAlive: g.bricks.Alive(),
		BrickAlive:  make([]bool, n),
		BrickColors: make([]string, n),
	}
	for i, b := range g.bricks.Bricks() {
		s.BrickAlive[i] = b.Alive
		s.BrickColors[i] = string(b.Color)
	}
	return s
}

// Hash digests the state with xxhash. Equal states hash equally.
func (s *State) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putI := func(v int) { putU(uint64(v)) } //#nosec G115 -- hash computation

	putU(s.Tick)
	putI(s.Lives)
	putI(s.Score)
	putI(s.Level)
	putF(s.PaddleX)
	putF(s.BallX)
	putF(s.BallY)
	putF(s.BallDX)
	putF(s.BallDY)

	for i, alive := range s.BrickAlive {
		if alive {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.WriteString(s.BrickColors[i])
	}

	return d.Sum64()
}
