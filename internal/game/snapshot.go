package game

// Snapshot captures the complete simulation state at one tick.
// Used for determinism tests and debugging dumps.
type Snapshot struct {
	Tick     uint64
	BallX    float64
	BallY    float64
	BoardX   float64
	CPUX     float64
	VX       float64
	VY       float64
	RX       float64
	DirX     Direction
	DirY     Direction
	Score    int
	Bump     int
	Win      bool
	WinTime  float64
	StreamHd int // Newest telemetry sample
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	head := 0
	if g.stream.Len() > 0 {
		head = g.stream.Values()[0]
	}
	return Snapshot{
		Tick:     g.tickCount,
		BallX:    g.ball.X,
		BallY:    g.ball.Y,
		BoardX:   g.board.X,
		CPUX:     g.cpu.X,
		VX:       g.vx,
		VY:       g.vy,
		RX:       g.rx,
		DirX:     g.dirX,
		DirY:     g.dirY,
		Score:    g.score,
		Bump:     g.bump,
		Win:      g.win,
		WinTime:  g.winTime,
		StreamHd: head,
	}
}
