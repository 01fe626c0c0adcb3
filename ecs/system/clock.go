package system

// TickSource supplies the fixed duration of one physics tick in seconds.
type TickSource interface {
	TickDuration() float64
}

// FixedTimestep is a TickSource running at TPS ticks per second.
type FixedTimestep struct {
	TPS int
}

func (f FixedTimestep) TickDuration() float64 {
	if f.TPS <= 0 {
		return 0
	}
	return 1 / float64(f.TPS)
}
