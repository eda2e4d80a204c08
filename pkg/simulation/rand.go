package simulation

// Rand is the single source of randomness for anything tied to a race.
// The core tick never draws from it; cameras and effects do. Hosts doing
// rollback supply their own seeded implementation.
type Rand interface {
	Uint32() uint32
}

// SplitMix is a splitmix64 generator. Cheap, seedable, and identical on
// every platform.
type SplitMix struct {
	state uint64
}

// NewSplitMix seeds a generator.
func NewSplitMix(seed uint64) *SplitMix {
	return &SplitMix{state: seed}
}

// Uint32 returns the next draw.
func (s *SplitMix) Uint32() uint32 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return uint32(z >> 32)
}
