package core

// Rand is the random source used for mine placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// RelocationPolicy selects how a first-click mine is moved when the board
// has no free cell to receive it.
type RelocationPolicy uint8

const (
	// RelocateLiteral samples one candidate unconditionally on a saturated board,
	// then removes the clicked mine and adds one at the candidate. The candidate is
	// already mined, so the board loses a mine, unless it equals the clicked cell,
	// in which case the clicked cell stays mined.
	RelocateLiteral RelocationPolicy = iota
	// RelocateClear removes the clicked mine on a saturated board without placing
	// a replacement.
	RelocateClear
)

// String returns the config name of the policy.
func (p RelocationPolicy) String() string {
	switch p {
	case RelocateLiteral:
		return "literal"
	case RelocateClear:
		return "clear"
	default:
		return "unknown"
	}
}

// ParseRelocationPolicy maps a config name to a policy.
// Unknown names yield RelocateLiteral and false.
func ParseRelocationPolicy(s string) (RelocationPolicy, bool) {
	switch s {
	case "literal", "":
		return RelocateLiteral, true
	case "clear":
		return RelocateClear, true
	default:
		return RelocateLiteral, false
	}
}

// coordAt maps a row-major position back to a coordinate.
func (f *Field) coordAt(idx int) Coordinate {
	return At(idx/f.width, idx%f.width)
}

// sample draws a uniformly random coordinate on the board.
func (f *Field) sample(rng Rand) Coordinate {
	return f.coordAt(rng.Intn(f.height * f.width))
}

// place distributes the configured mines by rejection sampling.
func (f *Field) place(rng Rand) {
	for placed := 0; placed < f.mineCount; {
		if f.AddMine(f.sample(rng)) {
			placed++
		}
	}
}

// RelocateMine moves the mine at c to a random mine-free cell and returns the
// cell chosen as its destination. If c holds no mine nothing changes and c is
// returned. On a saturated board the outcome depends on policy; RelocateClear
// returns c after clearing it.
func (f *Field) RelocateMine(c Coordinate, rng Rand, policy RelocationPolicy) Coordinate {
	if !f.HasMine(c) {
		return c
	}

	if !f.Saturated() && f.CountMines() < f.height*f.width {
		var candidate Coordinate
		for {
			candidate = f.sample(rng)
			if candidate != c && !f.HasMine(candidate) {
				break
			}
		}
		f.RemoveMine(c)
		f.AddMine(candidate)
		return candidate
	}

	switch policy {
	case RelocateClear:
		f.RemoveMine(c)
		return c
	default:
		candidate := f.sample(rng)
		f.RemoveMine(c)
		f.AddMine(candidate)
		return candidate
	}
}
