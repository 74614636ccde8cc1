package core

// Vessel is a single ship: a straight run of cells starting at Origin.
// It is passive data; hit-point bookkeeping belongs to the Board holding it.
type Vessel struct {
	Origin      Coord
	Length      int
	Orientation Orientation

	hitPoints int
	cells     []Coord // lazily derived from the fields above
}

// NewVessel creates an undamaged vessel.
func NewVessel(origin Coord, length int, o Orientation) *Vessel {
	return &Vessel{
		Origin:      origin,
		Length:      length,
		Orientation: o,
		hitPoints:   length,
	}
}

// Cells returns the ordered cells the vessel occupies.
// The slice is cached; callers must not modify it.
func (v *Vessel) Cells() []Coord {
	if v.cells == nil {
		drow, dcol := v.Orientation.Delta()
		v.cells = make([]Coord, v.Length)
		for i := range v.Length {
			v.cells[i] = v.Origin.Add(i*drow, i*dcol)
		}
	}
	return v.cells
}

// IsHitBy reports whether target is one of the vessel's cells.
func (v *Vessel) IsHitBy(target Coord) bool {
	for _, c := range v.Cells() {
		if c == target {
			return true
		}
	}
	return false
}

// HitPoints returns the number of undamaged cells left.
func (v *Vessel) HitPoints() int {
	return v.hitPoints
}

// Alive reports whether the vessel is still afloat.
func (v *Vessel) Alive() bool {
	return v.hitPoints > 0
}

// damage removes one hit point. Only the Board calls this, once per distinct cell.
func (v *Vessel) damage() {
	if v.hitPoints > 0 {
		v.hitPoints--
	}
}
