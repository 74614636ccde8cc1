package core

// BoardSnapshot captures one board's visible-to-owner state.
type BoardSnapshot struct {
	Size   int
	Sunk   int
	Afloat int
	Cells  [][]CellState // true state, row-major
}

// Snapshot captures the complete match state for determinism testing.
type Snapshot struct {
	Phase      Phase
	Turn       int
	Side       Side
	Winner     Side
	HumanShots int
	CPUShots   int
	Human      BoardSnapshot
	Automated  BoardSnapshot
}

// Snapshot returns the current match snapshot.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      m.phase,
		Turn:       m.turn,
		Side:       m.CurrentSide(),
		Winner:     m.winner,
		HumanShots: m.shots[SideHuman],
		CPUShots:   m.shots[SideAutomated],
	}
	if m.boards[SideHuman] != nil {
		snap.Human = snapshotBoard(m.boards[SideHuman])
	}
	if m.boards[SideAutomated] != nil {
		snap.Automated = snapshotBoard(m.boards[SideAutomated])
	}
	return snap
}

func snapshotBoard(b *Board) BoardSnapshot {
	cells := make([][]CellState, b.Size())
	for row := range b.Size() {
		cells[row] = make([]CellState, b.Size())
		for col := range b.Size() {
			cells[row][col] = b.Cell(C(row, col))
		}
	}
	return BoardSnapshot{
		Size:   b.Size(),
		Sunk:   b.SunkCount(),
		Afloat: b.Afloat(),
		Cells:  cells,
	}
}

// Equal returns true if two board snapshots match cell for cell.
func (s BoardSnapshot) Equal(other BoardSnapshot) bool {
	if s.Size != other.Size || s.Sunk != other.Sunk || s.Afloat != other.Afloat {
		return false
	}
	for row := range s.Cells {
		for col := range s.Cells[row] {
			if s.Cells[row][col] != other.Cells[row][col] {
				return false
			}
		}
	}
	return true
}
