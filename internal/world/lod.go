package world

// LODTable pairs ascending distance thresholds with grid resolutions,
// finest first. The last entry is the coarsest level and the catch-all.
type LODTable struct {
	Distances   []float64
	Resolutions []int
}

// Len returns the number of levels.
func (t LODTable) Len() int {
	return len(t.Resolutions)
}

// Coarsest returns the index of the last level.
func (t LODTable) Coarsest() int {
	return len(t.Resolutions) - 1
}

// Desired returns the smallest level whose threshold exceeds distance, or
// the coarsest level when none does.
func (t LODTable) Desired(distance float64) int {
	for i, d := range t.Distances {
		if i >= len(t.Resolutions) {
			break
		}
		if distance < d {
			return i
		}
	}
	return t.Coarsest()
}

// Resolution returns the cells per axis for lod.
func (t LODTable) Resolution(lod int) int {
	return t.Resolutions[lod]
}
