package schema

// CollisionKind says why a column name appears more than once in an output header.
type CollisionKind string

const (
	// CollisionComputed: an input column already carries a computed name
	// column's name. Both columns are kept; nothing is merged.
	CollisionComputed CollisionKind = "computed_exists"
	// CollisionDuplicate: the input header itself repeats a name. The first
	// occurrence is the canonical one for membership checks.
	CollisionDuplicate CollisionKind = "duplicate_input"
)

// Collision is one repeated column name in an output header.
type Collision struct {
	Column    string        `json:"column"`
	Kind      CollisionKind `json:"kind"`
	Positions []int         `json:"positions"` // 0-based, ascending
}

// DetectCollisions lists every name that occurs more than once in header,
// in order of first occurrence.
func DetectCollisions(header []string, computed ColumnSet) []Collision {
	positions := make(map[string][]int, len(header))
	var order []string
	for i, h := range header {
		if _, seen := positions[h]; !seen {
			order = append(order, h)
		}
		positions[h] = append(positions[h], i)
	}

	var collisions []Collision
	for _, h := range order {
		if len(positions[h]) < 2 {
			continue
		}
		kind := CollisionDuplicate
		if computed.Contains(h) {
			kind = CollisionComputed
		}
		collisions = append(collisions, Collision{
			Column:    h,
			Kind:      kind,
			Positions: positions[h],
		})
	}
	return collisions
}
