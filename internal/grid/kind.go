package grid

// Kind is the display/traversal tag of a cell. Wall blocks traversal;
// the remaining kinds are presentation states over an otherwise empty cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindStart
	KindEnd
	KindVisited
	KindPath
	KindFrontier
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindVisited:
		return "visited"
	case KindPath:
		return "path"
	case KindFrontier:
		return "frontier"
	default:
		return "unknown"
	}
}

// Walkable reports whether a cell of this kind can be traversed.
func (k Kind) Walkable() bool {
	return k != KindWall
}

// transient reports whether the kind is per-run display state that a fresh
// visualization must clear.
func (k Kind) transient() bool {
	return k == KindVisited || k == KindPath || k == KindFrontier
}
