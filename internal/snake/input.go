package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// DirectionFor maps a directional action to a grid direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	default:
		return Direction{}, false
	}
}
