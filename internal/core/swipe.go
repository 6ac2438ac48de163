package core

// DefaultSwipeThreshold is the minimum displacement (in cells) a drag must
// cover before it is treated as a swipe. Shorter drags are ignored so that
// clicks and jitter do not trigger moves.
const DefaultSwipeThreshold = 3

// ResolveSwipe translates a drag vector into a directional action.
// The dominant axis and its sign select the direction; vectors whose
// dominant component is below threshold resolve to ActionNone.
// A threshold <= 0 falls back to DefaultSwipeThreshold.
func ResolveSwipe(startX, startY, endX, endY, threshold int) Action {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}

	dx := endX - startX
	dy := endY - startY

	if Abs(dx) >= Abs(dy) {
		if Abs(dx) < threshold {
			return ActionNone
		}
		if dx > 0 {
			return ActionRight
		}
		return ActionLeft
	}

	if Abs(dy) < threshold {
		return ActionNone
	}
	if dy > 0 {
		return ActionDown
	}
	return ActionUp
}
