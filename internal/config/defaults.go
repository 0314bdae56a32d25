package config

// cell is the edge length of one frame on the standard character sheet.
const cell = 64

// DefaultAnimations returns the default extraction order.
func DefaultAnimations() []string {
	return []string{"Idle", "Slash", "Thrust", "Walk", "Shoot", "Cast"}
}

// DefaultAnimationsData returns the default rectangle for every default
// animation. Each row band is four frames tall (one per facing direction).
// Idle is the first column of the Walk band.
func DefaultAnimationsData() map[string]Region {
	return map[string]Region{
		"Cast":   {Left: 0, Top: 0, Width: cell * 7, Height: cell * 4},
		"Thrust": {Left: 0, Top: cell * 4, Width: cell * 8, Height: cell * 4},
		"Walk":   {Left: 0, Top: cell * 8, Width: cell * 9, Height: cell * 4},
		"Idle":   {Left: 0, Top: cell * 8, Width: cell * 1, Height: cell * 4},
		"Slash":  {Left: 0, Top: cell * 12, Width: cell * 6, Height: cell * 4},
		"Shoot":  {Left: 0, Top: cell * 16, Width: cell * 13, Height: cell * 4},
	}
}
