package naming

// CollisionKey identifies the sheets whose outputs land on the same paths.
// Output paths depend only on the sheet directory and the item identifier,
// so "knight_007.png" and "knight-007.png" in one directory share a key.
func CollisionKey(s Sheet) string {
	return s.Dir + "\x00" + s.ItemID
}

// GroupCollisions partitions sheets by CollisionKey. Groups are ordered by
// their first member and members keep their input order, so a caller that
// handles each group sequentially lets the earliest sheet that writes a
// frame own that output, and every later sheet finds it on disk.
func GroupCollisions(sheets []Sheet) [][]Sheet {
	index := make(map[string]int, len(sheets))
	var groups [][]Sheet
	for _, s := range sheets {
		key := CollisionKey(s)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], s)
	}
	return groups
}
