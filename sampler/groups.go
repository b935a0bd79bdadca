package sampler

// groupBy builds the label -> item indices mapping every balanced sampler
// starts from. A single forward scan keeps each group's indices in item
// order, and keys come back in first-seen order so repeated scans of the
// same collection agree on tie order. The result is treated as immutable;
// traversals copy the groups they consume.
func groupBy(n int, label func(i int) int) (map[int][]int, []int) {
	groups := make(map[int][]int)
	keys := make([]int, 0)
	for i := 0; i < n; i++ {
		l := label(i)
		if _, ok := groups[l]; !ok {
			keys = append(keys, l)
		}
		groups[l] = append(groups[l], i)
	}
	return groups, keys
}
