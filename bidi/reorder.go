package bidi

// A LevelRun is a maximal range [Start, End) of characters sharing one
// embedding level.
type LevelRun struct {
	Level      Level
	Start, End int
}

// LevelRuns splits a sequence of levels into runs of equal level, in logical order.
func LevelRuns(levels []Level) []LevelRun {
	var runs []LevelRun
	for i := 0; i < len(levels); {
		j := i + 1
		for j < len(levels) && levels[j] == levels[i] {
			j++
		}
		runs = append(runs, LevelRun{Level: levels[i], Start: i, End: j})
		i = j
	}
	return runs
}

// VisualOrder applies rule L2 to a line of resolved levels. It returns a
// permutation of logical positions: the i-th entry is the logical index of
// the character to be displayed at visual position i.
//
// Rule L1 (resetting trailing whitespace) is left to the client, as it
// depends on line breaking.
func VisualOrder(levels []Level) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	if len(levels) == 0 {
		return order
	}
	lowestOdd, highest := Level(255), Level(0)
	for _, l := range levels {
		if l > highest {
			highest = l
		}
		if l.IsRTL() && l < lowestOdd {
			lowestOdd = l
		}
	}
	// From the highest level down to the lowest odd level, reverse every
	// contiguous sequence at that level or higher.
	for lvl := highest; lvl >= lowestOdd && lvl > 0; lvl-- {
		for i := 0; i < len(levels); {
			if levels[order[i]] < lvl {
				i++
				continue
			}
			j := i + 1
			for j < len(levels) && levels[order[j]] >= lvl {
				j++
			}
			reverse(order, i, j)
			i = j
		}
	}
	return order
}

// reverse ordering of [i,j)
func reverse(order []int, i, j int) {
	for j--; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
}
