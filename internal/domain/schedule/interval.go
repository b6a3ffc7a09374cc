package schedule

import "sort"

const MinutesPerDay = 1440

// MinuteInterval is a half-open [StartMin, EndMin) span of minutes within
// one local day. Intervals with EndMin <= StartMin are empty.
type MinuteInterval struct {
	StartMin int
	EndMin   int
}

func (iv MinuteInterval) IsEmpty() bool {
	return iv.EndMin <= iv.StartMin
}

func (iv MinuteInterval) Duration() int {
	if iv.IsEmpty() {
		return 0
	}
	return iv.EndMin - iv.StartMin
}

func clampToDay(iv MinuteInterval) (MinuteInterval, bool) {
	clamped := MinuteInterval{
		StartMin: max(0, min(MinutesPerDay, iv.StartMin)),
		EndMin:   max(0, min(MinutesPerDay, iv.EndMin)),
	}
	if clamped.IsEmpty() {
		return MinuteInterval{}, false
	}
	return clamped, true
}

// Normalize drops empty intervals, clips the rest to the day, sorts by
// start then end, and merges any intervals that touch or overlap. The
// result is sorted and pairwise-disjoint.
func Normalize(set []MinuteInterval) []MinuteInterval {
	cleaned := make([]MinuteInterval, 0, len(set))
	for _, iv := range set {
		if clamped, ok := clampToDay(iv); ok {
			cleaned = append(cleaned, clamped)
		}
	}

	sort.Slice(cleaned, func(i, j int) bool {
		if cleaned[i].StartMin != cleaned[j].StartMin {
			return cleaned[i].StartMin < cleaned[j].StartMin
		}
		return cleaned[i].EndMin < cleaned[j].EndMin
	})

	merged := make([]MinuteInterval, 0, len(cleaned))
	for _, cur := range cleaned {
		if len(merged) == 0 || cur.StartMin > merged[len(merged)-1].EndMin {
			merged = append(merged, cur)
			continue
		}
		last := &merged[len(merged)-1]
		last.EndMin = max(last.EndMin, cur.EndMin)
	}
	return merged
}

// Subtract removes every interval in blocks from base. Blocks are applied
// one at a time with re-normalization in between, so overlapping or
// unordered blocks are still handled correctly.
func Subtract(base, blocks []MinuteInterval) []MinuteInterval {
	cur := Normalize(base)
	for _, block := range Normalize(blocks) {
		cur = Normalize(subtractOne(cur, block))
	}
	return cur
}

func subtractOne(available []MinuteInterval, block MinuteInterval) []MinuteInterval {
	result := make([]MinuteInterval, 0, len(available)+1)
	for _, a := range available {
		// No overlap
		if block.EndMin <= a.StartMin || block.StartMin >= a.EndMin {
			result = append(result, a)
			continue
		}

		// Left remainder
		if block.StartMin > a.StartMin {
			result = append(result, MinuteInterval{
				StartMin: a.StartMin,
				EndMin:   min(block.StartMin, a.EndMin),
			})
		}

		// Right remainder
		if block.EndMin < a.EndMin {
			result = append(result, MinuteInterval{
				StartMin: max(block.EndMin, a.StartMin),
				EndMin:   a.EndMin,
			})
		}
	}
	return result
}
