package sections

import "sort"

// Section is a contiguous time range, in whole seconds, where the scanned
// file shows content also present in the other file. Start never exceeds End.
type Section struct {
	Start uint64
	End   uint64
}

// Cluster collapses an ordered match list into sections. Pairs whose queried
// indices sit closer than maxGapSeconds*fps land in the same run; each run
// spans from its first to its last index, converted to seconds by integer
// division. Runs lasting minDurationSeconds or less are discarded. The
// returned sections are non-overlapping and ascend by start time.
func Cluster(pairs []MatchedPair, fps, maxGapSeconds, minDurationSeconds int) []Section {
	if len(pairs) == 0 || fps <= 0 {
		return nil
	}

	// The matcher already emits pairs in queried order; re-sort defensively
	// since run splitting silently misbehaves on unordered input.
	ordered := make([]MatchedPair, len(pairs))
	copy(ordered, pairs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Queried.Index < ordered[j].Queried.Index
	})

	maxGap := uint64(maxGapSeconds) * uint64(fps)

	var result []Section
	runStart := ordered[0].Queried.Index
	runEnd := ordered[0].Queried.Index
	flush := func() {
		start := runStart / uint64(fps)
		end := runEnd / uint64(fps)
		if end-start > uint64(minDurationSeconds) {
			result = append(result, Section{Start: start, End: end})
		}
	}
	for _, pair := range ordered[1:] {
		index := pair.Queried.Index
		if index-runEnd < maxGap {
			runEnd = index
			continue
		}
		flush()
		runStart = index
		runEnd = index
	}
	flush()
	return result
}
