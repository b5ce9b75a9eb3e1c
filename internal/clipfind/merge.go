package clipfind

import "sort"

// mergeCandidates resolves a file's candidates into the minimal sorted,
// non-overlapping clip list. Candidates are ordered by start, then end,
// then lowest contributing cue index, so the sweep is deterministic even
// when matching discovered them out of sequence. Touching intervals
// (next.start == running.end) merge into one clip.
func mergeCandidates(candidates []candidate) []Clip {
	clips := make([]Clip, 0, len(candidates))
	if len(candidates) == 0 {
		return clips
	}

	sorted := make([]candidate, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].start != sorted[j].start {
			return sorted[i].start < sorted[j].start
		}
		if sorted[i].end != sorted[j].end {
			return sorted[i].end < sorted[j].end
		}
		return minCue(sorted[i].cues) < minCue(sorted[j].cues)
	})

	running := candidate{
		start: sorted[0].start,
		end:   sorted[0].end,
		cues:  append([]int(nil), sorted[0].cues...),
	}
	for _, next := range sorted[1:] {
		if next.start <= running.end {
			if next.end > running.end {
				running.end = next.end
			}
			running.cues = append(running.cues, next.cues...)
			continue
		}
		clips = append(clips, finishClip(running))
		running = candidate{start: next.start, end: next.end, cues: append([]int(nil), next.cues...)}
	}
	return append(clips, finishClip(running))
}

func finishClip(c candidate) Clip {
	return Clip{
		Start: Seconds(c.start),
		End:   Seconds(c.end),
		Cues:  sortedUnique(c.cues),
	}
}

func sortedUnique(values []int) []int {
	if len(values) == 0 {
		return []int{}
	}
	out := append([]int(nil), values...)
	sort.Ints(out)
	dst := out[:1]
	for _, v := range out[1:] {
		if v != dst[len(dst)-1] {
			dst = append(dst, v)
		}
	}
	return dst
}

func minCue(values []int) int {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
