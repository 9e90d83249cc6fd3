package pooljson

import "strconv"

// Path walks a dotted/bracketed accessor path ("a.b[2].c") from v,
// layering At and AtIndex the way a caller would chain them by hand.
// Each segment is a member name, an optional trailing [index], or a
// bare [index] (for stepping directly into an array). The walk stops
// and returns the document's null sentinel as soon as any segment
// fails to resolve - mirroring At/AtIndex's own "missing means null"
// convention rather than returning an error.
func Path(v *Value, path string) *Value {
	cur := v
	for _, seg := range splitPath(path) {
		if cur == nil {
			return nil
		}
		name, indices := splitSegment(seg)
		if name != "" {
			cur = cur.At(name)
		}
		for _, idx := range indices {
			cur = cur.AtIndex(idx)
		}
	}
	return cur
}

func splitPath(path string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	segs = append(segs, path[start:])
	return segs
}

// splitSegment splits "name[0][1]" into ("name", [0, 1]), or "[0]" into
// ("", [0]).
func splitSegment(seg string) (name string, indices []int) {
	br := -1
	for i := 0; i < len(seg); i++ {
		if seg[i] == '[' {
			br = i
			break
		}
	}
	if br < 0 {
		return seg, nil
	}
	name = seg[:br]
	for br < len(seg) && seg[br] == '[' {
		end := br + 1
		for end < len(seg) && seg[end] != ']' {
			end++
		}
		if end >= len(seg) {
			break
		}
		if n, err := strconv.Atoi(seg[br+1 : end]); err == nil {
			indices = append(indices, n)
		}
		br = end + 1
	}
	return name, indices
}
