package store

// DedupeStrings removes empty strings and duplicates while preserving the
// first-seen order. Readers use it to collapse multi-valued fields repeated
// across cartesian-product result rows.
func DedupeStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// CapStrings truncates a slice to at most n entries, preserving order.
func CapStrings(in []string, n int) []string {
	if n < 0 || len(in) <= n {
		return in
	}
	return in[:n]
}
