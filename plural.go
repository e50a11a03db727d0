package localize

import (
	"strconv"
	"strings"
)

// selectVariant picks the plural variant key for base within submap given a
// numeric value. Variant leaf keys have the form "base-<threshold>" where
// the threshold is a non-negative decimal meaning "applies when the value is
// at least this much"; the variant with the largest threshold not exceeding n
// wins. When no threshold qualifies, the empty-suffix variant "base-" is
// selected; well-formed resources define it as the catch-all. Keys with
// malformed suffixes are skipped. If a resource somehow defines several
// variants with equal thresholds, the winner follows map iteration order and
// is implementation-defined.
func selectVariant(submap Node, base string, n int) string {
	best := -1
	for key, value := range submap {
		if _, isLeaf := value.(Leaf); !isLeaf {
			continue
		}
		suffix, ok := strings.CutPrefix(key, base+"-")
		if !ok || suffix == "" {
			continue
		}
		threshold, err := strconv.Atoi(suffix)
		if err != nil || threshold < 0 {
			continue
		}
		if threshold <= n && threshold > best {
			best = threshold
		}
	}
	if best < 0 {
		return base + "-"
	}
	return base + "-" + strconv.Itoa(best)
}

// placeholderName returns the name of the first {name} placeholder in the
// template, or the empty string when the template has none.
func placeholderName(template string) string {
	start := strings.IndexByte(template, '{')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(template[start+1:], '}')
	if end < 0 {
		return ""
	}
	return template[start+1 : start+1+end]
}
