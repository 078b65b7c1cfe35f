// Package batch implements the batch import and export pipelines:
// natural-sort sequencing, frame-index derivation, per-item decode with
// soft failure, paired JSON/text export, and directory watching.
package batch

import (
	"sort"
	"strconv"
	"strings"
)

// naturalToken is one element of a natural-sort key: either an integer
// parsed from a digit run or a lowercased text run.
type naturalToken struct {
	num   int
	text  string
	isNum bool
}

// naturalKey splits s on maximal digit runs into an alternating token
// sequence. "item10b" becomes ["item", 10, "b"].
func naturalKey(s string) []naturalToken {
	var tokens []naturalToken
	start := 0
	digits := false
	flush := func(end int) {
		if end == start {
			return
		}
		run := s[start:end]
		if digits {
			// Digit runs long enough to overflow int fall back to
			// text comparison, which still orders them consistently.
			if n, err := strconv.Atoi(run); err == nil {
				tokens = append(tokens, naturalToken{num: n, isNum: true})
				return
			}
		}
		tokens = append(tokens, naturalToken{text: strings.ToLower(run)})
	}
	for i := 0; i < len(s); i++ {
		d := s[i] >= '0' && s[i] <= '9'
		if d != digits {
			flush(i)
			start = i
			digits = d
		}
	}
	flush(len(s))
	return tokens
}

// naturalLess orders two names by their natural keys, so "item2" sorts
// before "item10". Numeric tokens order before text tokens, which keeps
// digit-leading names ahead of letter-leading ones.
func naturalLess(a, b string) bool {
	ta, tb := naturalKey(a), naturalKey(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		x, y := ta[i], tb[i]
		switch {
		case x.isNum && y.isNum:
			if x.num != y.num {
				return x.num < y.num
			}
		case !x.isNum && !y.isNum:
			if x.text != y.text {
				return x.text < y.text
			}
		default:
			return x.isNum
		}
	}
	return len(ta) < len(tb)
}

// sortNatural sorts names in place into natural order.
func sortNatural(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

// FrameIndex extracts the digit run immediately preceding suffix at the
// end of name, e.g. ("scene_007.json", ".json") yields 7. The second
// result is false when name does not end in suffix, no digits precede
// it, or the run overflows int; callers fall back to batch position.
func FrameIndex(name, suffix string) (int, bool) {
	if suffix == "" || !strings.HasSuffix(name, suffix) {
		return 0, false
	}
	end := len(name) - len(suffix)
	start := end
	for start > 0 && name[start-1] >= '0' && name[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}
	n, err := strconv.Atoi(name[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
