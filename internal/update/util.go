package update

import "github.com/atotto/clipboard"

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
