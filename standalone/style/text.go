package style

// TruncateStart shortens s to at most max characters by dropping the
// beginning, keeping the tail behind a "..." marker. Paths truncate
// this way so the filename stays readable. Returns the display string
// and whether anything was cut.
func TruncateStart(s string, max int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	if max <= 3 {
		return string(runes[len(runes)-max:]), true
	}
	return "..." + string(runes[len(runes)-max+3:]), true
}
