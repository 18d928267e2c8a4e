package graph

import "strconv"

// idAllocator hands out vertex ids unique within one graph. Ids encode a
// monotonically increasing counter in base 8 with each digit shifted into
// the letters 'A' through 'H', keeping tokens safe unquoted in the layout
// engine's grammar.
type idAllocator struct {
	counter uint64
}

func newIDAllocator() *idAllocator {
	return &idAllocator{counter: 1}
}

// next increments the counter and returns its encoded token.
func (a *idAllocator) next() string {
	a.counter++
	return encodeID(a.counter)
}

func encodeID(n uint64) string {
	digits := []byte(strconv.FormatUint(n, 8))
	for i := range digits {
		digits[i] += 'A' - '0'
	}
	return string(digits)
}
