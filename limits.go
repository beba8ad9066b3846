package pagecursor

const (
	DefaultPageSize    = 10
	MaxPageSize        = 100
	DefaultButtonCount = 5
	DefaultConcurrency = 4
)

// IsNormalizedPageSizeMax reports the page size to use and whether the input
// was already acceptable.
func IsNormalizedPageSizeMax(size int, maxSize int) (int, bool) {
	if size <= 0 {
		return DefaultPageSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func NormalizePageSizeMax(size int, maxSize int) int {
	ret, _ := IsNormalizedPageSizeMax(size, maxSize)
	return ret
}

func NormalizePageSize(size int) int {
	return NormalizePageSizeMax(size, MaxPageSize)
}

// NormalizeButtonCount makes the button count odd so the window can be
// symmetric around the current page. The second value is true when the count
// had to be bumped.
func NormalizeButtonCount(buttonCount int) (int, bool) {
	if buttonCount%2 == 0 {
		return buttonCount + 1, true
	}

	return buttonCount, false
}
