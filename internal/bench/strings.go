package bench

import (
	"fmt"
	"strconv"

	"profdemo/internal/profiler"
)

var (
	siteStringConcat profiler.Site
	siteAppendDigits profiler.Site
)

func init() {
	siteStringConcat = profiler.SiteFor(concatAll)
	siteAppendDigits = profiler.SiteFor(appendDigits)
}

// StringConcat builds a string by naive += concatenation over n
// iterations. Each append reallocates, so the total cost is quadratic.
// Deliberately avoids strings.Builder; the point is the reallocation.
func StringConcat(p *profiler.Profiler, n int64) (Value, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: iterations must be >= 0, got %d", ErrInvalidArgument, n)
	}
	return TextValue(concatAll(p, n)), nil
}

func concatAll(p *profiler.Profiler, n int64) string {
	defer p.Trace(siteStringConcat)()
	result := ""
	for i := int64(0); i < n; i++ {
		result = appendDigits(p, result, i)
	}
	return result
}

func appendDigits(p *profiler.Profiler, s string, i int64) string {
	defer p.Trace(siteAppendDigits)()
	return s + strconv.FormatInt(i, 10)
}
