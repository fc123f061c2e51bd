package profiler

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"
)

// CallRecord holds the statistics for one call site.
//
// Exclusive accumulates time spent in the site's own body on every
// invocation. Inclusive accumulates wall time of outermost invocations
// only, so recursive sites do not multiply-count the same interval.
// For every record Inclusive >= Exclusive and Count >= 1.
type CallRecord struct {
	Site      Site
	Count     int64
	Exclusive time.Duration
	Inclusive time.Duration
}

// PerCallExclusive is Exclusive divided by Count.
func (r CallRecord) PerCallExclusive() time.Duration {
	if r.Count == 0 {
		return 0
	}
	return r.Exclusive / time.Duration(r.Count)
}

// PerCallInclusive is Inclusive divided by Count.
func (r CallRecord) PerCallInclusive() time.Duration {
	if r.Count == 0 {
		return 0
	}
	return r.Inclusive / time.Duration(r.Count)
}

// Snapshot is the immutable outcome of one instrumented run. Records
// keep insertion order (first call wins).
type Snapshot struct {
	Records []CallRecord
	Total   time.Duration
}

// TotalCalls sums invocation counts across all records.
func (s *Snapshot) TotalCalls() int64 {
	var n int64
	for _, r := range s.Records {
		n += r.Count
	}
	return n
}

// SortKey selects the ordering for SortBy.
type SortKey int

const (
	ByCumulative SortKey = iota
	ByExclusive
	ByCalls
)

// SortBy returns a copy of the records ordered by key, descending.
// The sort is stable, so ties keep insertion order and the result is
// deterministic for identical statistics.
func (s *Snapshot) SortBy(key SortKey) []CallRecord {
	out := make([]CallRecord, len(s.Records))
	copy(out, s.Records)
	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case ByExclusive:
			return out[i].Exclusive > out[j].Exclusive
		case ByCalls:
			return out[i].Count > out[j].Count
		default:
			return out[i].Inclusive > out[j].Inclusive
		}
	})
	return out
}

// WriteTable writes the records as a fixed-column text table sorted by
// cumulative time descending. An empty snapshot yields a well-formed,
// header-only table.
func (s *Snapshot) WriteTable(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d function calls in %.6f seconds\n\n",
		s.TotalCalls(), s.Total.Seconds()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "NCALLS\tTOTTIME\tPERCALL\tCUMTIME\tPERCALL\tSITE\t")
	for _, r := range s.SortBy(ByCumulative) {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.6f\t%s\t\n",
			r.Count,
			r.Exclusive.Seconds(),
			r.PerCallExclusive().Seconds(),
			r.Inclusive.Seconds(),
			r.PerCallInclusive().Seconds(),
			r.Site)
	}
	return tw.Flush()
}
