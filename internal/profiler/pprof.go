package profiler

import (
	"io"

	"github.com/google/pprof/profile"
)

// ToPprof converts the snapshot to a pprof profile with one sample per
// call site and three value columns: calls, exclusive nanoseconds and
// cumulative nanoseconds. The result is loadable by `go tool pprof`
// and the wider pprof viewer ecosystem.
//
// Output is deterministic for identical statistics: IDs follow record
// insertion order and no wall-clock timestamp is embedded.
func (s *Snapshot) ToPprof() *profile.Profile {
	p := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "calls", Unit: "count"},
			{Type: "exclusive", Unit: "nanoseconds"},
			{Type: "cumulative", Unit: "nanoseconds"},
		},
		DefaultSampleType: "cumulative",
		DurationNanos:     s.Total.Nanoseconds(),
	}

	for i, r := range s.Records {
		id := uint64(i + 1)
		fn := &profile.Function{
			ID:         id,
			Name:       r.Site.Function,
			SystemName: r.Site.Function,
			Filename:   r.Site.File,
			StartLine:  int64(r.Site.Line),
		}
		loc := &profile.Location{
			ID:   id,
			Line: []profile.Line{{Function: fn, Line: int64(r.Site.Line)}},
		}
		p.Function = append(p.Function, fn)
		p.Location = append(p.Location, loc)
		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{r.Count, r.Exclusive.Nanoseconds(), r.Inclusive.Nanoseconds()},
		})
	}
	return p
}

// WritePprof serializes the snapshot in gzip-compressed pprof format.
// The same snapshot always serializes to identical bytes.
func (s *Snapshot) WritePprof(w io.Writer) error {
	return s.ToPprof().Write(w)
}
