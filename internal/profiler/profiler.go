package profiler

import "time"

// Profiler collects deterministic per-call-site statistics for one
// instrumented run: invocation counts plus exclusive and cumulative
// timings, attributed via an explicit shadow call stack.
//
// It is intentionally not safe for concurrent use. The tool is
// single-threaded end to end, which keeps traces simple to interpret.
// The profiler makes no attempt to subtract its own overhead; timings
// for very hot sites are indicative, not exact.
type Profiler struct {
	enabled bool
	stack   []frame
	records map[Site]*CallRecord
	order   []Site
	depth   map[Site]int
	began   time.Time
	exitFn  func()
}

type frame struct {
	site  Site
	start time.Time
	child time.Duration
}

func New() *Profiler {
	p := &Profiler{
		records: make(map[Site]*CallRecord),
		depth:   make(map[Site]int),
	}
	// One shared exit closure keeps Trace allocation-free.
	p.exitFn = p.exit
	return p
}

// Span is the handle returned by Begin. Ending it stops collection and
// yields the captured snapshot. End is idempotent so it can live in a
// defer (guaranteeing shutdown on panic) and still be called again on
// the normal path to fetch the snapshot.
type Span struct {
	p    *Profiler
	snap *Snapshot
}

// Begin enables collection and returns the handle that finalizes it.
func (p *Profiler) Begin() *Span {
	p.enabled = true
	p.began = time.Now()
	return &Span{p: p}
}

func (s *Span) End() *Snapshot {
	if s.snap != nil {
		return s.snap
	}
	p := s.p
	p.enabled = false
	total := time.Since(p.began)

	// A panicking benchmark unwinds through its deferred exits, but if
	// anything is still open, close it so partial records keep the
	// inclusive >= exclusive invariant.
	for len(p.stack) > 0 {
		p.exit()
	}

	records := make([]CallRecord, 0, len(p.order))
	for _, site := range p.order {
		records = append(records, *p.records[site])
	}
	s.snap = &Snapshot{Records: records, Total: total}
	return s.snap
}

var noopExit = func() {}

// Trace records one invocation of site and returns the exit function,
// meant to be used as:
//
//	defer p.Trace(site)()
//
// A nil profiler, or one outside an active span, traces nothing, so
// instrumented code can run untimed (e.g. under the comparison engine)
// at negligible cost.
func (p *Profiler) Trace(site Site) func() {
	if p == nil || !p.enabled {
		return noopExit
	}
	r, ok := p.records[site]
	if !ok {
		r = &CallRecord{Site: site}
		p.records[site] = r
		p.order = append(p.order, site)
	}
	r.Count++
	p.depth[site]++
	p.stack = append(p.stack, frame{site: site, start: time.Now()})
	return p.exitFn
}

func (p *Profiler) exit() {
	n := len(p.stack)
	if n == 0 {
		return
	}
	f := p.stack[n-1]
	p.stack = p.stack[:n-1]

	elapsed := time.Since(f.start)
	r := p.records[f.site]

	excl := elapsed - f.child
	if excl < 0 {
		excl = 0
	}
	r.Exclusive += excl

	// Cumulative time counts only outermost invocations of a site, so
	// recursion does not multiply-count the same wall time.
	p.depth[f.site]--
	if p.depth[f.site] == 0 {
		r.Inclusive += elapsed
	}

	if len(p.stack) > 0 {
		p.stack[len(p.stack)-1].child += elapsed
	}
}
