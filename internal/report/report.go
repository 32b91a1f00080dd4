// Package report accumulates the run-scoped logs, counters and result
// payload of one sync job execution.
package report

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Run collects everything one job execution wants to tell its caller:
// ordered human-readable log lines, counters, and ad-hoc result values. It
// is safe for the concurrent appends that happen inside enrichment chunks.
type Run struct {
	Job       string
	StartedAt time.Time

	mu       sync.Mutex
	logs     []string
	results  map[string]any
	apiCalls int
	fetched  int
	filtered int
	updated  int
	errors   int
}

func NewRun(job string) *Run {
	return &Run{
		Job:       job,
		StartedAt: time.Now(),
		results:   map[string]any{},
	}
}

// Logf appends one formatted log line in arrival order.
func (r *Run) Logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func (r *Run) AddAPICalls(n int) { r.add(&r.apiCalls, n) }
func (r *Run) AddFetched(n int)  { r.add(&r.fetched, n) }
func (r *Run) AddFiltered(n int) { r.add(&r.filtered, n) }
func (r *Run) AddUpdated(n int)  { r.add(&r.updated, n) }
func (r *Run) AddErrors(n int)   { r.add(&r.errors, n) }

func (r *Run) add(counter *int, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*counter += n
}

func (r *Run) APICalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apiCalls
}

func (r *Run) Errors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors
}

// SetResult records a job-specific result value surfaced to the caller.
func (r *Run) SetResult(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[key] = value
}

// Summary is the finalized result payload returned to the trigger caller.
type Summary struct {
	Job      string         `json:"job"`
	Success  bool           `json:"success"`
	Error    string         `json:"error,omitempty"`
	Duration string         `json:"duration"`
	APICalls int            `json:"apiCalls"`
	Fetched  int            `json:"itemsFetched"`
	Filtered int            `json:"itemsFiltered"`
	Updated  int            `json:"itemsUpdated"`
	Errors   int            `json:"errorsCount"`
	Logs     []string       `json:"logs"`
	Results  map[string]any `json:"results,omitempty"`
}

// Finish freezes the run. A nil err marks the run successful; upstream
// errors recovered mid-run do not flip the flag, only the fatal error passed
// here does.
func (r *Run) Finish(err error) *Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Summary{
		Job:      r.Job,
		Success:  err == nil,
		Duration: fmt.Sprintf("%dms", time.Since(r.StartedAt).Milliseconds()),
		APICalls: r.apiCalls,
		Fetched:  r.fetched,
		Filtered: r.filtered,
		Updated:  r.updated,
		Errors:   r.errors,
		Logs:     append([]string(nil), r.logs...),
		Results:  r.results,
	}
	if err != nil {
		s.Error = err.Error()
	}
	return s
}

// Details serializes the summary for the operations audit row.
func (s *Summary) Details() []byte {
	data, err := json.Marshal(s)
	if err != nil {
		return []byte("{}")
	}
	return data
}
