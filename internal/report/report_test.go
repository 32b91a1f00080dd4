package report

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_LogOrderPreserved(t *testing.T) {
	run := NewRun("fixtures")
	run.Logf("first")
	run.Logf("second %d", 2)
	run.Logf("third")

	s := run.Finish(nil)
	require.Len(t, s.Logs, 3)
	assert.Equal(t, []string{"first", "second 2", "third"}, s.Logs)
}

func TestRun_SuccessAndCounters(t *testing.T) {
	run := NewRun("odds")
	run.AddAPICalls(3)
	run.AddFetched(90)
	run.AddFiltered(40)
	run.AddUpdated(50)
	run.AddErrors(1)
	run.SetResult("oddsInserted", 50)

	s := run.Finish(nil)

	assert.True(t, s.Success)
	assert.Empty(t, s.Error)
	assert.Equal(t, 3, s.APICalls)
	assert.Equal(t, 90, s.Fetched)
	assert.Equal(t, 40, s.Filtered)
	assert.Equal(t, 50, s.Updated)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 50, s.Results["oddsInserted"])
	assert.Regexp(t, `^\d+ms$`, s.Duration)
}

func TestRun_FatalErrorMarksFailure(t *testing.T) {
	run := NewRun("standings")
	run.AddAPICalls(2)

	s := run.Finish(errors.New("insert standings: connection refused"))

	assert.False(t, s.Success)
	assert.Contains(t, s.Error, "connection refused")
	assert.Equal(t, 2, s.APICalls)
}

func TestRun_ConcurrentAppends(t *testing.T) {
	run := NewRun("team-logos")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run.AddAPICalls(1)
			run.Logf("worker done")
		}()
	}
	wg.Wait()

	s := run.Finish(nil)
	assert.Equal(t, 50, s.APICalls)
	assert.Len(t, s.Logs, 50)
}

func TestSummary_Details(t *testing.T) {
	run := NewRun("fixtures")
	run.Logf("hello")
	s := run.Finish(nil)

	details := s.Details()
	assert.Contains(t, string(details), `"job":"fixtures"`)
}
