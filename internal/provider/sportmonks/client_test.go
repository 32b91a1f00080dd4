package sportmonks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testClient(baseURL string) *Client {
	return New(Config{
		BaseURL:        baseURL,
		Token:          "test-token",
		PerPage:        50,
		PageDelay:      time.Millisecond,
		Timeout:        5 * time.Second,
		MaxAttempts:    1,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, testLogger())
}

func pageHandler(t *testing.T, pageSizes []int, hasMore []bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.URL.Query().Get("api_token"))

		page, err := atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		require.LessOrEqual(t, page, len(pageSizes))

		items := make([]map[string]any, pageSizes[page-1])
		for i := range items {
			items[i] = map[string]any{"id": (page-1)*1000 + i}
		}

		resp := map[string]any{
			"data":       items,
			"pagination": map[string]any{"has_more": hasMore[page-1], "current_page": page},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func atoi(s string) (int, error) {
	var v int
	_, err := fmt.Sscanf(s, "%d", &v)
	return v, err
}

func TestFetchAllPages_ThreePages(t *testing.T) {
	srv := httptest.NewServer(pageHandler(t, []int{40, 40, 10}, []bool{true, true, false}))
	defer srv.Close()

	res := testClient(srv.URL).FetchAllPages(context.Background(), "/football/fixtures", url.Values{}, 50)

	assert.NoError(t, res.Err)
	assert.Len(t, res.Items, 90)
	assert.Equal(t, 3, res.APICalls)
}

func TestFetchAllPages_MaxPagesBoundsEndlessUpstream(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":       []map[string]any{{"id": calls}},
			"pagination": map[string]any{"has_more": true},
		})
	}))
	defer srv.Close()

	res := testClient(srv.URL).FetchAllPages(context.Background(), "/football/leagues", url.Values{}, 5)

	assert.NoError(t, res.Err)
	assert.Equal(t, 5, calls)
	assert.Equal(t, 5, res.APICalls)
	assert.Len(t, res.Items, 5)
}

func TestFetchAllPages_SingleObjectData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": 7},
		})
	}))
	defer srv.Close()

	res := testClient(srv.URL).FetchAllPages(context.Background(), "/football/fixtures/7", url.Values{}, 10)

	assert.NoError(t, res.Err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.APICalls)
}

func TestFetchAllPages_AbsentDataAndPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer srv.Close()

	res := testClient(srv.URL).FetchAllPages(context.Background(), "/football/fixtures", url.Values{}, 10)

	assert.NoError(t, res.Err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 1, res.APICalls)
}

func TestFetchAllPages_PartialOnPageFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 3 {
			http.Error(w, "upstream exploded", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":       []map[string]any{{"id": calls}},
			"pagination": map[string]any{"has_more": true},
		})
	}))
	defer srv.Close()

	res := testClient(srv.URL).FetchAllPages(context.Background(), "/football/fixtures", url.Values{}, 10)

	assert.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "fetch page 3")
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 3, res.APICalls)
}

func TestFetchAllPages_MissingTokenFailsBeforeIO(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, Timeout: time.Second, MaxAttempts: 1}, testLogger())
	res := client.FetchAllPages(context.Background(), "/football/fixtures", url.Values{}, 10)

	assert.ErrorIs(t, res.Err, ErrMissingToken)
	assert.Zero(t, res.APICalls)
	assert.Zero(t, calls)
}

func TestFetchOne_ReturnsData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "scores;participants", r.URL.Query().Get("include"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": 42, "name": "A vs B"},
		})
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("include", "scores;participants")
	data, err := testClient(srv.URL).FetchOne(context.Background(), "/football/fixtures/42", params)

	require.NoError(t, err)
	var payload FixturePayload
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, int64(42), payload.ID)
}

func TestFetchOne_Retries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": 1}})
	}))
	defer srv.Close()

	client := New(Config{
		BaseURL:        srv.URL,
		Token:          "test-token",
		Timeout:        time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, testLogger())

	_, err := client.FetchOne(context.Background(), "/football/teams/1", url.Values{})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchOne_ZeroMaxAttemptsStillRequestsOnce(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": 1}})
	}))
	defer srv.Close()

	// No MaxAttempts configured: the attempt count is floored at one
	// instead of skipping the request loop entirely.
	client := New(Config{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: time.Second,
	}, testLogger())

	data, err := client.FetchOne(context.Background(), "/football/teams/1", url.Values{})

	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, 1, calls)
}

func TestFetchAllPages_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":       []map[string]any{{"id": 1}},
			"pagination": map[string]any{"has_more": true},
		})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())

	client := New(Config{
		BaseURL:     srv.URL,
		Token:       "test-token",
		PageDelay:   50 * time.Millisecond,
		Timeout:     time.Second,
		MaxAttempts: 1,
	}, testLogger())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	res := client.FetchAllPages(ctx, "/football/fixtures", url.Values{}, 1000)

	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.NotEmpty(t, res.Items)
}
