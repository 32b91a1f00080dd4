package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"matchsync/internal/batch"
	"matchsync/internal/provider/sportmonks"
	"matchsync/internal/report"
)

// fetchItem performs one detail lookup and counts the call on the run. An
// unconfigured token never reaches the network, so it is not counted.
func fetchItem(ctx context.Context, provider Provider, run *report.Run, path string, params url.Values) (json.RawMessage, error) {
	raw, err := provider.FetchOne(ctx, path, params)
	if !errors.Is(err, sportmonks.ErrMissingToken) {
		run.AddAPICalls(1)
	}
	return raw, err
}

// missingToken picks the unconfigured-credential error out of settled batch
// results. Without a token no item can ever succeed, so the caller returns
// it as the run error instead of a pile of per-item skips.
func missingToken[R any](results []batch.Result[R]) error {
	for _, res := range results {
		if !res.Success && errors.Is(res.Err, sportmonks.ErrMissingToken) {
			return res.Err
		}
	}
	return nil
}

// syncCatalogue refreshes one reference catalogue: fetch every page, decode,
// map and persist. A fetch that produced nothing is an error; a fetch
// stopped early with partial items is counted and the partial set is kept.
// Counters beyond the API calls are left to the caller, which knows what
// the catalogue means for its run.
func syncCatalogue[P, R any](
	ctx context.Context,
	provider Provider,
	run *report.Run,
	label, path string,
	maxPages int,
	mapFn func(P) R,
	persist func(context.Context, []R) error,
) ([]R, error) {
	res := provider.FetchAllPages(ctx, path, nil, maxPages)
	run.AddAPICalls(res.APICalls)
	if res.Err != nil {
		if len(res.Items) == 0 {
			return nil, fmt.Errorf("fetch %s: %w", label, res.Err)
		}
		run.AddErrors(1)
		run.Logf("%s fetch stopped early: %v", label, res.Err)
	}

	rows := make([]R, 0, len(res.Items))
	for _, raw := range res.Items {
		var payload P
		if err := json.Unmarshal(raw, &payload); err != nil {
			run.AddErrors(1)
			continue
		}
		rows = append(rows, mapFn(payload))
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := persist(ctx, rows); err != nil {
		return nil, fmt.Errorf("upsert %s: %w", label, err)
	}
	return rows, nil
}
