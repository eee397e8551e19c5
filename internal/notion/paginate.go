package notion

import "context"

// PageResult is one page of a cursor-paginated listing.
//
//nolint:govet // fieldalignment: keep response metadata grouped with results.
type PageResult[T any] struct {
	Results    []T    `json:"results"`
	Object     string `json:"object,omitempty"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// FetchPageFunc retrieves a single page of results. An empty cursor requests
// the first page.
type FetchPageFunc[T any] func(ctx context.Context, cursor string, pageSize int) (PageResult[T], error)

// CollectAll drains a paginated listing, following next_cursor until the
// server reports has_more=false. Cross-page order is preserved. has_more is
// authoritative: a cursor accompanying a final page is ignored, so a
// misbehaving server cannot loop the client. The first fetch failure aborts
// the whole aggregation with no partial results.
func CollectAll[T any](ctx context.Context, pageSize int, fetch FetchPageFunc[T]) ([]T, error) {
	var (
		all    []T
		cursor string
	)
	for {
		page, err := fetch(ctx, cursor, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Results...)
		if !page.HasMore || page.NextCursor == "" {
			return all, nil
		}
		cursor = page.NextCursor
	}
}
