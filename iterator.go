package zammad

import (
	"context"
	"iter"
)

// perPage is the fixed page size for list requests.
const perPage = 20

// paginatorFunc fetches a single page of items T.
type paginatorFunc[T any] func(context.Context, PageParams) ([]T, error)

// iterate returns an iterator that walks through all pages using the
// provided fetcher. Pages are requested strictly sequentially, starting at
// page 1; a page shorter than the page size is the last one.
func iterate[T any](ctx context.Context, fetch paginatorFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		params := PageParams{Page: 1, PerPage: perPage}

		for {
			items, err := fetch(ctx, params)
			if err != nil {
				yield(*new(T), err)
				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			if len(items) < params.PerPage {
				return
			}
			params.Page++
		}
	}
}

// collect drains seq into a slice. A limit greater than zero truncates the
// result to exactly limit items and stops consuming, so further pages are
// never requested. A limit of zero means unlimited.
func collect[T any](seq iter.Seq2[T, error], limit int) ([]T, error) {
	var items []T
	for item, err := range seq {
		if err != nil {
			return nil, err
		}

		items = append(items, item)
		if limit > 0 && len(items) >= limit {
			break
		}
	}

	return items, nil
}
