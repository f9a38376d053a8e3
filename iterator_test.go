package zammad

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// page returns n sequentially numbered items starting at offset.
func page(offset, n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item%d", offset+i)
	}
	return items
}

func TestIterate_ConcatenatesPages(t *testing.T) {
	// Pages of 20, 20 and 5 items: the short third page is the last one,
	// so exactly 3 requests are issued.
	var gotPages []int
	fetcher := func(ctx context.Context, params PageParams) ([]string, error) {
		if params.PerPage != 20 {
			t.Errorf("PerPage = %d, want 20", params.PerPage)
		}
		gotPages = append(gotPages, params.Page)

		switch params.Page {
		case 1:
			return page(0, 20), nil
		case 2:
			return page(20, 20), nil
		case 3:
			return page(40, 5), nil
		default:
			t.Fatalf("unexpected page number: %d", params.Page)
			return nil, nil
		}
	}

	collected, err := collect(iterate(context.Background(), fetcher), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(collected) != 45 {
		t.Errorf("expected 45 items, got %d", len(collected))
	}
	for i, item := range collected {
		if want := fmt.Sprintf("item%d", i); item != want {
			t.Fatalf("item[%d] = %q, want %q", i, item, want)
		}
	}

	if len(gotPages) != 3 {
		t.Errorf("expected 3 requests, got %d", len(gotPages))
	}
	for i, p := range gotPages {
		if p != i+1 {
			t.Errorf("request %d fetched page %d, want %d", i, p, i+1)
		}
	}
}

func TestCollect_LimitTruncates(t *testing.T) {
	calls := 0
	fetcher := func(ctx context.Context, params PageParams) ([]string, error) {
		calls++
		return page((params.Page-1)*20, 20), nil
	}

	collected, err := collect(iterate(context.Background(), fetcher), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(collected) != 10 {
		t.Errorf("expected exactly 10 items, got %d", len(collected))
	}
	if calls != 1 {
		t.Errorf("expected 1 request, got %d", calls)
	}
}

func TestCollect_LimitAcrossPages(t *testing.T) {
	fetcher := func(ctx context.Context, params PageParams) ([]string, error) {
		return page((params.Page-1)*20, 20), nil
	}

	collected, err := collect(iterate(context.Background(), fetcher), 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(collected) != 25 {
		t.Errorf("expected exactly 25 items, got %d", len(collected))
	}
	if last := collected[24]; last != "item24" {
		t.Errorf("last item = %q, want %q", last, "item24")
	}
}

func TestIterate_EmptyFirstPage(t *testing.T) {
	calls := 0
	fetcher := func(ctx context.Context, params PageParams) ([]string, error) {
		calls++
		return []string{}, nil
	}

	collected, err := collect(iterate(context.Background(), fetcher), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(collected) != 0 {
		t.Errorf("expected 0 items, got %d", len(collected))
	}
	if calls != 1 {
		t.Errorf("expected 1 request, got %d", calls)
	}
}

func TestIterate_Error(t *testing.T) {
	expectedErr := errors.New("fetch error")

	fetcher := func(ctx context.Context, params PageParams) ([]string, error) {
		return nil, expectedErr
	}

	_, err := collect(iterate(context.Background(), fetcher), 0)
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestIterate_ErrorOnSecondPage(t *testing.T) {
	expectedErr := errors.New("second page error")

	calls := 0
	fetcher := func(ctx context.Context, params PageParams) ([]string, error) {
		calls++
		if params.Page == 1 {
			return page(0, 20), nil
		}
		return nil, expectedErr
	}

	var collected []string
	var gotErr error
	for item, err := range iterate(context.Background(), fetcher) {
		if err != nil {
			gotErr = err
			break
		}
		collected = append(collected, item)
	}

	if len(collected) != 20 {
		t.Errorf("expected 20 items before error, got %d", len(collected))
	}
	if !errors.Is(gotErr, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, gotErr)
	}
	if calls != 2 {
		t.Errorf("expected 2 requests, got %d", calls)
	}
}

func TestIterate_EarlyTermination(t *testing.T) {
	fetcher := func(ctx context.Context, params PageParams) ([]string, error) {
		return page((params.Page-1)*20, 20), nil
	}

	var collected []string
	for item, err := range iterate(context.Background(), fetcher) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		collected = append(collected, item)
		if len(collected) == 3 {
			break
		}
	}

	if len(collected) != 3 {
		t.Errorf("expected 3 items, got %d", len(collected))
	}
}
