package workqueue

import (
	"context"

	"go.trai.ch/patchwork/internal/core/domain"
	"go.trai.ch/zerr"
)

// PMap runs fn on every element of items in parallel and returns the results in
// input order. It waits for all elements; if any failed, the error of the lowest
// failing index is returned and the other results are discarded.
func PMap[T, R any](ctx context.Context, q *Queue, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	return pmap(ctx, q, nil, items, fn)
}

// PMapTracked is PMap reporting each completed element through tracker.
func PMapTracked[T, R any](
	ctx context.Context,
	q *Queue,
	tracker *Tracker,
	items []T,
	fn func(ctx context.Context, item T) (R, error),
) ([]R, error) {
	return pmap(ctx, q, tracker, items, fn)
}

// PMapAsync is PMap for functions that start asynchronous work and return its
// future. The worker is released as soon as fn returns.
func PMapAsync[T, R any](
	ctx context.Context,
	q *Queue,
	items []T,
	fn func(ctx context.Context, item T) *domain.Future[R],
) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	futures := make([]*domain.Future[R], len(items))
	for i, it := range items {
		out := domain.NewFuture[R]()
		futures[i] = out

		q.enqueue(ctx, func(ctx context.Context) {
			inner := fn(ctx, it)
			if inner == nil {
				var zero R
				out.Resolve(zero, nil)
				return
			}
			go func() {
				out.Resolve(inner.Result())
			}()
		}, func(err error) {
			out.Fail(err)
		})
	}

	return collect(ctx, q, futures)
}

// PDo runs fn on every element of items in parallel.
func PDo[T any](ctx context.Context, q *Queue, items []T, fn func(ctx context.Context, item T) error) error {
	_, err := pmap(ctx, q, nil, items, func(ctx context.Context, it T) (struct{}, error) {
		return struct{}{}, fn(ctx, it)
	})
	return err
}

// PDoIndexed runs fn on every element of items in parallel, passing the element's index.
func PDoIndexed[T any](ctx context.Context, q *Queue, items []T, fn func(ctx context.Context, idx int, item T) error) error {
	indices := make([]int, len(items))
	for i := range items {
		indices[i] = i
	}
	_, err := pmap(ctx, q, nil, indices, func(ctx context.Context, i int) (struct{}, error) {
		return struct{}{}, fn(ctx, i, items[i])
	})
	return err
}

func pmap[T, R any](
	ctx context.Context,
	q *Queue,
	tracker *Tracker,
	items []T,
	fn func(ctx context.Context, item T) (R, error),
) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	futures := make([]*domain.Future[R], len(items))
	for i, it := range items {
		futures[i] = Submit(ctx, q, func(ctx context.Context) (R, error) {
			if tracker != nil {
				defer tracker.Completed(ctx)
			}
			return fn(ctx, it)
		})
	}

	return collect(ctx, q, futures)
}

func collect[R any](ctx context.Context, q *Queue, futures []*domain.Future[R]) ([]R, error) {
	if err := AwaitAll(ctx, q, futures); err != nil {
		return nil, err
	}

	results := make([]R, len(futures))
	for i, fut := range futures {
		v, err := fut.Result()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkItemFailed.Error()), "index", i)
		}
		results[i] = v
	}
	return results, nil
}
