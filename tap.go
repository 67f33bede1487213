package gostreams

import "context"

// Tap returns a producer that calls tap for each element produced by prod, in order, and produces the same elements.
// tap is called before its element is produced. It is meant for synchronous side effects such as logging or
// incrementing metrics, and must not start new streams, use FlatTap for that.
//
// If tap cancels the stream, its element and all following elements are not produced, and the terminal
// operation returns the cause of the cancelation.
func Tap[T any](prod ProducerFunc[T], tap ConsumerFunc[T]) ProducerFunc[T] {
	return Peek(prod, tap)
}

// FuncTapper returns a consumer that calls tap for each element.
// If tap returns an error, the stream is canceled using that error.
func FuncTapper[T any](tap func(elem T) error) ConsumerFunc[T] {
	return func(_ context.Context, cancel context.CancelCauseFunc, elem T, _ uint64) {
		if err := tap(elem); err != nil {
			cancel(err)
		}
	}
}

// FlatTap returns a producer that performs an asynchronous side effect for each element produced by prod,
// and produces the same elements.
//
// Map is to FlatMap as Tap is to FlatTap: tap is called for each element and returns a producer of type R.
// That producer is consumed concurrently with other elements' producers, and all of its elements are discarded.
// Once it completes, the original element is produced, exactly once, even if the producer did not produce
// any elements. If tap returns nil, the original element is produced right away.
//
// Elements are produced in the order in which their producers complete, not in the order produced by prod.
// If a producer returned by tap cancels the stream, its element is not produced, and the terminal operation
// returns the cause of the cancelation.
func FlatTap[T any, R any](prod ProducerFunc[T], tap MapperFunc[T, ProducerFunc[R]]) ProducerFunc[T] {
	return FlatTapLimit(prod, 0, tap)
}

// FlatTapLimit is like FlatTap, but if maxConcurrent is greater than 0, at most maxConcurrent producers returned
// by tap are consumed at the same time.
func FlatTapLimit[T any, R any](prod ProducerFunc[T], maxConcurrent int, tap MapperFunc[T, ProducerFunc[R]]) ProducerFunc[T] {
	return FlatMapMerge(prod, maxConcurrent, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) ProducerFunc[T] {
		sideProd := tap(ctx, cancel, elem, index)
		if sideProd == nil {
			return Produce([]T{elem})
		}

		return after(sideProd, elem)
	})
}

// after returns a producer that consumes all elements produced by prod, discarding them, and then produces elem.
// elem is not produced if the stream has been canceled.
func after[T any, R any](prod ProducerFunc[R], elem T) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for range ch {
			}

			if contextDone(ctx) {
				return
			}

			select {
			case outCh <- elem:

			case <-ctx.Done():
			}
		}()

		return outCh
	}
}
