// Package taplog provides Tap actions that log stream elements using klog.
package taplog

import (
	"context"

	"github.com/deadlyengineer/gostreams"
	"k8s.io/klog/v2"
)

// Info returns a consumer that logs each element at verbosity level, using msg as the log message.
// It is meant to be passed to gostreams.Tap.
func Info[T any](level klog.Level, msg string) gostreams.ConsumerFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, index uint64) {
		klog.V(level).InfoS(msg, "index", index, "element", elem)
	}
}

// Check returns a consumer that calls check for each element.
// If check returns an error, the error is logged using msg as the log message, and the stream is canceled
// using that error.
func Check[T any](msg string, check func(elem T) error) gostreams.ConsumerFunc[T] {
	return func(_ context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		err := check(elem)
		if err == nil {
			return
		}

		klog.ErrorS(err, msg, "index", index, "element", elem)
		cancel(err)
	}
}

