package taplog

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"testing"

	"github.com/deadlyengineer/gostreams"
	"github.com/matryer/is"
	"k8s.io/klog/v2"
)

var errBoom = errors.New("boom")

func TestInfo(t *testing.T) {
	is := is.New(t)

	buf := captureLogs(t, "4")

	strs := gostreams.Tap(gostreams.Produce([]string{"a", "b"}), Info[string](4, "tapped element"))

	result, err := gostreams.ReduceSlice(context.Background(), strs)

	klog.Flush()

	is.NoErr(err)
	is.Equal(result, []string{"a", "b"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), 2)
	is.True(strings.Contains(lines[0], `"tapped element"`))
	is.True(strings.Contains(lines[0], `index=0 element="a"`))
	is.True(strings.Contains(lines[1], `index=1 element="b"`))
}

func TestInfo_Verbosity(t *testing.T) {
	is := is.New(t)

	buf := captureLogs(t, "2")

	ints := gostreams.Tap(gostreams.Produce([]int{1, 2, 3}), Info[int](4, "tapped element"))

	result, err := gostreams.ReduceSlice(context.Background(), ints)

	klog.Flush()

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
	is.Equal(buf.Len(), 0)
}

func TestCheck(t *testing.T) {
	is := is.New(t)

	buf := captureLogs(t, "0")

	strs := gostreams.Tap(gostreams.Produce([]string{"a", "b", "c"}), Check("check failed", func(elem string) error {
		if elem == "b" {
			return errBoom
		}

		return nil
	}))

	result, err := gostreams.ReduceSlice(context.Background(), strs)

	klog.Flush()

	is.True(errors.Is(err, errBoom))
	is.Equal(result, []string{"a"})

	out := buf.String()
	is.True(strings.Contains(out, `"check failed"`))
	is.True(strings.Contains(out, `err="boom"`))
	is.True(strings.Contains(out, `element="b"`))
}

func TestCheck_FlatTap(t *testing.T) {
	is := is.New(t)

	_ = captureLogs(t, "0")

	ints := gostreams.FlatTap(gostreams.Produce([]int{1, 2, 3}), func(_ context.Context, _ context.CancelCauseFunc, elem int, _ uint64) gostreams.ProducerFunc[int] {
		return gostreams.Tap(gostreams.Produce([]int{elem * 10}), Check("side effect failed", func(elem int) error {
			if elem == 20 {
				return errBoom
			}

			return nil
		}))
	})

	_, err := gostreams.ReduceSlice(context.Background(), ints)

	is.True(errors.Is(err, errBoom))
}

// captureLogs redirects klog output into the returned buffer, logging at the given verbosity.
func captureLogs(t *testing.T, verbosity string) *bytes.Buffer {
	t.Helper()

	is := is.New(t)

	flags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(flags)

	is.NoErr(flags.Set("logtostderr", "false"))
	is.NoErr(flags.Set("alsologtostderr", "false"))
	is.NoErr(flags.Set("skip_headers", "true"))
	is.NoErr(flags.Set("v", verbosity))

	buf := &bytes.Buffer{}
	klog.SetOutput(buf)

	t.Cleanup(func() {
		klog.Flush()
		klog.SetOutput(os.Stderr)
		_ = flags.Set("v", "0")
	})

	return buf
}
