package registry

import (
	"fmt"
	"io"
	"reflect"

	"github.com/wippyai/abi-probe/errors"
	"github.com/wippyai/abi-probe/ffi"
)

// The dummy handlers. Each has the exact boundary signature and renders
// its sample into the writer borrowed through ctx; nothing else. Holding
// them in variables of the boundary callback types is itself part of the
// proof: the assignments only compile while the shapes agree.
var (
	trafficDummy ffi.TrafficCallback     = renderTraffic
	memoryDummy  ffi.MemoryCallback      = renderMemory
	logDummy     ffi.LogCallback         = renderLog
	stateDummy   ffi.StateChangeCallback = renderState
)

func renderTraffic(s *ffi.TrafficSample, ctx any) {
	if w, ok := ctx.(io.Writer); ok && s != nil {
		fmt.Fprintf(w, "NET:TX=%d RX=%d\n", s.Up, s.Down)
	}
}

func renderMemory(s *ffi.MemorySample, ctx any) {
	if w, ok := ctx.(io.Writer); ok && s != nil {
		fmt.Fprintf(w, "MEM:USE=%d\n", s.InUse)
	}
}

func renderLog(e *ffi.LogEntry, ctx any) {
	if w, ok := ctx.(io.Writer); ok && e != nil {
		fmt.Fprintf(w, "LOG:%s:%s\n", e.LevelString(), e.PayloadString())
	}
}

func renderState(state ffi.CoreState, ctx any) {
	if w, ok := ctx.(io.Writer); ok {
		fmt.Fprintf(w, "STATE:%d\n", int32(state))
	}
}

// Addrs holds the code addresses of the four dummy handlers.
type Addrs struct {
	Traffic uintptr
	Memory  uintptr
	Log     uintptr
	State   uintptr
}

// Addresses obtains the handler addresses. Within one run the values are
// stable; across runs they are not guaranteed to be, which is why the
// report only records whether each was obtained.
func Addresses() Addrs {
	return Addrs{
		Traffic: reflect.ValueOf(trafficDummy).Pointer(),
		Memory:  reflect.ValueOf(memoryDummy).Pointer(),
		Log:     reflect.ValueOf(logDummy).Pointer(),
		State:   reflect.ValueOf(stateDummy).Pointer(),
	}
}

// VerifyCallbacks checks that every handler address was obtained.
func VerifyCallbacks(a Addrs) []error {
	var errs []error
	for _, cb := range []struct {
		name string
		addr uintptr
	}{
		{"tx", a.Traffic},
		{"mem", a.Memory},
		{"log", a.Log},
		{"state", a.State},
	} {
		if cb.addr == 0 {
			errs = append(errs, errors.NilHandler(cb.name))
		}
	}
	return errs
}

// Typed invokers route a sample through the stored callback value, proving
// the signature round-trips with the writer as borrowed context.

func InvokeTraffic(w io.Writer, s *ffi.TrafficSample) { trafficDummy(s, w) }
func InvokeMemory(w io.Writer, s *ffi.MemorySample)   { memoryDummy(s, w) }
func InvokeLog(w io.Writer, e *ffi.LogEntry)          { logDummy(e, w) }
func InvokeState(w io.Writer, s ffi.CoreState)        { stateDummy(s, w) }

// InvokeAll drives every dummy handler once with a fixed representative
// sample, in registry order. The samples are constants so the rendered
// lines are identical on every run. The handlers themselves cannot return
// errors — their shapes are the contract — so write failures are captured
// around them and surfaced here for the collect-all aggregate.
func InvokeAll(w io.Writer) error {
	ew := &errWriter{w: w}

	InvokeTraffic(ew, &ffi.TrafficSample{Up: 1000, Down: 2000})
	InvokeMemory(ew, &ffi.MemorySample{InUse: 8388608})

	var e ffi.LogEntry
	e.SetLevel("info")
	e.SetPayload("abi probe")
	InvokeLog(ew, &e)

	InvokeState(ew, ffi.StateRunning)

	if ew.err != nil {
		return errors.Wrap(errors.PhaseReport, errors.KindWriteFailed, ew.err, "handler renders")
	}
	return nil
}

// errWriter remembers the first write failure and stops writing after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
