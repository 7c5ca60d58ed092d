package abiprobe

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/abi-probe/layout"
	"github.com/wippyai/abi-probe/registry"
	"github.com/wippyai/abi-probe/report"
)

// Summary aggregates everything one run measured alongside every failure
// it collected. Failures never interrupt the run: all entities, constants,
// and callbacks are checked and reported even after a mismatch.
type Summary struct {
	Sizes     report.Sizes
	Enums     report.Enums
	Callbacks registry.Addrs
	Errors    []error
}

// OK reports whether every check passed.
func (s *Summary) OK() bool {
	return len(s.Errors) == 0
}

// ExitCode is the process verdict: 0 only when every check passed.
func (s *Summary) ExitCode() int {
	if s.OK() {
		return 0
	}
	return 1
}

// Run executes the full verification in contract order — layout, then
// constants, then callback shapes — and emits the report to w. The report
// is written even when checks fail; the verdict lives in the Summary.
func Run(w io.Writer) *Summary {
	log := Logger()
	sum := &Summary{}

	for _, d := range layout.Descriptors() {
		m, errs := layout.Verify(d)
		sum.recordSize(d.Key, m.Size)
		sum.Errors = append(sum.Errors, errs...)
		log.Debug("layout checked",
			zap.String("entity", d.Name),
			zap.Uint32("size", m.Size),
			zap.Int("mismatches", len(errs)))
	}

	sum.Errors = append(sum.Errors, registry.VerifyConstants()...)
	for _, c := range registry.Constants() {
		sum.recordEnum(c.Key, c.Actual)
	}

	sum.Callbacks = registry.Addresses()
	sum.Errors = append(sum.Errors, registry.VerifyCallbacks(sum.Callbacks)...)

	e := report.New(w)
	emit := func(err error) {
		if err != nil {
			sum.Errors = append(sum.Errors, err)
		}
	}
	emit(e.Marker())
	emit(e.Sizes(sum.Sizes))
	emit(e.Enums(sum.Enums))
	emit(registry.InvokeAll(w))
	emit(e.Handlers(report.Handlers{
		Traffic: sum.Callbacks.Traffic != 0,
		Memory:  sum.Callbacks.Memory != 0,
		Log:     sum.Callbacks.Log != 0,
		State:   sum.Callbacks.State != 0,
	}))
	emit(e.Linked())

	log.Debug("run complete", zap.Int("failures", len(sum.Errors)))
	return sum
}

// recordSize keeps the sizes the wire contract names; the pointer-pair
// entities are verified but stay off the SIZE line.
func (s *Summary) recordSize(key string, size uint32) {
	switch key {
	case "ver":
		s.Sizes.Ver = size
	case "tx":
		s.Sizes.TX = size
	case "mem":
		s.Sizes.Mem = size
	case "log":
		s.Sizes.Log = size
	case "conn":
		s.Sizes.Conn = size
	case "opt":
		s.Sizes.Opt = size
	}
}

// recordEnum keeps the four reportable constants; the rest of the registry
// is verified but stays off the ENUM line.
func (s *Summary) recordEnum(key string, value int32) {
	switch key {
	case "ok":
		s.Enums.OK = value
	case "init":
		s.Enums.Init = value
	case "halt":
		s.Enums.Halt = value
	case "run":
		s.Enums.Run = value
	}
}
