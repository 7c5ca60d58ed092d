package registry

import (
	"github.com/wippyai/abi-probe/errors"
	"github.com/wippyai/abi-probe/ffi"
)

// Constant is one named integer of the binary contract.
type Constant struct {
	Name     string
	Key      string
	Expected int32
	Actual   int32
}

// Constants returns the closed constant set in report order: the five
// result codes, then the two lifecycle states.
func Constants() []Constant {
	return []Constant{
		{Name: "ok", Key: "ok", Expected: 0, Actual: int32(ffi.ResultOK)},
		{Name: "init error", Key: "init", Expected: 1, Actual: int32(ffi.ResultErrInit)},
		{Name: "invalid argument", Key: "inval", Expected: 2, Actual: int32(ffi.ResultErrInvalidArg)},
		{Name: "runtime error", Key: "rt", Expected: 3, Actual: int32(ffi.ResultErrRuntime)},
		{Name: "not initialized", Key: "notinit", Expected: 4, Actual: int32(ffi.ResultNotInitialized)},
		{Name: "stopped", Key: "halt", Expected: 0, Actual: int32(ffi.StateStopped)},
		{Name: "running", Key: "run", Expected: 2, Actual: int32(ffi.StateRunning)},
	}
}

// VerifyConstants checks every registry value, collecting all mismatches.
func VerifyConstants() []error {
	var errs []error
	for _, c := range Constants() {
		if c.Actual != c.Expected {
			errs = append(errs, errors.ValueMismatch(c.Name, c.Expected, c.Actual))
		}
	}
	return errs
}
