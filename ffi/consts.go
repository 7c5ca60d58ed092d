package ffi

// ResultCode is the outcome of every core operation. The values are part
// of the binary contract; the registry package verifies them against the
// expected table.
type ResultCode int32

const (
	ResultOK             ResultCode = 0
	ResultErrInit        ResultCode = 1
	ResultErrInvalidArg  ResultCode = 2
	ResultErrRuntime     ResultCode = 3
	ResultNotInitialized ResultCode = 4
)

func (r ResultCode) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultErrInit:
		return "init error"
	case ResultErrInvalidArg:
		return "invalid argument"
	case ResultErrRuntime:
		return "runtime error"
	case ResultNotInitialized:
		return "not initialized"
	default:
		return "unknown"
	}
}

// CoreState is the engine lifecycle phase reported through the state
// change callback. Only stopped and running cross the boundary today;
// the gap at 1 is reserved by the core.
type CoreState int32

const (
	StateStopped CoreState = 0
	StateRunning CoreState = 2
)

func (s CoreState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
