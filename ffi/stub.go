package ffi

// Stub satisfies Core without a native library. It exists to prove the
// surface is implementable and to give tests a collaborator with the real
// lifecycle semantics: operations on an uninitialized core fail with
// ResultNotInitialized, and Start/Stop emit state transitions through the
// registered state change callback.
//
// Stub is not safe for concurrent use; the checker is single-threaded.
type Stub struct {
	initialized bool
	running     bool
	version     string

	trafficCb  TrafficCallback
	trafficCtx any

	memoryCb  MemoryCallback
	memoryCtx any

	logCb  LogCallback
	logCtx any

	stateCb  StateChangeCallback
	stateCtx any
}

var _ Core = (*Stub)(nil)

// NewStub returns a stub core reporting the given version string.
func NewStub(version string) *Stub {
	return &Stub{version: version}
}

func (s *Stub) Init(opts *InitOptions) ResultCode {
	if opts == nil {
		return ResultErrInvalidArg
	}
	if s.initialized {
		return ResultErrInit
	}
	s.initialized = true
	return ResultOK
}

func (s *Stub) Shutdown() ResultCode {
	if !s.initialized {
		return ResultNotInitialized
	}
	if s.running {
		s.Stop()
	}
	*s = Stub{version: s.version}
	return ResultOK
}

func (s *Stub) Start() ResultCode {
	if !s.initialized {
		return ResultNotInitialized
	}
	if s.running {
		return ResultErrRuntime
	}
	s.running = true
	s.notifyState(StateRunning)
	return ResultOK
}

func (s *Stub) Stop() ResultCode {
	if !s.initialized {
		return ResultNotInitialized
	}
	if !s.running {
		return ResultErrRuntime
	}
	s.running = false
	s.notifyState(StateStopped)
	return ResultOK
}

func (s *Stub) GetVersion(out *VersionInfo) ResultCode {
	if out == nil {
		return ResultErrInvalidArg
	}
	out.Set(s.version)
	return ResultOK
}

func (s *Stub) SetTrafficCallback(cb TrafficCallback, ctx any) ResultCode {
	s.trafficCb, s.trafficCtx = cb, ctx
	return ResultOK
}

func (s *Stub) SetMemoryCallback(cb MemoryCallback, ctx any) ResultCode {
	s.memoryCb, s.memoryCtx = cb, ctx
	return ResultOK
}

func (s *Stub) SetLogCallback(cb LogCallback, ctx any) ResultCode {
	s.logCb, s.logCtx = cb, ctx
	return ResultOK
}

func (s *Stub) SetStateChangeCallback(cb StateChangeCallback, ctx any) ResultCode {
	s.stateCb, s.stateCtx = cb, ctx
	return ResultOK
}

func (s *Stub) UpdateConfig(patch []byte) ResultCode {
	if len(patch) == 0 {
		return ResultErrInvalidArg
	}
	if !s.initialized {
		return ResultNotInitialized
	}
	return ResultOK
}

func (s *Stub) ReloadConfig(path, inline string) ResultCode {
	if path == "" && inline == "" {
		return ResultErrInvalidArg
	}
	if !s.initialized {
		return ResultNotInitialized
	}
	return ResultOK
}

func (s *Stub) SelectProxy(group, name string) ResultCode {
	if group == "" || name == "" {
		return ResultErrInvalidArg
	}
	if !s.running {
		return ResultNotInitialized
	}
	return ResultOK
}

func (s *Stub) CloseConnection(id string) ResultCode {
	if id == "" {
		return ResultErrInvalidArg
	}
	if !s.running {
		return ResultNotInitialized
	}
	return ResultOK
}

func (s *Stub) CloseAllConnections() ResultCode {
	if !s.running {
		return ResultNotInitialized
	}
	return ResultOK
}

func (s *Stub) TriggerGC() ResultCode {
	if !s.initialized {
		return ResultNotInitialized
	}
	return ResultOK
}

func (s *Stub) FlushFakeIPCache() ResultCode {
	if !s.initialized {
		return ResultNotInitialized
	}
	return ResultOK
}

func (s *Stub) notifyState(state CoreState) {
	if s.stateCb != nil {
		s.stateCb(state, s.stateCtx)
	}
}
