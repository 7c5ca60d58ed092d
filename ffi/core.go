package ffi

// Core is the full surface the native engine exports. The checker consumes
// it only as signatures to validate: nothing here is invoked for real
// effect, and the real implementation lives behind the language boundary.
type Core interface {
	// Lifecycle
	Init(opts *InitOptions) ResultCode
	Shutdown() ResultCode
	Start() ResultCode
	Stop() ResultCode

	// Introspection
	GetVersion(out *VersionInfo) ResultCode

	// Callback registration. Handlers and contexts are held until replaced
	// or Shutdown; contexts are borrowed per invocation, never owned.
	SetTrafficCallback(cb TrafficCallback, ctx any) ResultCode
	SetMemoryCallback(cb MemoryCallback, ctx any) ResultCode
	SetLogCallback(cb LogCallback, ctx any) ResultCode
	SetStateChangeCallback(cb StateChangeCallback, ctx any) ResultCode

	// Configuration
	UpdateConfig(patch []byte) ResultCode
	ReloadConfig(path, inline string) ResultCode

	// Connection control
	SelectProxy(group, name string) ResultCode
	CloseConnection(id string) ResultCode
	CloseAllConnections() ResultCode

	// Maintenance
	TriggerGC() ResultCode
	FlushFakeIPCache() ResultCode
}
