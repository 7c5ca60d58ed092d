package ffi

// VersionInfo receives the engine version string from GetVersion.
type VersionInfo struct {
	Version [64]byte
}

// String returns the version content up to the first zero byte.
func (v *VersionInfo) String() string {
	return BufString(v.Version[:])
}

// Set writes s into the version buffer, truncating and zero-filling
// per the boundary rules in buffer.go.
func (v *VersionInfo) Set(s string) {
	PutString(v.Version[:], s)
}

// TrafficSample is one point-in-time throughput reading. The core pushes
// these through the traffic callback roughly once per second.
type TrafficSample struct {
	TimestampMS uint64
	Up          uint64
	Down        uint64
}

// MemorySample is one point-in-time heap usage reading.
type MemorySample struct {
	TimestampMS uint64
	InUse       uint64
}

// LogEntry is one log line crossing the boundary. Level and Payload are
// fixed-capacity buffers, not pointers, so the entry is self-contained
// and valid only for the duration of the callback.
type LogEntry struct {
	TimestampMS uint64
	Level       [16]byte
	Payload     [512]byte
}

func (e *LogEntry) LevelString() string   { return BufString(e.Level[:]) }
func (e *LogEntry) PayloadString() string { return BufString(e.Payload[:]) }

func (e *LogEntry) SetLevel(s string)   { PutString(e.Level[:], s) }
func (e *LogEntry) SetPayload(s string) { PutString(e.Payload[:], s) }

// Connection is the metadata of one active proxied connection.
type Connection struct {
	ID          [64]byte
	Host        [256]byte
	DstPort     uint16
	Rule        [256]byte
	StartTimeMS uint64
}

func (c *Connection) IDString() string   { return BufString(c.ID[:]) }
func (c *Connection) HostString() string { return BufString(c.Host[:]) }
func (c *Connection) RuleString() string { return BufString(c.Rule[:]) }

// ConnectionList is a snapshot of active connections. The core owns the
// backing array; it is valid only for the duration of the call that
// produced it and must not be retained.
type ConnectionList struct {
	Connections *Connection
	Count       uintptr
}

// ConfigBuffer is a caller-owned byte span holding a serialized config
// patch. The core never retains the pointer past the call.
type ConfigBuffer struct {
	Data   *byte
	Length uintptr
}

// InitOptions carries startup configuration into Init. The string
// references are borrowed: they must stay valid for the duration of the
// Init call and no longer.
type InitOptions struct {
	HomeDir            *byte
	ConfigFile         *byte
	ExternalController *byte
	Secret             *byte
	LogLevel           int32
}
