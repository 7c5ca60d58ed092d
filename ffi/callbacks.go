package ffi

// Callback signatures the core invokes. Each receives an opaque context
// value supplied at registration time. The context is borrowed for the
// duration of the call; handlers must not assume it outlives the call.
// Sample pointers are likewise valid only until the handler returns.

// TrafficCallback receives throughput readings.
type TrafficCallback func(sample *TrafficSample, ctx any)

// MemoryCallback receives memory usage readings.
type MemoryCallback func(sample *MemorySample, ctx any)

// LogCallback receives log lines.
type LogCallback func(entry *LogEntry, ctx any)

// StateChangeCallback receives lifecycle transitions.
type StateChangeCallback func(state CoreState, ctx any)
