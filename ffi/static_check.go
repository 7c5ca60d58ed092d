package ffi

import "unsafe"

// Compile-time layout asserts for the fixed-size entities. Each pair of
// zero-length arrays only compiles when the measured size equals the
// contract size, so layout drift fails the build before anything runs.
// The pointer-bearing mirrors are platform-dependent and are checked at
// runtime by the layout package instead.
var (
	_ [unsafe.Sizeof(VersionInfo{}) - 64]byte
	_ [64 - unsafe.Sizeof(VersionInfo{})]byte

	_ [unsafe.Sizeof(TrafficSample{}) - 24]byte
	_ [24 - unsafe.Sizeof(TrafficSample{})]byte

	_ [unsafe.Sizeof(MemorySample{}) - 16]byte
	_ [16 - unsafe.Sizeof(MemorySample{})]byte

	_ [unsafe.Sizeof(LogEntry{}) - 536]byte
	_ [536 - unsafe.Sizeof(LogEntry{})]byte

	_ [unsafe.Sizeof(Connection{}) - 592]byte
	_ [592 - unsafe.Sizeof(Connection{})]byte
)
