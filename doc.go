// Package abiprobe verifies that the Go declarations for a native proxy
// core's FFI surface still match the binary contract the core was compiled
// against: struct layouts, constant values, and callback signatures.
//
// The checker is a build gate, not a monitoring tool. It runs once, reads
// no input, writes a fixed-grammar report to its output stream, and signals
// its verdict solely through the process exit status, so a bindings
// generator or CI harness can detect layout drift mechanically.
//
// # Architecture Overview
//
// The module is organized into one package per concern:
//
//	abiprobe/        Root package with the Driver (Run) and Summary
//	├── ffi/         Mirrors of the cross-boundary structs, constants,
//	│                callback signatures, and the core surface + stub
//	├── layout/      Descriptor set, C-ABI layout calculator, reflection
//	│                measurement, and the collect-all verifier
//	├── registry/    Constant registry and callback shape registry
//	├── report/      Fixed-grammar report emitter
//	├── errors/      Structured Phase/Kind failure types
//	└── cmd/abiprobe Command-line entry point and interactive inspector
//
// # Quick Start
//
// Run the full verification and inspect the verdict:
//
//	sum := abiprobe.Run(os.Stdout)
//	for _, err := range sum.Errors {
//	    log.Println(err)
//	}
//	os.Exit(sum.ExitCode())
//
// # Determinism
//
// The entire run is single-threaded and synchronous: no goroutines, no
// timers, no environment reads, no file or network I/O. Two runs in the
// same environment produce byte-identical reports. Logging through zap is
// a no-op unless a logger is installed with SetLogger, and installed
// loggers must write somewhere other than the report stream.
package abiprobe
