// Package report emits the fixed-grammar ABI report.
//
// The report is line-oriented and parsed by downstream tooling on fixed
// tokens, never free-form text, so every byte of the format is contract:
//
//	MIHO:ABI
//	SIZE:ver=64 tx=24 mem=16 log=536 conn=592 opt=40
//	ENUM:ok=0 init=1 halt=0 run=2
//	NET:TX=1000 RX=2000            (dummy handler renders, fixed order)
//	MEM:USE=8388608
//	LOG:info:abi probe
//	STATE:2
//	CBPTR:tx=ok mem=ok log=ok state=ok
//	DECL:link
//
// The SIZE line names the six entities of the wire contract; the ENUM
// line names the four reportable constants, positionally, regardless of
// their values. The CBPTR line records whether each handler address was
// obtained rather than the address itself, so two runs in the same
// environment produce byte-identical output. Any deviation in formatting
// is itself a defect.
package report
