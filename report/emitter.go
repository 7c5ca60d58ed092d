package report

import (
	"fmt"
	"io"

	"github.com/wippyai/abi-probe/errors"
)

// Sizes carries the measured size of every entity the wire contract names,
// in SIZE line order. The pointer-pair spans (connection list, config
// buffer) are platform-derived and verified by the layout package but are
// not part of the line grammar.
type Sizes struct {
	Ver  uint32
	TX   uint32
	Mem  uint32
	Log  uint32
	Conn uint32
	Opt  uint32
}

// Enums carries the actual values of the four reportable constants, in
// ENUM line order. Parsers index the line by position, so the token set
// and order are fixed regardless of the values.
type Enums struct {
	OK   int32
	Init int32
	Halt int32
	Run  int32
}

// Handlers records whether each callback address was obtained.
type Handlers struct {
	Traffic bool
	Memory  bool
	Log     bool
	State   bool
}

// Emitter writes the report to w, one method per line, in contract order.
type Emitter struct {
	w io.Writer
}

func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Marker writes the line identifying the output as an ABI report.
func (e *Emitter) Marker() error {
	return e.line("marker", "MIHO:ABI\n")
}

// Sizes writes the measured size of every entity on the SIZE line.
func (e *Emitter) Sizes(s Sizes) error {
	return e.line("sizes", "SIZE:ver=%d tx=%d mem=%d log=%d conn=%d opt=%d\n",
		s.Ver, s.TX, s.Mem, s.Log, s.Conn, s.Opt)
}

// Enums writes the reportable constants' actual values.
func (e *Emitter) Enums(v Enums) error {
	return e.line("enums", "ENUM:ok=%d init=%d halt=%d run=%d\n",
		v.OK, v.Init, v.Halt, v.Run)
}

// Handlers writes whether each callback address was obtained.
func (e *Emitter) Handlers(h Handlers) error {
	return e.line("handlers", "CBPTR:tx=%s mem=%s log=%s state=%s\n",
		okOrNil(h.Traffic), okOrNil(h.Memory), okOrNil(h.Log), okOrNil(h.State))
}

// Linked writes the final marker confirming the run completed without an
// earlier abort.
func (e *Emitter) Linked() error {
	return e.line("linked", "DECL:link\n")
}

func (e *Emitter) line(name, format string, args ...any) error {
	if _, err := fmt.Fprintf(e.w, format, args...); err != nil {
		return errors.Wrap(errors.PhaseReport, errors.KindWriteFailed, err, name+" line")
	}
	return nil
}

func okOrNil(obtained bool) string {
	if obtained {
		return "ok"
	}
	return "nil"
}
