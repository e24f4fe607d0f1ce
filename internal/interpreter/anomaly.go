package interpreter

import (
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// AnomalyKind classifies a recoverable anomaly.
type AnomalyKind uint8

const (
	// UnknownOpcode is a word that matches no instruction form.
	UnknownOpcode AnomalyKind = iota
	// MachineCall is a SYS instruction, a call into native machine code
	// that can not be emulated.
	MachineCall
	// IndexWrap is a memory access through I that crossed the end of the
	// address space and wrapped around to its start.
	IndexWrap

	anomalyKindCount
)

func (k AnomalyKind) String() string {
	switch k {
	case UnknownOpcode:
		return "unknown opcode"
	case MachineCall:
		return "machine code call"
	case IndexWrap:
		return "index wraparound"
	default:
		return "unknown anomaly"
	}
}

// Anomaly describes a condition that real hardware would not have crashed
// on. Execution continues after it is reported.
type Anomaly struct {
	Kind AnomalyKind
	PC   uint16 // address of the instruction
	Word uint16 // instruction word
}

// AnomalyHandler receives every anomaly as it happens.
type AnomalyHandler func(Anomaly)

// anomalyReporter logs every anomaly once per instruction address and
// forwards all of them to the optional handler.
type anomalyReporter struct {
	logger   *log.Logger
	handler  AnomalyHandler
	reported [anomalyKindCount]set.Set[uint16]
}

func newAnomalyReporter(logger *log.Logger, handler AnomalyHandler) *anomalyReporter {
	r := &anomalyReporter{
		logger:  logger,
		handler: handler,
	}
	r.reset()
	return r
}

func (r *anomalyReporter) report(a Anomaly) {
	if r.handler != nil {
		r.handler(a)
	}

	seen := r.reported[a.Kind]
	if seen.Contains(a.PC) {
		return
	}
	seen.Add(a.PC)

	r.logger.Warn("Execution anomaly",
		log.Stringer("kind", a.Kind),
		log.Hex("pc", a.PC),
		log.Hex("word", a.Word),
		log.String("instruction", instruction.Decode(a.Word).String()))
}

func (r *anomalyReporter) reset() {
	for i := range r.reported {
		r.reported[i] = set.New[uint16]()
	}
}
