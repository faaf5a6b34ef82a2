// Package pact implements a decoder and interpreter for Pact
// contracts: compact, bytecode-encoded permission certificates that a
// host evaluates against a per-call input table to decide whether an
// action is authorized.
package pact

import (
	"fmt"

	"github.com/rs/xid"
	"go.dedis.ch/pact/contract"
	"go.dedis.ch/pact/interpreter"
	"go.dedis.ch/pact/logging"
	"go.dedis.ch/pact/pacttype"
)

// Re-exported sentinel errors, so a host need only import this package
// to match on any failure Evaluate can return.
var (
	ErrUnsupportedVersion    = contract.ErrUnsupportedVersion
	ErrTruncated             = pacttype.ErrTruncated
	ErrUnknownTypeTag        = pacttype.ErrUnknownTypeTag
	ErrListInnerMismatch     = pacttype.ErrListInnerMismatch
	ErrListTooDeep           = pacttype.ErrListTooDeep
	ErrTypeMismatch          = pacttype.ErrTypeMismatch
	ErrUnsupportedOperator   = pacttype.ErrUnsupportedOperator
	ErrInvalidOpcode         = interpreter.ErrInvalidOpcode
	ErrIndexOutOfRange       = interpreter.ErrIndexOutOfRange
	ErrUnexpectedConjunction = interpreter.ErrUnexpectedConjunction
	ErrDanglingConjunction   = interpreter.ErrDanglingConjunction
)

// Evaluate decodes contractBytes as a v0 Pact contract and runs its
// bytecode against inputTable, returning the certificate's verdict or
// the first error encountered while decoding or interpreting it.
//
// Each call is tagged with a short correlation ID (the call_id field)
// on the log lines this function writes, so a call's decode failure,
// evaluation failure or verdict can be found in the host's logs. The
// contract and interpreter packages' own log lines do not carry it.
func Evaluate(contractBytes []byte, inputTable []pacttype.PactType) (bool, error) {
	callID := xid.New()
	log := logging.RootLogger.With().Str("component", "pact").Str("call_id", callID.String()).Logger()

	c, err := contract.Decode(contractBytes)
	if err != nil {
		log.Debug().Err(err).Msg("contract decode failed")
		return false, fmt.Errorf("pact: decode: %w", err)
	}

	verdict, err := interpreter.Evaluate(c.Bytecode, c.DataTable, inputTable)
	if err != nil {
		log.Debug().Err(err).Msg("bytecode evaluation failed")
		return false, fmt.Errorf("pact: evaluate: %w", err)
	}

	log.Debug().Bool("verdict", verdict).Msg("evaluated contract")
	return verdict, nil
}

// Decode exposes the contract codec directly, for hosts that want to
// inspect a certificate's data table (e.g. for disassembly or audit
// logging) before or instead of evaluating it.
func Decode(contractBytes []byte) (*contract.Contract, error) {
	return contract.Decode(contractBytes)
}

// Encode is the inverse of Decode.
func Encode(c *contract.Contract) []byte {
	return contract.Encode(c)
}
