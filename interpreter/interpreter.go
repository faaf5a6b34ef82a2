// Package interpreter implements Pact's bytecode evaluator: a single
// forward pass over the contract's bytecode stream, reading register
// A (the pending clause result) and register B (a pending conjunction)
// with no look-ahead, per the certificate's data table and the host's
// input table.
package interpreter

import (
	"errors"
	"fmt"

	"go.dedis.ch/pact/logging"
	"go.dedis.ch/pact/pacttype"
)

// Evaluate runs bytecode against dataTable (the contract's own constants)
// and inputTable (values the host supplies at verification time), and
// reports whether the certificate's conjunction of clauses holds.
//
// Evaluation is strict: every opcode in the stream is decoded and
// executed, even after a clause has already failed, so a malformed
// tail is never masked by an early true/false verdict.
func Evaluate(bytecode []byte, dataTable, inputTable []pacttype.PactType) (bool, error) {
	log := logging.RootLogger.With().Str("component", "interpreter").Logger()

	verdict := true
	var a *bool
	var pendingConj *conjunction

	i := 0
	for i < len(bytecode) {
		op := bytecode[i]
		i++

		decoded, err := decodeOpcode(op)
		if err != nil {
			return false, err
		}

		if decoded.isConjunction {
			if a == nil {
				return false, newError(KindUnexpectedConjunction, fmt.Errorf("offset %d: %w", i-1, ErrUnexpectedConjunction))
			}
			conj := decoded.conj
			pendingConj = &conj
			continue
		}

		if i >= len(bytecode) {
			return false, newError(KindTruncated, fmt.Errorf("offset %d: expected index byte: %w", i, pacttype.ErrTruncated))
		}
		idx := bytecode[i]
		i++

		lhsIdx := int(idx >> 4)
		rhsIdx := int(idx & 0x0f)

		lhsTable := inputTable
		rhsTable := dataTable
		if decoded.comp.load == loadInputVsInput {
			rhsTable = inputTable
		}

		if lhsIdx >= len(lhsTable) {
			return false, newError(KindIndexOutOfRange, fmt.Errorf("lhs index %d: %w", lhsIdx, ErrIndexOutOfRange))
		}
		if rhsIdx >= len(rhsTable) {
			return false, newError(KindIndexOutOfRange, fmt.Errorf("rhs index %d: %w", rhsIdx, ErrIndexOutOfRange))
		}

		result, err := pacttype.Compare(toOperator(decoded.comp.op), lhsTable[lhsIdx], rhsTable[rhsIdx])
		if err != nil {
			return false, translateCompareErr(err)
		}
		if decoded.comp.not {
			result = !result
		}

		if pendingConj != nil {
			result = applyConjunction(pendingConj.op, *a, result)
			if pendingConj.not {
				result = !result
			}
			pendingConj = nil
		} else if a != nil {
			// A new clause starts: commit the previous one into the
			// running verdict before A is overwritten.
			verdict = verdict && *a
		}

		rv := result
		a = &rv
	}

	if pendingConj != nil {
		return false, newError(KindDanglingConjunction, fmt.Errorf("bytecode exhausted: %w", ErrDanglingConjunction))
	}
	if a != nil {
		verdict = verdict && *a
	}

	log.Trace().Bool("verdict", verdict).Msg("evaluated bytecode")
	return verdict, nil
}

func toOperator(op comparatorOp) pacttype.Operator {
	return pacttype.Operator(op)
}

func translateCompareErr(err error) error {
	switch {
	case errors.Is(err, pacttype.ErrTypeMismatch):
		return newError(KindTypeMismatch, err)
	case errors.Is(err, pacttype.ErrUnsupportedOperator):
		return newError(KindUnsupportedOperator, err)
	default:
		return newError(KindUnknown, err)
	}
}
