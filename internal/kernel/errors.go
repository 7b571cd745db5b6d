package kernel

import "errors"

// Sentinel errors returned by the core decision routines. Callers should
// use errors.Is to test for them; none of these are ever panicked.
var (
	// ErrInvalidInput marks a malformed query: k out of range, n out of
	// range, or a matching that does not match the instance or model.
	ErrInvalidInput = errors.New("kstable: invalid input")

	// ErrAllocationFailure marks a bounded-scratch-allocation refusal.
	// Callers must treat it as "don't know", never as "no witness".
	ErrAllocationFailure = errors.New("kstable: allocation failure")

	// ErrNoWitness names the outcome of an existence search that completed
	// cleanly but found nothing. The core never returns it: a clean "not
	// found" is a (Matching{}, false, nil) return, and the CLI's existence
	// verbs print exists=false and exit 0 rather than returning it.
	ErrNoWitness = errors.New("kstable: no k-stable matching found")

	// ErrNotStable names the outcome of a verification that found a
	// blocking coalition. As with ErrNoWitness, IsKStable itself returns
	// (false, nil), not an error, and the CLI's verify verbs print the
	// result and exit 0 rather than returning it.
	ErrNotStable = errors.New("kstable: matching is not k-stable")
)
