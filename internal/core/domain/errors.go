package domain

import (
	"errors"
	"fmt"
)

// Canonical denial reasons for the two authentication failures. The strings
// are part of the wire contract and must not change.
const (
	ReasonUsernameNotFound  = "Username not found"
	ReasonIncorrectPassword = "Incorrect password"
)

// Denial is a terminal, non-exceptional negative outcome of policy
// evaluation. It is an error so services can return it through the usual
// (value, error) channel, but callers must treat it as a business result,
// not a fault.
type Denial struct {
	Reason string
}

func (d Denial) Error() string { return d.Reason }

// StoreError wraps a failed store round-trip. Op names the operation that
// failed; the underlying driver diagnostic is preserved verbatim.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

// Sentinel row-level outcomes surfaced by the repositories.
var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrUsernameTaken     = errors.New("username already in use")
	ErrFundNotFound      = errors.New("fund not found")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrPledgerNotFound   = errors.New("pledger not found")
	ErrNonProfitNotFound = errors.New("nonprofit not found")
)
