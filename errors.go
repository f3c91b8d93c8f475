package vesting

import (
	"errors"

	"github.com/xraph/vesting/benefit"
	"github.com/xraph/vesting/transfer"
	"github.com/xraph/vesting/types"
)

// Sentinel errors for common failure scenarios.
var (
	// Input errors, rejected before any state mutation.
	ErrInvalidInput   = errors.New("vesting: invalid input")
	ErrEmptyAsset     = errors.New("vesting: empty asset")
	ErrEmptyAccount   = errors.New("vesting: empty account")
	ErrLengthMismatch = errors.New("vesting: beneficiaries and amounts length mismatch")
	ErrZeroDuration   = errors.New("vesting: zero duration with non-zero amount")

	// Authorization errors, rejected before any state mutation.
	ErrNoCaller     = errors.New("vesting: no caller in context")
	ErrUnauthorized = errors.New("vesting: caller not authorized")

	// Lookup errors.
	ErrBenefitNotFound = errors.New("vesting: benefit not found")

	// Transfer errors: the enclosing operation aborts with ledger state
	// unchanged. The underlying transfer.Error is wrapped alongside.
	ErrTransferFailed = errors.New("vesting: transfer failed")

	// Store errors.
	ErrStoreNotReady = errors.New("vesting: store not ready")
	ErrStoreClosed   = errors.New("vesting: store is closed")
)

// IsInputError returns true if the error is a pre-state-mutation input
// rejection; the caller must retry with corrected input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyAsset) ||
		errors.Is(err, ErrEmptyAccount) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrZeroDuration)
}

// IsAuthError returns true if the error is an authorization rejection.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNoCaller) || errors.Is(err, ErrUnauthorized)
}

// IsTransferError returns true if the error came from the external asset
// movement capability. The ledger state is unchanged when this is returned
// from a mutation.
func IsTransferError(err error) bool {
	var terr *transfer.Error
	return errors.Is(err, ErrTransferFailed) || errors.As(err, &terr)
}

// IsArithmeticError returns true if the error indicates checked arithmetic
// failing or a corrupted record; both are fatal for the enclosing operation
// and are never silently saturated.
func IsArithmeticError(err error) bool {
	return types.IsArithmeticError(err) || errors.Is(err, benefit.ErrCorrupted)
}
