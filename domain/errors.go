package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized will throw if the caller lacks the required authorization
	ErrUnauthorized = errors.New("Unauthorized")

	// memo grammar errors
	ErrMalformedMemo = errors.New("malformed memo")

	// trading errors
	ErrPaused           = errors.New("market is paused")
	ErrListingFrozen    = errors.New("listing is frozen: otc price is below seller minimum")
	ErrNoPrice          = errors.New("otc price is zero, cannot trade")
	ErrAmountTooSmall   = errors.New("payment too small to fill any amount")
	ErrUnsupportedAsset = errors.New("unsupported asset")

	// oracle errors
	ErrOracleUnavailable   = errors.New("auction config not found")
	ErrOracleMisconfigured = errors.New("auction config is invalid")
)
