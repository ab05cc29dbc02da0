package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrMissingParameters is the create-order validation failure. The
	// message is part of the wire contract.
	ErrMissingParameters = errors.New("Missing parameters")

	// ErrStorage covers a failed or unreachable backing store. Callers only
	// ever see a generic server error; the detail stays in logs.
	ErrStorage = errors.New("storage failure")

	// ErrUpstream covers the external listing source being unreachable or
	// rejecting us. Fatal to a sync run.
	ErrUpstream = errors.New("upstream listing source failure")

	// ErrFulfillment covers wallet or exchange-library rejections and
	// on-chain reverts. Recoverable by retrying the purchase.
	ErrFulfillment = errors.New("fulfillment failure")

	// ErrWalletNotConnected is raised before any network call when a buy is
	// attempted without an active signer.
	ErrWalletNotConnected = errors.New("connect wallet first")

	// ErrNoOrderDescriptor means a listing row carries no usable signed
	// order payload.
	ErrNoOrderDescriptor = errors.New("listing has no order descriptor")

	// ErrPurchaseInFlight rejects a buy while another one is still pending.
	ErrPurchaseInFlight = errors.New("purchase already in progress")
)
