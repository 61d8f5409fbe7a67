package economy

import "errors"

// Expected operation failures. Handlers map these to HTTP responses; none of
// them indicates a bug. Catalog reference errors are the exception and come
// through as *catalog.UnknownReferenceError.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrAlreadyClaimed    = errors.New("reward already claimed")
	ErrNoReward          = errors.New("no reward defined for this level")
	ErrLevelNotReached   = errors.New("level not reached")
	ErrTierLocked        = errors.New("pass tier not yet unlocked")
	ErrQuestIncomplete   = errors.New("quest goal not reached")
	ErrInvalidEquip      = errors.New("item not owned")
	ErrOnCooldown        = errors.New("daily claim still on cooldown")
	ErrUnknownCode       = errors.New("unknown redeem code")
)
