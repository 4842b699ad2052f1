package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrNothingToUpdate       = errors.New("nothing to update")
	ErrUndefinedStatus       = errors.New("undefined order status")
	ErrNegativeAmount        = errors.New("amount must not be negative")
	ErrInvalidCollectedBy    = errors.New("invalid collected by")
	ErrInvalidPaymentSubType = errors.New("invalid payment sub type")
	ErrSubTypeRequired       = errors.New("payment sub type is required when courier collected the payment")
	ErrInvalidFilter         = errors.New("invalid order filter")
	ErrReadOnlyField         = errors.New("field is not editable by this operation")

	ErrOrderNotFound = errors.New("order not found")
	ErrOrderArchived = errors.New("order is archived")
	ErrForbidden     = errors.New("order is not available to this user")
)
