package bridge

import (
	"fmt"
)

// Verify Interface Compliance
var _ error = (*Err)(nil)

// Err is a distinguishable bridge failure. Every precondition violation
// aborts the whole operation with one of these; nothing is retried
// internally.
type Err struct {
	Code    int64  `json:"code"`
	Message string `json:"error"`
}

func (e Err) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e Err) Enrich(message string) Err {
	return Err{
		Code:    e.Code,
		Message: fmt.Sprintf("%s: %s", e.Message, message),
	}
}

// Is matches by code so enriched and wrapped values still compare equal
// under errors.Is.
func (e Err) Is(target error) bool {
	t, ok := target.(Err)
	return ok && t.Code == e.Code
}

var (
	ErrUnauthorized       = Err{Code: 1, Message: "caller is not the bridge administrator"}
	ErrAlreadyTerminated  = Err{Code: 2, Message: "bridge is terminated"}
	ErrInvalidConfig      = Err{Code: 3, Message: "amount per unit must be positive"}
	ErrNotFound           = Err{Code: 4, Message: "resource type was never defined"}
	ErrResourceNotDefined = Err{Code: 5, Message: "resource type is not defined or not active"}
	ErrDuplicateParcel    = Err{Code: 6, Message: "parcel key already registered"}
	ErrInvalidAmount      = Err{Code: 7, Message: "amount is not an exact multiple of the exchange rate"}
	ErrZeroAmount         = Err{Code: 8, Message: "transfer amount must be positive"}
	ErrInvalidSender      = Err{Code: 9, Message: "deposit notification from unrecognized caller"}
	ErrMalformedData      = Err{Code: 10, Message: "accompanying data does not carry a parcel key"}
	ErrBatchNotSupported  = Err{Code: 11, Message: "batch deposits are not supported"}
	ErrInvalidEconomy     = Err{Code: 12, Message: "ledger does not implement the multi-token interface"}
)
