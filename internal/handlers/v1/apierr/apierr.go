package apierr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/vending/venderr"
)

// FromDomain maps machine errors onto HTTP status codes. Anything not
// recognized is treated as an internal failure.
func FromDomain(message string, err error) error {
	switch {
	case errors.Is(err, venderr.ErrItemNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, venderr.ErrOutOfStock):
		return huma.NewError(http.StatusConflict, message, err)
	case errors.Is(err, venderr.ErrInsufficientFunds):
		return huma.NewError(http.StatusPaymentRequired, message, err)
	case errors.Is(err, venderr.ErrInsufficientChange):
		return huma.NewError(http.StatusConflict, message, err)
	case errors.Is(err, venderr.ErrInvalidValue),
		errors.Is(err, venderr.ErrInvalidCoin),
		errors.Is(err, venderr.ErrExceedsCeiling),
		errors.Is(err, venderr.ErrOutOfRange):
		return huma.NewError(http.StatusBadRequest, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
