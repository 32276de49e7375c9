// Package httperr maps domain errors to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/brewpoints/internal/domain"
	"github.com/GlebRadaev/brewpoints/pkg/utils"
)

const internalMessage = "Internal server error"

var statuses = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrInvalidTransactionType, http.StatusUnprocessableEntity},
	{domain.ErrUnknownDrink, http.StatusUnprocessableEntity},
	{domain.ErrInvalidReward, http.StatusUnprocessableEntity},
	{domain.ErrInvalidReferralCode, http.StatusUnprocessableEntity},
	{domain.ErrSelfReferral, http.StatusUnprocessableEntity},
	{domain.ErrInvalidRole, http.StatusUnprocessableEntity},
	{domain.ErrInvalidSettings, http.StatusUnprocessableEntity},
	{domain.ErrInvalidDetails, http.StatusUnprocessableEntity},
	{domain.ErrInsufficientPoints, http.StatusPaymentRequired},
	{domain.ErrProfileNotFound, http.StatusNotFound},
	{domain.ErrRewardNotFound, http.StatusNotFound},
	{domain.ErrRedemptionNotFound, http.StatusNotFound},
	{domain.ErrRewardInactive, http.StatusConflict},
	{domain.ErrRewardOutOfStock, http.StatusConflict},
	{domain.ErrRedemptionCompleted, http.StatusConflict},
	{domain.ErrAlreadyReferred, http.StatusConflict},
	{domain.ErrEmailTaken, http.StatusConflict},
	{domain.ErrIdempotencyKeyReused, http.StatusConflict},
	{domain.ErrConcurrencyConflict, http.StatusConflict},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
}

// Status returns the HTTP status for err, 500 for anything unrecognised.
func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// Respond writes err with its mapped status. Unrecognised errors are reported
// without their text.
func Respond(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		utils.RespondWithError(w, status, internalMessage)
		return
	}
	utils.RespondWithError(w, status, err.Error())
}
