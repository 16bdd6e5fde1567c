// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package http

import (
	"errors"
	"net/http"

	"github.com/avelram/go-reminders/internal/utils"
	"github.com/avelram/go-reminders/internal/validators"
	"github.com/avelram/go-reminders/models"
)

// writeError writes the generic JSON error envelope with the given status.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// writeValidationError writes the per-field 400 body for a validation
// failure. Falls back to the generic envelope when err is not a
// *validators.ValidationError.
func writeValidationError(w http.ResponseWriter, err error) {
	var vErr *validators.ValidationError
	if !errors.As(err, &vErr) {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, models.ValidationErrorResponse{Errors: vErr.Fields}, http.StatusBadRequest)
}
