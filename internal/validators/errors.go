// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package validators

import (
	"errors"
	"strings"

	"github.com/avelram/go-reminders/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError carries every field violation found in a single request
// body. It is an error so validators can return it through the ordinary
// error path; transports unwrap it with errors.As to build the 400 body.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// add records one field violation.
func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
}

// orNil returns the error when at least one violation was recorded,
// otherwise nil, so callers can `return errs.orNil()` unconditionally.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
