// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/avelram/go-reminders/models"
)

const (
	// FieldContent targets the reminder text.
	FieldContent = "content"

	// FieldImportant targets the reminder priority flag.
	FieldImportant = "important"
)

const (
	contentMinLength = 1
	contentMaxLength = 120
)

// ReminderValidator implements the Validator interface for reminder-related
// request models: CreateReminderRequest and ReminderUpdate.
type ReminderValidator struct {
}

// NewReminderValidator constructs a new ReminderValidator
// and returns it as the Validator interface.
func NewReminderValidator() Validator {
	return &ReminderValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.CreateReminderRequest / *models.CreateReminderRequest
//   - models.ReminderUpdate / *models.ReminderUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
// On failure the returned error is a *ValidationError listing every
// violated field.
func (v *ReminderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateReminderRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateReminderRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.ReminderUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ReminderUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateRequest checks that the content is 1-120 characters.
func (v *ReminderValidator) validateCreateRequest(_ context.Context, req models.CreateReminderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldContent:
			if n := utf8.RuneCountInString(req.Content); n < contentMinLength || n > contentMaxLength {
				errs.add(FieldContent, "must be between 1 and 120 characters")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

// validateUpdate checks a partial update: at least one field must be set,
// and content, when present, keeps the creation bounds.
func (v *ReminderValidator) validateUpdate(_ context.Context, update models.ReminderUpdate, fields ...string) error {
	errs := &ValidationError{}

	if update.Content == nil && update.Important == nil {
		errs.add(FieldContent, "at least one of content or important must be provided")
		return errs.orNil()
	}

	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if update.Content == nil {
				continue
			}
			if n := utf8.RuneCountInString(*update.Content); n < contentMinLength || n > contentMaxLength {
				errs.add(FieldContent, "must be between 1 and 120 characters")
			}
		case FieldImportant:
			// a *bool is either nil or valid, nothing to check
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
