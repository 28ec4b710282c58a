// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/MKhiriev/go-postcrossing/models"
)

// idTag is the rule applied to user and postcard ids.
const idTag = "required,uuid"

// RequestValidator checks request bodies and identifiers with
// go-playground/validator. Struct rules come from `validate` tags on the
// models; "notblank" rejects empty and whitespace-only strings.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names ("senderId") instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)

	return &RequestValidator{validate: v}
}

// Validate accepts [models.RegisterRequest], [models.AddressRequest] (value or
// pointer) and string ids. For structs, fields restricts validation to the
// named Go struct fields.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, models.AddressRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.RegisterRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value, fields...)
	case *models.AddressRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value, fields...)
	case string:
		return v.validateID(ctx, value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	if len(fields) == 0 {
		return convertError(v.validate.StructCtx(ctx, obj))
	}

	typ := reflect.TypeOf(obj)
	for _, f := range fields {
		if _, ok := typ.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return convertError(v.validate.StructPartialCtx(ctx, obj, fields...))
}

func (v *RequestValidator) validateID(ctx context.Context, id string) error {
	if err := v.validate.VarCtx(ctx, id, idTag); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	return nil
}

// convertError reports the first failed field as ErrMissingField.
func convertError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, validationErrors[0].Field())
	}

	return err
}
