// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-post-client/models"
	"github.com/go-playground/validator/v10"
)

// tagOrder is the order in which failed rules are reported; the first
// matching tag decides the message.
var tagOrder = []string{"required", "email", "min", "file"}

type formValidator struct {
	validate *validator.Validate
}

// NewValidator returns the [Validator] for the client forms: login
// credentials, registration profile and new post.
func NewValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &formValidator{validate: v}
}

func (f *formValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var required string
	switch obj.(type) {
	case models.Credentials, *models.Credentials:
		required = MsgLoginRequired
	case models.Profile, *models.Profile:
		required = MsgRegisterRequired
	case models.NewPost, *models.NewPost:
		required = MsgPostRequired
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = f.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = f.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: MsgInvalidInput}
	}

	return &ValidationError{Message: messageFor(fieldErrs, required)}
}

func messageFor(errs validator.ValidationErrors, required string) string {
	for _, tag := range tagOrder {
		for _, fe := range errs {
			if fe.Tag() != tag {
				continue
			}
			switch tag {
			case "required":
				return required
			case "email":
				return MsgInvalidEmail
			case "min":
				if fe.Field() == "password" {
					return MsgPasswordTooShort
				}
			case "file":
				return MsgImageNotFound
			}
		}
	}
	return MsgInvalidInput
}
