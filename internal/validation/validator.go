// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/mediabrowser/internal/routing"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error returns the human-readable message.
func (e FieldError) Error() string {
	return e.Message
}

// Errors collects every failed rule of one struct.
type Errors struct {
	Fields []FieldError
}

// Error joins the field messages.
func (ve *Errors) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.Fields))
	for i, f := range ve.Fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// Details returns the field errors in a form suitable for API error details.
func (ve *Errors) Details() map[string]interface{} {
	return map[string]interface{}{"fields": ve.Fields}
}

// GetValidator returns the shared validator with the catalog rules registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// catalogpath: an absolute catalog path or route pattern, or a reserved route key.
		_ = validate.RegisterValidation("catalogpath", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return strings.HasPrefix(s, "/") || routing.IsReserved(s)
		})

		// httpmethod: an HTTP method token accepted by upstream catalogs.
		_ = validate.RegisterValidation("httpmethod", func(fl validator.FieldLevel) bool {
			switch strings.ToUpper(fl.Field().String()) {
			case "GET", "POST", "PUT", "PATCH", "DELETE", "HEAD":
				return true
			}
			return false
		})
	})
	return validate
}

// ValidateStruct validates s. It returns nil or an *Errors.
func ValidateStruct(s interface{}) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &Errors{Fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}}}
	}

	fields := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		name := fieldName(fe)
		fields[i] = FieldError{
			Field:   name,
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: translateError(fe, name),
		}
	}
	return &Errors{Fields: fields}
}

// fieldName drops the root struct name from the namespace, so nested config
// errors read "Routes[2].Pattern" rather than "Config.Routes[2].Pattern".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

var errorMessageTemplates = map[string]string{
	"required":    "%s is required",
	"url":         "%s must be a valid URL",
	"catalogpath": "%s must start with '/' or be a reserved route key",
	"httpmethod":  "%s must be a valid HTTP method",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func translateError(fe validator.FieldError, field string) string {
	tag, param := fe.Tag(), fe.Param()
	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}
	isString := fe.Kind().String() == "string"
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
