// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/starfield/star"
	"github.com/go-playground/validator/v10"
)

// Blob is a file selected in the form for attachment.
type Blob interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// Fields are the raw values emitted by the annotation form.
type Fields struct {

	// Date is the calendar date, formatted as [star.DateLayout].
	Date string `validate:"required,datetime=2006-01-02"`

	// Text is the memory text. Surrounding space is not significant.
	Text string `validate:"required"`

	// Attachment is the optional selected file.
	Attachment Blob `validate:"-"`
}

// ErrValidation is wrapped by every [ValidationError].
var ErrValidation = errors.New("invalid annotation")

// ValidationError reports the fields of a form that failed validation,
// keyed by lowercase field name.
type ValidationError struct {
	Fields map[string]string
}

func (ve *ValidationError) Error() string {
	msgs := make([]string, 0, len(ve.Fields))
	for _, f := range slices.Sorted(maps.Keys(ve.Fields)) {
		msgs = append(msgs, ve.Fields[f])
	}
	return "annotate: " + strings.Join(msgs, "; ")
}

func (ve *ValidationError) Unwrap() error {
	return ErrValidation
}

var validate = validator.New()

// Validate checks the fields and returns the memory they describe,
// without an attachment. It returns a [*ValidationError] on failure.
func (fs Fields) Validate() (star.Memory, error) {
	fs.Text = strings.TrimSpace(fs.Text)
	fs.Date = strings.TrimSpace(fs.Date)
	if err := validate.Struct(fs); err != nil {
		return star.Memory{}, formatValidationError(err)
	}
	date, err := time.Parse(star.DateLayout, fs.Date)
	if err != nil {
		return star.Memory{}, &ValidationError{Fields: map[string]string{"date": "date must be formatted as " + star.DateLayout}}
	}
	return star.Memory{Date: date, Text: fs.Text}, nil
}

// formatValidationError turns validator errors into field messages.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{Fields: map[string]string{}}
	for _, fe := range verrs {
		ve.Fields[strings.ToLower(fe.Field())] = formatFieldError(fe)
	}
	return ve
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "datetime":
		return fmt.Sprintf("%s must be formatted as %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
