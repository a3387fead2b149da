package model

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Validated input ranges. Jobs outside these bounds cannot be produced
// on the shop's bag lines.
const (
	MinWidthIn  = 5.25
	MaxWidthIn  = 13.00
	MinBottomIn = 2.50
	MaxBottomIn = 7.00
	MinHeightIn = 6.75
	MaxHeightIn = 17.75
	MinGSM      = 55.0
	MaxGSM      = 150.0
	MinQuantity = 10000

	MaxNameLength = 75
	MaxColors     = 6
)

var (
	emailPattern  = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	mobilePattern = regexp.MustCompile(`^(?:\+91|0)?[789]\d{9}$`)
)

// RangeError reports a job field whose value falls outside its valid
// range. It carries the offending value and the bounds so callers can
// render their own message without matching strings.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	if math.IsInf(e.Max, 1) {
		return fmt.Sprintf("%s %g below minimum %g", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// FieldError reports a non-numeric job field that failed validation.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Validate checks every dimensional field against its production range.
// The first violation is returned as a *RangeError.
func (s JobSpec) Validate() error {
	if s.WidthIn < MinWidthIn || s.WidthIn > MaxWidthIn {
		return &RangeError{Field: "width", Value: s.WidthIn, Min: MinWidthIn, Max: MaxWidthIn}
	}
	if s.BottomIn < MinBottomIn || s.BottomIn > MaxBottomIn {
		return &RangeError{Field: "bottom", Value: s.BottomIn, Min: MinBottomIn, Max: MaxBottomIn}
	}
	if s.HeightIn < MinHeightIn || s.HeightIn > MaxHeightIn {
		return &RangeError{Field: "height", Value: s.HeightIn, Min: MinHeightIn, Max: MaxHeightIn}
	}
	if s.GSM < MinGSM || s.GSM > MaxGSM {
		return &RangeError{Field: "gsm", Value: s.GSM, Min: MinGSM, Max: MaxGSM}
	}
	if s.Quantity < MinQuantity {
		// Quantity has no production ceiling.
		return &RangeError{Field: "quantity", Value: float64(s.Quantity), Min: MinQuantity, Max: math.Inf(1)}
	}
	return nil
}

// ValidateCustomer checks the customer contact fields.
func ValidateCustomer(name, email, mobile string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxNameLength {
		return &FieldError{Field: "customer name", Value: name, Reason: fmt.Sprintf("must be 1-%d characters", MaxNameLength)}
	}
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return &FieldError{Field: "customer email", Value: email, Reason: "not a valid email address"}
	}
	mobile = strings.TrimSpace(mobile)
	if !mobilePattern.MatchString(mobile) {
		return &FieldError{Field: "customer mobile", Value: mobile, Reason: "must be a 10-digit number starting with 7, 8 or 9"}
	}
	return nil
}

// ValidateJobName checks the optional job name field.
func ValidateJobName(name string) error {
	if len(strings.TrimSpace(name)) > MaxNameLength {
		return &FieldError{Field: "job name", Value: name, Reason: fmt.Sprintf("must be at most %d characters", MaxNameLength)}
	}
	return nil
}

// ValidateColors checks that one non-empty color name is given per
// printed color.
func ValidateColors(printing int, colors []string) error {
	if printing < 0 || printing > MaxColors {
		return &FieldError{Field: "printing", Value: fmt.Sprint(printing), Reason: fmt.Sprintf("must be between 0 and %d colors", MaxColors)}
	}
	if len(colors) != printing {
		return &FieldError{Field: "colors", Value: fmt.Sprint(colors), Reason: fmt.Sprintf("expected %d color names, got %d", printing, len(colors))}
	}
	for i, c := range colors {
		if strings.TrimSpace(c) == "" {
			return &FieldError{Field: "colors", Value: c, Reason: fmt.Sprintf("color %d is empty", i+1)}
		}
	}
	return nil
}
