package report

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	MsgRequired = "This field is required"
	MsgPhone    = "Phone must be in format (XXX) XXX-XXXX"
	MsgZip      = "ZIP code must be in format XXXXX or XXXXX-XXXX"
	MsgDate     = "Please enter a valid date"
	MsgAge      = "Please enter a valid age (0-120)"
)

const maxAge = 120

var (
	phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// dateLayouts are the date formats accepted for the date of birth.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Errors maps fields to their validation message. A nil or empty Errors means the report is valid.
type Errors map[Field]string

// Get returns the message for field f or an empty string.
func (e Errors) Get(f Field) string {
	return e[f]
}

// ValidateField checks a single changed value.
//
// The formatted fields phone, phoneSecondary, zip, dob and age may be left blank while editing; every other field is
// required. It returns an empty string when value is acceptable.
func ValidateField(f Field, value string) string {
	switch f {
	case Phone, PhoneSecondary:
		if value != "" && !phonePattern.MatchString(value) {
			return MsgPhone
		}
	case Zip:
		if value != "" && !zipPattern.MatchString(value) {
			return MsgZip
		}
	case DOB:
		if value != "" && !isDate(value) {
			return MsgDate
		}
	case Age:
		if value != "" && !isAge(value) {
			return MsgAge
		}
	default:
		if strings.TrimSpace(value) == "" {
			return MsgRequired
		}
	}
	return ""
}

// ValidateReport checks r before submission. Every blank field is required and non-blank values must be well-formed.
func ValidateReport(r Report) Errors {
	errs := Errors{}
	for _, f := range fields {
		value := r.Get(f)
		if strings.TrimSpace(value) == "" {
			errs[f] = MsgRequired
			continue
		}
		if msg := ValidateField(f, value); msg != "" {
			errs[f] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isDate(value string) bool {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func isAge(value string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return n >= 0 && n <= maxAge
}
