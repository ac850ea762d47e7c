// Package report defines the police report data model: its named fields, how they are laid out in sections next to
// the scanned document and how their values are validated.
package report

import (
	"maps"
	"strings"

	"github.com/myrjola/reportdesk/internal/errors"
)

// Field is the name of one of the report's string fields.
type Field string

const (
	DepartmentNo          Field = "departmentNo"
	InternalAffairsCaseNo Field = "internalAffairsCaseNo"
	Name                  Field = "name"
	Alias                 Field = "alias"
	Address               Field = "address"
	City                  Field = "city"
	State                 Field = "state"
	Zip                   Field = "zip"
	Phone                 Field = "phone"
	EmployerSchool        Field = "employerSchool"
	Race                  Field = "race"
	Gender                Field = "gender"
	DOB                   Field = "dob"
	Age                   Field = "age"
	Sex                   Field = "sex"
	PhoneSecondary        Field = "phoneSecondary"
	NatureOfComplaint     Field = "natureOfComplaint"
	ComplaintAgainst      Field = "complaintAgainst"
	BadgeNos              Field = "badgeNos"
	IncidentDate          Field = "incidentDate"
	IncidentTime          Field = "incidentTime"
	ReportedDateTime      Field = "reportedDateTime"
	HowReported           Field = "howReported"
	IncidentLocation      Field = "incidentLocation"
	DistArea              Field = "distArea"
	Beat                  Field = "beat"
	IncidentDescription   Field = "incidentDescription"
)

// fields lists every report field in form order.
var fields = []Field{
	DepartmentNo, InternalAffairsCaseNo,
	Name, Alias, Address, City, State, Zip, Phone, EmployerSchool, Race, Gender, DOB, Age, Sex, PhoneSecondary,
	NatureOfComplaint, ComplaintAgainst, BadgeNos, IncidentDate, IncidentTime, ReportedDateTime, HowReported,
	IncidentLocation, DistArea, Beat, IncidentDescription,
}

var ErrUnknownField = errors.NewSentinel("unknown report field")

// Fields returns every report field in form order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ParseField returns the Field named s or ErrUnknownField.
func ParseField(s string) (Field, error) {
	for _, f := range fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Report holds the values of a police report. Missing fields read as empty strings.
//
// Report is treated as an immutable value: Set returns an updated copy.
type Report map[Field]string

// New returns a report with every field empty.
func New() Report {
	r := make(Report, len(fields))
	for _, f := range fields {
		r[f] = ""
	}
	return r
}

// Get returns the value of field f.
func (r Report) Get(f Field) string {
	return r[f]
}

// Set returns a copy of r with field f set to value. Values are kept verbatim, they are escaped when rendered.
func (r Report) Set(f Field, value string) Report {
	out := maps.Clone(r)
	if out == nil {
		out = New()
	}
	out[f] = value
	return out
}

// Merge returns a copy of r with every known field in values applied.
//
// Unknown keys are ignored so that form posts can carry other inputs such as the CSRF token.
func (r Report) Merge(values map[string]string) Report {
	out := maps.Clone(r)
	if out == nil {
		out = New()
	}
	for key, value := range values {
		if f, err := ParseField(key); err == nil {
			out[f] = value
		}
	}
	return out
}

// IsEmpty reports whether every field is blank.
func (r Report) IsEmpty() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
