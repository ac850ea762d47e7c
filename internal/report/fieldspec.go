package report

// Input is the kind of form control used to edit a field.
type Input string

const (
	InputText          Input = "text"
	InputTel           Input = "tel"
	InputDate          Input = "date"
	InputTime          Input = "time"
	InputDateTimeLocal Input = "datetime-local"
	InputNumber        Input = "number"
	InputSelect        Input = "select"
	InputTextarea      Input = "textarea"
)

// FieldSpec describes how a field is presented in the forms.
type FieldSpec struct {
	Field   Field
	Label   string
	Input   Input
	Options []string
}

var (
	usStates = []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY",
		"LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND",
		"OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	}
	genders       = []string{"Male", "Female", "Non-binary", "Other", "Prefer not to say"}
	sexes         = []string{"Male", "Female", "Other"}
	reportMethods = []string{"In Person", "Phone", "Email", "Mail", "Online", "Other"}
)

var fieldSpecs = map[Field]FieldSpec{
	DepartmentNo:          {Field: DepartmentNo, Label: "Department No.", Input: InputText},
	InternalAffairsCaseNo: {Field: InternalAffairsCaseNo, Label: "Internal Affairs Case No.", Input: InputText},
	Name:                  {Field: Name, Label: "Name", Input: InputText},
	Alias:                 {Field: Alias, Label: "Alias", Input: InputText},
	Address:               {Field: Address, Label: "Address", Input: InputText},
	City:                  {Field: City, Label: "City", Input: InputText},
	State:                 {Field: State, Label: "State", Input: InputSelect, Options: usStates},
	Zip:                   {Field: Zip, Label: "ZIP", Input: InputText},
	Phone:                 {Field: Phone, Label: "Phone", Input: InputTel},
	EmployerSchool:        {Field: EmployerSchool, Label: "Employer/School", Input: InputText},
	Race:                  {Field: Race, Label: "Race", Input: InputText},
	Gender:                {Field: Gender, Label: "Gender", Input: InputSelect, Options: genders},
	DOB:                   {Field: DOB, Label: "Date of Birth", Input: InputDate},
	Age:                   {Field: Age, Label: "Age", Input: InputNumber},
	Sex:                   {Field: Sex, Label: "Sex", Input: InputSelect, Options: sexes},
	PhoneSecondary:        {Field: PhoneSecondary, Label: "Phone (Secondary)", Input: InputTel},
	NatureOfComplaint:     {Field: NatureOfComplaint, Label: "Nature of Complaint", Input: InputText},
	ComplaintAgainst:      {Field: ComplaintAgainst, Label: "Complaint Against (Name[s])", Input: InputText},
	BadgeNos:              {Field: BadgeNos, Label: "Badge No(s)", Input: InputText},
	IncidentDate:          {Field: IncidentDate, Label: "Date", Input: InputDate},
	IncidentTime:          {Field: IncidentTime, Label: "Time", Input: InputTime},
	ReportedDateTime:      {Field: ReportedDateTime, Label: "Date/Time Reported", Input: InputDateTimeLocal},
	HowReported:           {Field: HowReported, Label: "How Reported", Input: InputSelect, Options: reportMethods},
	IncidentLocation:      {Field: IncidentLocation, Label: "Incident Location", Input: InputText},
	DistArea:              {Field: DistArea, Label: "Dist/Area", Input: InputText},
	Beat:                  {Field: Beat, Label: "Beat", Input: InputText},
	IncidentDescription:   {Field: IncidentDescription, Label: "Description of Incident", Input: InputTextarea},
}

// Spec returns the presentation of field f.
func Spec(f Field) (FieldSpec, bool) {
	spec, ok := fieldSpecs[f]
	return spec, ok
}

// MustSpec is like Spec but panics for unknown fields. Only use it with the Field constants.
func MustSpec(f Field) FieldSpec {
	spec, ok := fieldSpecs[f]
	if !ok {
		panic("report: no spec for field " + string(f))
	}
	return spec
}
