package summary

import "github.com/myrjola/reportdesk/internal/report"

// Data is the case summary. Apart from the values taken from the report it is fixed demo content.
type Data struct {
	Incident  []KV
	Recovered []Record
	Missing   []Record
	Witnesses []Record
	Injuries  []Record
	Vehicles  []Record
	Suspects  []Record
}

// Build assembles the summary for r.
func Build(r report.Report) Data {
	return Data{
		Incident: []KV{
			{Key: "date", Value: valueOr(r, report.IncidentDate, "June 15, 2023")},
			{Key: "time", Value: valueOr(r, report.IncidentTime, "22:30")},
			{Key: "location", Value: valueOr(r, report.IncidentLocation, "1234 Main Street")},
			{Key: "natureOfComplaint", Value: valueOr(r, report.NatureOfComplaint, "Disturbance with shots fired")},
			{Key: "reportedDateTime", Value: valueOr(r, report.ReportedDateTime, "2023-06-15T23:15")},
			{Key: "reportedBy", Value: valueOr(r, report.Name, "Jane Doe")},
			{Key: "howReported", Value: valueOr(r, report.HowReported, "Phone")},
		},
		Recovered: []Record{
			record(Weapon,
				"item", "9mm Smith & Wesson handgun",
				"serialNumber", "SW9238-B (partially damaged)",
				"location", "Sidewalk outside main entrance",
				"condition", "Loaded, safety off"),
			record(Evidence,
				"item", "Shell casings (5)",
				"serialNumber", "N/A",
				"location", "Living room floor",
				"condition", "9mm caliber"),
			record(Evidence,
				"item", "Surveillance video",
				"serialNumber", "N/A",
				"location", "Building security system",
				"condition", "Retrieved, under review"),
		},
		Missing: []Record{
			record(Weapon,
				"item", "Glock 17 pistol",
				"serialNumber", "GK7721",
				"description", "Black, registered to homeowner"),
			record(Evidence,
				"item", "Laptop computer",
				"serialNumber", "Unknown",
				"description", "MacBook Pro, silver"),
		},
		Witnesses: []Record{
			record(Witness,
				"name", valueOr(r, report.Name, "Jane Doe"),
				"contact", valueOr(r, report.Phone, "(555) 123-4567"),
				"statement", "Heard gunshots and observed silver sedan leaving scene",
				"credibility", "Reliable - provided consistent account"),
			record(Witness,
				"name", "John Smith",
				"contact", "(555) 987-6543",
				"statement", "Observed three males running from the building",
				"credibility", "Partial view only - limited description provided"),
		},
		Injuries: []Record{
			record(Injury,
				"victim", "Robert Johnson",
				"injuries", "Gunshot wound to right leg",
				"treatment", "Transported to County General Hospital",
				"condition", "Stable"),
			record(Injury,
				"victim", "Maria Garcia",
				"injuries", "Laceration to forehead, bruising",
				"treatment", "Transported to County General Hospital",
				"condition", "Treated and released"),
		},
		Vehicles: []Record{
			record(Vehicle,
				"make", "Toyota",
				"model", "Camry",
				"color", "Silver",
				"year", "2019",
				"license", "ABC-123",
				"state", "CA",
				"involvement", "Possible suspect vehicle"),
		},
		Suspects: []Record{
			record(Suspect,
				"description", `Male, approx. 20-25 years old, 5'10", thin build, wearing dark hoodie`,
				"actions", "Fled scene on foot, potentially dropped recovered weapon",
				"status", "At large"),
			record(Suspect,
				"description", "Two additional males, no clear description available",
				"actions", "Fled scene on foot",
				"status", "At large"),
		},
	}
}

// record builds a Record from alternating keys and values.
func record(highlight Category, kv ...string) Record {
	fields := make([]KV, 0, len(kv)/2) //nolint:mnd // pairs
	for i := 0; i+1 < len(kv); i += 2 {
		fields = append(fields, KV{Key: kv[i], Value: kv[i+1]})
	}
	return Record{Highlight: highlight, Fields: fields}
}

// IncidentLines returns the incident details with their keys split into words.
func (d Data) IncidentLines() []Line {
	lines := make([]Line, 0, len(d.Incident))
	for _, kv := range d.Incident {
		lines = append(lines, Line{Label: splitCamel(kv.Key), Value: kv.Value})
	}
	return lines
}
