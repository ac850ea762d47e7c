package main

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/myrjola/reportdesk/internal/e2etest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReportValues() url.Values {
	return url.Values{
		"departmentNo":          {"D-1024"},
		"internalAffairsCaseNo": {"IA-2023-117"},
		"name":                  {"Jane Roe"},
		"alias":                 {"JR"},
		"address":               {"42 Elm Street"},
		"city":                  {"Springfield"},
		"state":                 {"IL"},
		"zip":                   {"62704"},
		"phone":                 {"(555) 123-4567"},
		"employerSchool":        {"Springfield High"},
		"race":                  {"Unknown"},
		"gender":                {"Female"},
		"dob":                   {"1980-05-12"},
		"age":                   {"45"},
		"sex":                   {"Female"},
		"phoneSecondary":        {"(555) 765-4321"},
		"natureOfComplaint":     {"Excessive force"},
		"complaintAgainst":      {"Officer Smith"},
		"badgeNos":              {"4411"},
		"incidentDate":          {"2024-01-01"},
		"incidentTime":          {"21:15"},
		"reportedDateTime":      {"2024-01-02T09:00"},
		"howReported":           {"Phone"},
		"incidentLocation":      {"500 Oak Avenue"},
		"distArea":              {"North"},
		"beat":                  {"12"},
		"incidentDescription":   {"Complainant reports an altercation outside a bar."},
	}
}

func Test_application_submitReportValidation(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	values := validReportValues()
	values.Set("phone", "555-1234")
	values.Set("age", "150")
	values.Del("beat")
	resp, err := server.Client().PostForm(ctx, "/views/side-by-side", "/report/submit", values)
	require.NoError(t, err)
	doc := readDoc(t, resp, http.StatusUnprocessableEntity)

	assert.Equal(t, "Phone must be in format (XXX) XXX-XXXX", strings.TrimSpace(doc.Find("#phone-error").Text()))
	assert.Equal(t, "Please enter a valid age (0-120)", strings.TrimSpace(doc.Find("#age-error").Text()))
	assert.Equal(t, "This field is required", strings.TrimSpace(doc.Find("#beat-error").Text()))
	assert.Equal(t, 0, doc.Find("#name-error").Length())
	ariaInvalid, _ := doc.Find("#phone").Attr("aria-invalid")
	assert.Equal(t, "true", ariaInvalid)

	// Entered values are kept so that they can be corrected.
	value, _ := doc.Find("#phone").Attr("value")
	assert.Equal(t, "555-1234", value)
	require.Equal(t, "Police Report Form - Side by Side View", strings.TrimSpace(doc.Find("main h1").Text()))
}

func Test_application_submitReport(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	doc, err := server.Client().SubmitForm(ctx, "/views/side-by-side", "/report/submit", validReportValues())
	require.NoError(t, err)

	// A valid side-by-side submission moves on to the summary.
	require.Equal(t, "Police Report Summary", strings.TrimSpace(doc.Find("main h1").First().Text()))
	narrative := doc.Find("#summary-narrative .narrative").Text()
	assert.Contains(t, narrative, "2024-01-01")
	assert.Contains(t, narrative, "Jane Roe")
	assert.NotContains(t, narrative, "June 15, 2023")
}

func Test_application_submitReportAccordion(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	// The accordion is not validated and stays on the same view.
	doc, err := server.Client().SubmitForm(ctx, "/views/accordion", "/report/submit",
		url.Values{"departmentNo": {"D-77"}})
	require.NoError(t, err)
	require.Equal(t, "Police Report Form - Accordion View", strings.TrimSpace(doc.Find("main h1").Text()))
	require.Equal(t, "Your changes have been saved.", strings.TrimSpace(doc.Find(".flash").Text()))
	value, _ := doc.Find("#departmentNo").Attr("value")
	require.Equal(t, "D-77", value)

	// The message is shown once.
	doc, err = server.Client().GetDoc(ctx, "/views/accordion")
	require.NoError(t, err)
	require.Equal(t, 0, doc.Find(".flash").Length())
}

func Test_application_submitReportHTMX(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()
	token := csrfToken(t, client, "/views/tabbed")

	values := url.Values{"departmentNo": {"D-1"}, "csrf_token": {token}}
	resp, err := client.PostHTMX(ctx, "/report/submit", e2etest.HTMXRequest{
		Target:    "view",
		CSRFToken: token,
		Values:    values,
	})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "/views/summary", resp.Header.Get("Hx-Redirect"))
}

func Test_application_updateFields(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()
	token := csrfToken(t, client, "/views/side-by-side")

	tests := []struct {
		name      string
		field     string
		value     string
		wantError string
	}{
		{name: "invalid phone", field: "phone", value: "555-1234", wantError: "Phone must be in format (XXX) XXX-XXXX"},
		{name: "valid phone", field: "phone", value: "(555) 123-4567", wantError: ""},
		{name: "blank phone", field: "phone", value: "", wantError: ""},
		{name: "invalid zip", field: "zip", value: "1234", wantError: "ZIP code must be in format XXXXX or XXXXX-XXXX"},
		{name: "invalid age", field: "age", value: "150", wantError: "Please enter a valid age (0-120)"},
		{name: "valid age", field: "age", value: "45", wantError: ""},
		{name: "invalid date", field: "dob", value: "yesterday", wantError: "Please enter a valid date"},
		{name: "blank name", field: "name", value: "", wantError: "This field is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.PostHTMX(ctx, "/report/fields", e2etest.HTMXRequest{
				Target:      "field-" + tt.field,
				TriggerName: tt.field,
				CSRFToken:   token,
				Values:      url.Values{tt.field: {tt.value}, "csrf_token": {token}},
			})
			require.NoError(t, err)
			doc := readDoc(t, resp, http.StatusOK)

			fragment := doc.Find("#field-" + tt.field)
			require.Equal(t, 1, fragment.Length())
			require.Equal(t, 0, doc.Find("header").Length(), "only the field comes back")
			require.Equal(t, tt.wantError, strings.TrimSpace(fragment.Find(".field-error").Text()))
		})
	}

	// The canonical report keeps the last value.
	doc, err := client.GetDoc(ctx, "/views/side-by-side")
	require.NoError(t, err)
	value, _ := doc.Find("#age").Attr("value")
	require.Equal(t, "45", value)

	resp, err := client.PostHTMX(ctx, "/report/fields", e2etest.HTMXRequest{
		Target:      "field-bogus",
		TriggerName: "bogus",
		CSRFToken:   token,
		Values:      url.Values{"bogus": {"x"}, "csrf_token": {token}},
	})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_application_updateFieldsKeepsText(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()
	token := csrfToken(t, client, "/views/tabbed")

	value := `D<9 & <script>alert(1)</script>`
	resp, err := client.PostHTMX(ctx, "/report/fields", e2etest.HTMXRequest{
		Target:      "field-departmentNo",
		TriggerName: "departmentNo",
		CSRFToken:   token,
		Values:      url.Values{"departmentNo": {value}, "csrf_token": {token}},
	})
	require.NoError(t, err)
	doc := readDoc(t, resp, http.StatusOK)
	got, _ := doc.Find("#departmentNo").Attr("value")
	require.Equal(t, value, got, "values are stored verbatim")
	require.Equal(t, 0, doc.Find("script").Length(), "values are escaped when rendered")
	require.Equal(t, 0, doc.Find(".field-error").Length(), "only the side-by-side form validates on change")

	// The summary narrative escapes the substituted name as well.
	_, err = client.SubmitForm(ctx, "/views/accordion", "/report/submit", url.Values{"name": {"a<b"}})
	require.NoError(t, err)
	doc, err = client.GetDoc(ctx, "/views/summary")
	require.NoError(t, err)
	require.Contains(t, doc.Find("#summary-narrative .narrative").Text(), "identified as a<b reported")
}

func Test_application_resetReport(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()

	_, err := client.SubmitForm(ctx, "/views/accordion", "/report/submit", url.Values{"departmentNo": {"D-77"}})
	require.NoError(t, err)

	token := csrfToken(t, client, "/views/accordion")
	resp, err := client.PostHTMX(ctx, "/report/reset", e2etest.HTMXRequest{
		Target:    "view",
		CSRFToken: token,
		Values:    url.Values{"csrf_token": {token}},
	})
	require.NoError(t, err)
	doc := readDoc(t, resp, http.StatusOK)
	value, _ := doc.Find("#departmentNo").Attr("value")
	require.Empty(t, value)
}
