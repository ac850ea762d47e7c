package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/myrjola/reportdesk/internal/e2etest"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/logging"
)

// TestReport walks through the main flow: load the form, change a field, submit and read the summary.
func TestReport(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	doc, err := client.GetDoc(ctx, "/views/tabbed")
	if err != nil {
		return errors.Wrap(err, "get tabbed view")
	}
	token, err := e2etest.CSRFToken(doc)
	if err != nil {
		return errors.Wrap(err, "csrf token")
	}

	resp, err := client.PostHTMX(ctx, "/report/fields", e2etest.HTMXRequest{
		Target:      "field-departmentNo",
		TriggerName: "departmentNo",
		CSRFToken:   token,
		Values:      url.Values{"departmentNo": {"SMOKE-1"}, "csrf_token": {token}},
	})
	if err != nil {
		return errors.Wrap(err, "update field")
	}
	if err = resp.Body.Close(); err != nil {
		return errors.Wrap(err, "close body")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New("unexpected field update status", slog.Int("status", resp.StatusCode))
	}

	if doc, err = client.SubmitForm(ctx, "/views/tabbed", "/report/submit", url.Values{
		"incidentDate": {"2024-01-01"},
	}); err != nil {
		return errors.Wrap(err, "submit report")
	}
	narrative := doc.Find("#summary-narrative").Text()
	if !strings.Contains(narrative, "2024-01-01") {
		return errors.New("summary is missing the submitted date", slog.String("narrative", narrative))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		baseURL  = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", baseURL))

	if client, err = e2etest.NewClient(baseURL); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestReport(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing report flow", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
