package submission_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/submission"
	"github.com/myrjola/reportdesk/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestService_Submit(t *testing.T) {
	var logs testhelpers.LogRecorder
	svc := submission.New(logs.Logger(), 10*time.Millisecond)

	r := report.New().Set(report.Name, "Jane Roe").Set(report.Beat, "12")
	start := time.Now()
	receipt, err := svc.Submit(context.Background(), r)
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	_, err = uuid.Parse(receipt.ID)
	require.NoError(t, err)
	record := logs.Find(t, "report submitted")
	require.NotNil(t, record)
	require.Equal(t, "INFO", record[slog.LevelKey])
	require.Equal(t, receipt.ID, record["receipt"])
	fields, ok := record["report"].(map[string]any)
	require.True(t, ok, record)
	require.Len(t, fields, len(report.Fields()))
	require.Equal(t, "Jane Roe", fields["name"])
	require.Equal(t, "12", fields["beat"])
	require.Equal(t, "", fields["incidentDescription"])
}

func TestService_SubmitCancelled(t *testing.T) {
	var logs testhelpers.LogRecorder
	svc := submission.New(logs.Logger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Submit(ctx, report.New())
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, logs.Find(t, "report submitted"))
}

func TestService_SubmitWithoutDelay(t *testing.T) {
	svc := submission.New(testhelpers.NewLogger(&bytes.Buffer{}), 0)
	first, err := svc.Submit(context.Background(), report.New())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), report.New())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}
