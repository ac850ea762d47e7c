package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/myrjola/reportdesk/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(&buf, nil)))

	ctx := logging.WithAttrs(context.Background(), slog.String("view", "tabbed"))
	sibling := logging.WithAttrs(ctx, slog.String("tab", "demographics"))
	other := logging.WithAttrs(ctx, slog.String("tab", "personal-info"))

	logger.With(slog.String("component", "test")).InfoContext(sibling, "switched tab")
	require.Contains(t, buf.String(), "view=tabbed")
	require.Contains(t, buf.String(), "tab=demographics")
	require.Contains(t, buf.String(), "component=test")

	require.Len(t, logging.Attrs(ctx), 1)
	require.Equal(t, slog.String("tab", "personal-info"), logging.Attrs(other)[1])
	require.Equal(t, slog.String("tab", "demographics"), logging.Attrs(sibling)[1])
	require.Empty(t, logging.Attrs(context.Background()))
}
