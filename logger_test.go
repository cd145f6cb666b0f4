package vecrank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/vecrank/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestLoggerLogRank(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithQuery("a.jpg").WithMetric("ssd").WithN(3)

	l.LogRank(context.Background(), 10, 3, time.Millisecond, nil)
	l.LogRank(context.Background(), 0, 0, time.Millisecond, errors.New("boom"))

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)

	assert.Equal(t, "rank completed", records[0]["msg"])
	assert.Equal(t, "DEBUG", records[0]["level"])
	assert.Equal(t, "a.jpg", records[0]["query"])
	assert.Equal(t, "ssd", records[0]["metric"])
	assert.Equal(t, float64(3), records[0]["n"])
	assert.Equal(t, float64(10), records[0]["scored"])

	assert.Equal(t, "rank failed", records[1]["msg"])
	assert.Equal(t, "ERROR", records[1]["level"])
	assert.Equal(t, "boom", records[1]["error"])
}

func TestLoggerLogLoad(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogLoad(context.Background(), "features.csv", 12, 8, nil)
	l.LogLoad(context.Background(), "missing.csv", 0, 0, errors.New("not found"))

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "dataset loaded", records[0]["msg"])
	assert.Equal(t, float64(12), records[0]["entries"])
	assert.Equal(t, float64(8), records[0]["dimension"])
	assert.Equal(t, "dataset load failed", records[1]["msg"])
}

func TestRankerLogs(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(newBufferLogger(&buf)))

	ds := model.Dataset{
		{ID: "A", Vector: []float32{0}},
		{ID: "B", Vector: []float32{1}},
	}
	_, err := r.Rank(context.Background(), ds, "A", "ssd", 1)
	require.NoError(t, err)
	_, err = r.Rank(context.Background(), ds, "A", "nope", 1)
	require.Error(t, err)

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)
	assert.Equal(t, "rank completed", records[0]["msg"])
	assert.Equal(t, float64(1), records[0]["returned"])
	assert.Equal(t, "rank failed", records[1]["msg"])
	assert.Equal(t, "nope", records[1]["metric"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogRank(context.Background(), 1, 1, 0, nil)
}
