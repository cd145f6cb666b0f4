package vecrank

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	assert.Equal(t, BasicMetricsStats{}, mc.GetStats())

	mc.RecordRank("ssd", 5, 100, 2*time.Millisecond, nil)
	mc.RecordRank("ssd", 5, 50, 4*time.Millisecond, errors.New("boom"))
	mc.RecordLoad(150, time.Second, nil)
	mc.RecordLoad(0, time.Second, errors.New("boom"))

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.RankCount)
	assert.Equal(t, int64(1), stats.RankErrors)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.RankAvgNanos)
	assert.Equal(t, int64(150), stats.ScoredEntries)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, int64(150), stats.LoadedEntries)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordRank("ssd", 1, 1, time.Second, nil)
	mc.RecordLoad(1, time.Second, nil)
}
