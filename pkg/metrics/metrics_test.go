package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// InitMetrics重复注册会panic,测试中只初始化一次
var initOnce sync.Once

func initMetricsOnce() {
	initOnce.Do(InitMetrics)
}

// getCounterValue 读取CounterVec某组标签的当前值
func getCounterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	var metric dto.Metric
	counter, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	require.NoError(t, counter.Write(&metric))
	return metric.Counter.GetValue()
}

func TestCacheHitMiss(t *testing.T) {
	initMetricsOnce()

	before := getCounterValue(t, CacheHitsTotal, "local")
	CacheHit("local")
	CacheHit("local")
	assert.Equal(t, before+2, getCounterValue(t, CacheHitsTotal, "local"))

	beforeMiss := getCounterValue(t, CacheMissesTotal, "shared")
	CacheMiss("shared")
	assert.Equal(t, beforeMiss+1, getCounterValue(t, CacheMissesTotal, "shared"))
}

func TestHTTPRequest(t *testing.T) {
	initMetricsOnce()

	before := getCounterValue(t, HTTPRequestsTotal, "GET", "/api/v1/books", "200")
	HTTPRequest("GET", "/api/v1/books", 200, 15*time.Millisecond)
	HTTPRequest("GET", "/api/v1/books", 200, 20*time.Millisecond)
	assert.Equal(t, before+2, getCounterValue(t, HTTPRequestsTotal, "GET", "/api/v1/books", "200"))

	var metric dto.Metric
	histogram, err := HTTPRequestDuration.GetMetricWithLabelValues("GET", "/api/v1/books")
	require.NoError(t, err)
	require.NoError(t, histogram.(prometheus.Histogram).Write(&metric))
	assert.GreaterOrEqual(t, metric.Histogram.GetSampleCount(), uint64(2))
}

func TestNilSafeWhenUninitialized(t *testing.T) {
	// 指标未初始化时打点不能panic(库代码在测试中不依赖InitMetrics)
	savedHits, savedMisses := CacheHitsTotal, CacheMissesTotal
	savedReqs, savedDur := HTTPRequestsTotal, HTTPRequestDuration
	CacheHitsTotal, CacheMissesTotal = nil, nil
	HTTPRequestsTotal, HTTPRequestDuration = nil, nil
	defer func() {
		CacheHitsTotal, CacheMissesTotal = savedHits, savedMisses
		HTTPRequestsTotal, HTTPRequestDuration = savedReqs, savedDur
	}()

	assert.NotPanics(t, func() {
		CacheHit("local")
		CacheMiss("shared")
		HTTPRequest("GET", "/ping", 200, time.Millisecond)
	})
}
