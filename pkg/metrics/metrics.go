// Package metrics 提供基于Prometheus的指标收集
//
// 指标清单：
//   - booklibrary_http_requests_total{method,path,status}: HTTP请求总数
//   - booklibrary_http_request_duration_seconds{method,path}: HTTP请求耗时分布
//   - booklibrary_cache_hits_total{tier}: 缓存命中数（tier=local|shared）
//   - booklibrary_cache_misses_total{tier}: 缓存未命中数（反序列化失败也计入miss）
//
// 使用方式：main中调用InitMetrics()，之后通过包级变量打点；
// /metrics端点由Handler()暴露，供Prometheus抓取。
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// CacheHitsTotal 缓存命中数（按缓存层分类）
	CacheHitsTotal *prometheus.CounterVec

	// CacheMissesTotal 缓存未命中数（按缓存层分类）
	CacheMissesTotal *prometheus.CounterVec
)

// InitMetrics 初始化并注册所有指标
// 注意：重复注册会panic，进程内只能调用一次（测试中用sync.Once保护）
func InitMetrics() {
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booklibrary_http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booklibrary_http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	CacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booklibrary_cache_hits_total",
			Help: "缓存命中数",
		},
		[]string{"tier"},
	)

	CacheMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booklibrary_cache_misses_total",
			Help: "缓存未命中数",
		},
		[]string{"tier"},
	)

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		CacheHitsTotal,
		CacheMissesTotal,
	)
}

// HTTPRequest 记录一次HTTP请求(计数+耗时)
// 指标未初始化时静默跳过
func HTTPRequest(method, path string, status int, latency time.Duration) {
	if HTTPRequestsTotal != nil {
		HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	}
	if HTTPRequestDuration != nil {
		HTTPRequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())
	}
}

// CacheHit 记录一次缓存命中
// 指标未初始化时静默跳过（允许库代码在测试中不依赖InitMetrics）
func CacheHit(tier string) {
	if CacheHitsTotal != nil {
		CacheHitsTotal.WithLabelValues(tier).Inc()
	}
}

// CacheMiss 记录一次缓存未命中
func CacheMiss(tier string) {
	if CacheMissesTotal != nil {
		CacheMissesTotal.WithLabelValues(tier).Inc()
	}
}

// Handler 返回/metrics端点的gin处理函数
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
