// Package metrics 定义服务的 Prometheus 指标：HTTP 请求、点赞/订阅切换结果、统计缓存命中情况。
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal 按路由模板、方法、状态码统计请求数
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidtube_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration 请求耗时
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidtube_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ToggleOperationsTotal 点赞/订阅切换结果，kind 为 video_like、comment_like、tweet_like、subscription
	ToggleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidtube_toggle_operations_total",
			Help: "Total number of like/subscription toggles by outcome",
		},
		[]string{"kind", "state"},
	)

	// ToggleConflictsTotal 切换时与并发请求冲突、按当前状态返回的次数
	ToggleConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidtube_toggle_conflicts_total",
			Help: "Total number of toggles resolved against a concurrent request",
		},
		[]string{"kind"},
	)

	StatsCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidtube_stats_cache_hits_total",
		Help: "Total number of channel stats cache hits",
	})

	StatsCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vidtube_stats_cache_misses_total",
		Help: "Total number of channel stats cache misses",
	})
)

// RecordHTTPRequest 记录一次 HTTP 请求
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordToggle 记录一次切换结果
func RecordToggle(kind, state string) {
	ToggleOperationsTotal.WithLabelValues(kind, state).Inc()
}

// RecordToggleConflict 记录一次并发冲突
func RecordToggleConflict(kind string) {
	ToggleConflictsTotal.WithLabelValues(kind).Inc()
}

// RecordStatsCache 记录统计缓存命中/未命中
func RecordStatsCache(hit bool) {
	if hit {
		StatsCacheHitsTotal.Inc()
		return
	}
	StatsCacheMissesTotal.Inc()
}
