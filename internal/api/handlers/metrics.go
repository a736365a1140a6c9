package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics godoc
// @Summary Prometheus metrics
// @Description Exposes request, trigger-operation and snapshot-write counters in the Prometheus text format
// @Tags System
// @Produce plain
// @Success 200 {string} string "metrics"
// @Router /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
