package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	Storage        StorageService
	Token          TokenService
	Version        string
	TrustedProxies []string
	// Registry receives the HTTP metrics and backs /metrics. A fresh registry
	// with Go runtime collectors is used when nil.
	Registry *prometheus.Registry
}

func NewRouter(opts RouterOptions) (*gin.Engine, error) {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(
		RequestID(),
		AccessLog(),
		NewMetrics(reg).Middleware(),
		Recovery(),
	)

	r.GET("/health", healthHandler(opts.Version))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	NewStorageHandler(opts.Storage).Register(r)
	NewTokenHandler(opts.Token).Register(r)

	r.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "not found")
	})
	return r, nil
}

func healthHandler(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC(),
			Version:   version,
		})
	}
}
