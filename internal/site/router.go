package site

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tharindu1999/portfolio/internal/logger"
)

// Handler builds the gin engine. The page, motion.json and assets live
// under the base path; /healthz and /metrics stay at the root.
func (s *Site) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())
	r.SetHTMLTemplate(s.tmpl)

	base := s.data.Base
	if base != "/" {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, base)
		})
	}

	g := r.Group(base)
	g.GET("/", s.handleIndex)
	g.GET("/index.html", s.handleIndex)
	g.GET("/motion.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.tables)
	})
	g.StaticFS("/static", http.FS(s.static))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	return r
}

func (s *Site) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.data)
	s.metrics.renders.Inc()
}

// requestLog records every request in metrics and logs the ones that are
// not static assets.
func (s *Site) requestLog() gin.HandlerFunc {
	static := s.data.Base + "static/"
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		s.metrics.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()
		s.metrics.duration.WithLabelValues(route, c.Request.Method).Observe(elapsed.Seconds())

		path := c.Request.URL.Path
		if strings.HasPrefix(path, static) || path == "/metrics" || path == "/healthz" {
			return
		}
		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", status),
			logger.Any("duration", elapsed),
		}
		if status >= http.StatusInternalServerError {
			s.log.Error(c.Request.Context(), "request failed", fields...)
			return
		}
		s.log.Info(c.Request.Context(), "request", fields...)
	}
}
