package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/coschain/creatorfund-go/app"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server exposes the controller over HTTP.
type Server struct {
	ctrl   *app.Controller
	reader *app.PostReader
	log    *logrus.Logger
	engine *gin.Engine
	srv    *http.Server
	ln     net.Listener
}

func NewServer(ctrl *app.Controller, reader *app.PostReader, gatherer prometheus.Gatherer, log *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		ctrl:   ctrl,
		reader: reader,
		log:    log,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.accessLog())
	s.setupRoutes(gatherer)
	return s
}

func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	v1 := s.engine.Group("/v1")
	v1.POST("/posts", s.CreatePost)
	v1.GET("/posts/:id", s.GetPost)
	v1.POST("/posts/:id/votes", s.CastVote)
	v1.POST("/posts/:id/claim", s.ClaimReward)
	v1.POST("/tips", s.Tip)
	v1.POST("/wallets", s.ProvisionWallet)
	v1.GET("/accounts/:id", s.GetAccount)

	if gatherer != nil {
		s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on listen and serves in the background.
func (s *Server) Start(listen string) error {
	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", listen)
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("http server stopped")
		}
	}()
	s.log.WithField("addr", ln.Addr().String()).Info("http server started")
	return nil
}

// Addr is the address the server listens on, empty before Start.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Debug("http request")
	}
}
