package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/somchakravarty/som-dev/internal/config"
	"github.com/somchakravarty/som-dev/internal/logging"
	"github.com/somchakravarty/som-dev/internal/metrics"
	"github.com/somchakravarty/som-dev/internal/store"
	"github.com/somchakravarty/som-dev/internal/tracing"
	"github.com/somchakravarty/som-dev/internal/travelmap"
)

// backgroundTimeout bounds tracking writes that outlive their request.
const backgroundTimeout = 5 * time.Second

type serverDeps struct {
	logger  *zap.Logger
	store   *store.Store
	metrics *metrics.Collector
	tracer  oteltrace.TracerProvider
	atlas   *travelmap.Atlas
	mailer  Mailer
}

type server struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *store.Store
	metrics *metrics.Collector
	tracer  oteltrace.TracerProvider
	atlas   *travelmap.Atlas
	mailer  Mailer

	// hashingSalt is regenerated on every start, so hashed IPs cannot be
	// correlated across restarts.
	hashingSalt string
	jwtKey      []byte
	adminUser   string
	adminPass   string

	now func() time.Time
	wg  sync.WaitGroup
}

func newServer(cfg *config.Config, d serverDeps) (*server, error) {
	s := &server{
		cfg:         cfg,
		log:         d.logger,
		store:       d.store,
		metrics:     d.metrics,
		tracer:      d.tracer,
		atlas:       d.atlas,
		mailer:      d.mailer,
		hashingSalt: uuid.NewString(),
		now:         time.Now,
	}
	if s.tracer == nil {
		s.tracer = noop.NewTracerProvider()
	}
	if err := s.initAdmin(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(logging.Middleware(s.log), logging.Recovery(s.log))
	if s.cfg.Metrics.Enabled {
		r.Use(s.metrics.Middleware())
		r.GET("/metrics", s.metrics.Handler())
	}
	r.Use(tracing.Middleware(s.tracer, serviceName))
	if s.cfg.Tracking.Enabled {
		r.Use(s.visitorTrackingMiddleware())
	}

	r.LoadHTMLGlob(s.cfg.Server.Templates)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.GET("/healthz", s.handleHealth)

	// Home page route
	r.GET("/", s.handleIndex)

	// Travel map fragments
	r.GET("/adventures/map", s.handleMap)
	r.POST(travelmap.SelectPath, s.handleSelect)
	r.POST(travelmap.ClearPath, s.handleClear)

	// HTMX contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})
	r.POST("/contact", s.handleContact)

	s.setupAdminRoutes(r)
	return r
}

func (s *server) handleHealth(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		logging.FromContext(c.Request.Context(), s.log).Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *server) handleIndex(c *gin.Context) {
	travelMap, err := s.renderMap(c.Request.Context())
	if err != nil {
		logging.FromContext(c.Request.Context(), s.log).Error("render travel map", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	html, err := travelmap.HTML(travelMap)
	if err != nil {
		logging.FromContext(c.Request.Context(), s.log).Error("render travel map", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	now := s.now()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"nav":            NavLinks,
		"clock":          clockTime(now),
		"timezone":       HomeTimezone,
		"aboutLead":      AboutLead,
		"aboutArc":       AboutArc,
		"aboutNow":       AboutNow,
		"metrics":        Metrics,
		"timeline":       Timeline,
		"skills":         Skills,
		"services":       Services,
		"caseStudyIntro": CaseStudyIntro,
		"caseStudyURL":   CaseStudyURL,
		"features":       CaseStudyFeatures,
		"stack":          CaseStudyStack,
		"projects":       OtherProjects,
		"featured":       FeaturedArticles(),
		"articles":       MoreArticles(),
		"themes":         WritingThemes,
		"adventures":     adventureCards(s.atlas),
		"hobbies":        Hobbies,
		"travelMap":      html,
		"contactEmail":   ContactEmail,
		"linkedIn":       LinkedInURL,
		"youtube":        YouTubeURL,
		"details":        ContactDetails,
		"year":           now.Year(),
	})
}

// renderMap builds the map with a fresh entrance timeline.
func (s *server) renderMap(ctx context.Context) (g.Node, error) {
	_, span := tracing.Start(ctx, "travelmap.Render")
	defer span.End()

	n, err := travelmap.Render(s.atlas, travelmap.Entrance(s.atlas))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return n, nil
}

func (s *server) handleMap(c *gin.Context) {
	n, err := s.renderMap(c.Request.Context())
	if err != nil {
		logging.FromContext(c.Request.Context(), s.log).Error("render travel map", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	s.fragment(c, n)
}

// handleSelect toggles the selection carried by the tooltip. Unknown ids
// fall back to the closed tooltip.
func (s *server) handleSelect(c *gin.Context) {
	id := c.PostForm("id")
	sel := travelmap.SelectionOf(c.PostForm("selected")).Select(id)

	if selected, ok := sel.ID(); ok {
		loc, known := s.atlas.Location(selected)
		switch {
		case !known || loc.IsHome():
			logging.FromContext(c.Request.Context(), s.log).Debug("ignoring selection", zap.String("id", selected))
			sel = sel.Clear()
		default:
			s.metrics.RecordAdventureSelection(loc.ID)
			s.background(c.Request.Context(), "record_adventure_view", func(ctx context.Context) error {
				return s.store.RecordAdventureView(ctx, loc.ID)
			})
		}
	}

	s.fragment(c, travelmap.Tooltip(s.atlas, sel))
}

func (s *server) handleClear(c *gin.Context) {
	s.fragment(c, travelmap.Tooltip(s.atlas, travelmap.Selection{}))
}

// fragment writes n as an HTML response. Rendering is buffered so a
// failure never leaves a partial fragment on the wire.
func (s *server) fragment(c *gin.Context, n g.Node) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		logging.FromContext(c.Request.Context(), s.log).Error("render fragment", zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// background runs fn after the request finishes. Failures are logged and
// counted, never surfaced to the visitor.
func (s *server) background(parent context.Context, op string, fn func(context.Context) error) {
	ctx := context.WithoutCancel(parent)
	log := logging.FromContext(parent, s.log)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, backgroundTimeout)
		defer cancel()

		ctx, span := tracing.Start(ctx, "background."+op, attribute.String("operation", op))
		defer span.End()

		if err := fn(ctx); err != nil {
			span.RecordError(err)
			s.metrics.RecordStoreError(op)
			log.Warn("background write failed", zap.String("operation", op), zap.Error(err))
		}
	}()
}

// wait blocks until in-flight background writes finish.
func (s *server) wait() {
	s.wg.Wait()
}

// cleanupLoop enforces the tracking retention window now and then on
// every tick until ctx is done.
func (s *server) cleanupLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		s.cleanupOldVisitorData(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *server) cleanupOldVisitorData(ctx context.Context) {
	removed, err := s.store.Cleanup(ctx, s.cfg.Tracking.Retention)
	if err != nil {
		s.metrics.RecordStoreError("cleanup")
		s.log.Error("privacy cleanup failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.log.Info("privacy cleanup removed old records",
			zap.Int64("rows", removed),
			zap.Duration("retention", s.cfg.Tracking.Retention),
		)
	}
}

func generateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
