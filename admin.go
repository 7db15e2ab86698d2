// admin.go - privacy-conscious visitor tracking and the admin area
package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/somchakravarty/som-dev/internal/logging"
	"github.com/somchakravarty/som-dev/internal/store"
)

const (
	adminCookie   = "admin_session"
	adminIssuer   = "som-dev"
	adminAudience = "admin"
)

// initAdmin resolves credentials and the session signing key. Without
// configured credentials the debug build falls back to admin/admin123 and
// release builds disable login entirely.
func (s *server) initAdmin() error {
	s.adminUser = s.cfg.Admin.Username
	s.adminPass = s.cfg.Admin.Password

	if s.adminUser == "" || s.adminPass == "" {
		if gin.Mode() == gin.DebugMode {
			s.log.Warn("using default admin credentials; set PORTFOLIO_ADMIN_USERNAME and PORTFOLIO_ADMIN_PASSWORD")
			s.adminUser, s.adminPass = "admin", "admin123"
		} else {
			s.log.Warn("admin credentials not configured; admin login disabled")
			s.adminUser, s.adminPass = "", ""
		}
	}

	if s.cfg.Admin.JWTSecret != "" {
		s.jwtKey = []byte(s.cfg.Admin.JWTSecret)
	} else {
		key, err := generateToken(32)
		if err != nil {
			return err
		}
		// sessions do not survive a restart
		s.jwtKey = []byte(key)
	}

	s.log.Info("admin access available at /admin/login")
	if s.cfg.Tracking.Enabled {
		s.log.Info("visitor tracking enabled with hashed IP addresses",
			zap.Duration("retention", s.cfg.Tracking.Retention))
	}
	return nil
}

// Hash IP address for privacy compliance (consistent per IP)
func (s *server) hashIP(ip string) string {
	return store.HashIP(ip, s.hashingSalt)
}

func (s *server) checkCredentials(username, password string) bool {
	if s.adminUser == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPass)) == 1
	return userOK && passOK
}

func (s *server) issueSession(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    adminIssuer,
		Subject:   username,
		Audience:  jwt.ClaimStrings{adminAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Admin.SessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
}

func (s *server) verifySession(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return s.jwtKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(adminIssuer),
		jwt.WithAudience(adminAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if claims.Subject != s.adminUser || s.adminUser == "" {
		return nil, errors.New("session subject does not match admin user")
	}
	return claims, nil
}

// Middleware to check admin authentication
func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(adminCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		claims, err := s.verifySession(raw)
		if err != nil {
			logging.FromContext(c.Request.Context(), s.log).Info("rejected admin session", zap.Error(err))
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Set("admin", claims.Subject)
		c.Next()
	}
}

func (s *server) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, value, maxAge, "/admin", "", s.cfg.Server.Mode == gin.ReleaseMode, true)
}

// trackablePath reports whether visits to path are recorded.
func trackablePath(path string) bool {
	for _, prefix := range []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/metrics", "/healthz"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Privacy-conscious visitor tracking middleware
func (s *server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !trackablePath(path) || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		// Respect Do Not Track and Global Privacy Control
		if c.GetHeader("DNT") == "1" || c.GetHeader("Sec-GPC") == "1" {
			c.Next()
			return
		}

		hashed := s.hashIP(c.ClientIP())
		userAgent := c.Request.UserAgent()
		s.background(c.Request.Context(), "record_visit", func(ctx context.Context) error {
			if err := s.store.RecordVisit(ctx, hashed, userAgent, path); err != nil {
				return err
			}
			s.metrics.VisitsRecorded.Inc()
			return nil
		})
		c.Next()
	}
}

// Setup all admin routes
func (s *server) setupAdminRoutes(r *gin.Engine) {
	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":     "Privacy Policy",
			"retention": retentionLabel(s.cfg.Tracking.Retention),
			"tracking":  s.cfg.Tracking.Enabled,
		})
	})

	// Visitors can erase what was recorded for their own address
	r.POST("/privacy/forget", func(c *gin.Context) {
		removed, err := s.store.DeleteVisitor(c.Request.Context(), s.hashIP(c.ClientIP()))
		if err != nil {
			s.metrics.RecordStoreError("delete_visitor")
			logging.FromContext(c.Request.Context(), s.log).Error("error forgetting visitor", zap.Error(err))
			c.HTML(http.StatusOK, "privacy-forgotten.html", gin.H{
				"error": "Sorry, we could not remove your data right now. Please try again later.",
			})
			return
		}
		c.HTML(http.StatusOK, "privacy-forgotten.html", gin.H{
			"removed": removed,
		})
	})

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		log := logging.FromContext(c.Request.Context(), s.log).With(zap.String("client", s.hashIP(c.ClientIP())))

		if !s.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			log.Warn("failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		token, err := s.issueSession(s.adminUser)
		if err != nil {
			log.Error("error issuing admin session", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to start session",
			})
			return
		}

		s.setSessionCookie(c, token, int(s.cfg.Admin.SessionTTL/time.Second))
		log.Info("admin login successful")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		s.setSessionCookie(c, "", -1)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	// Admin dashboard
	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			logging.FromContext(c.Request.Context(), s.log).Error("error loading admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
			"names": s.locationNames(),
		})
	})

	// Admin API endpoints for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			logging.FromContext(c.Request.Context(), s.log).Error("error loading admin stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Map interactions per location
	adminGroup.GET("/adventures", func(c *gin.Context) {
		views, err := s.store.AdventureViews(c.Request.Context(), len(s.atlas.Adventures()))
		if err != nil {
			logging.FromContext(c.Request.Context(), s.log).Error("error loading adventure views", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load adventure views",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-adventures.html", gin.H{
			"views": views,
			"names": s.locationNames(),
		})
	})

	// View visitors
	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			logging.FromContext(c.Request.Context(), s.log).Error("error loading visitors", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	// Delete every visit of one hashed visitor
	adminGroup.DELETE("/visitors/:hash", func(c *gin.Context) {
		hash := c.Param("hash")

		removed, err := s.store.DeleteVisitor(c.Request.Context(), hash)
		if err != nil {
			logging.FromContext(c.Request.Context(), s.log).Error("error deleting visitor", zap.String("hash", hash), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete visitor"})
			return
		}
		if removed == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Visitor not found"})
			return
		}

		logging.FromContext(c.Request.Context(), s.log).Info("visitor data deleted by admin",
			zap.String("hash", hash), zap.Int64("rows", removed))
		c.JSON(http.StatusOK, gin.H{"message": "Visitor deleted successfully", "removed": removed})
	})

	// Run the retention cleanup now
	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.store.Cleanup(c.Request.Context(), s.cfg.Tracking.Retention)
		if err != nil {
			logging.FromContext(c.Request.Context(), s.log).Error("error cleaning up visitor data", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": removed})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			logging.FromContext(c.Request.Context(), s.log).Error("error exporting admin stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})
}

func (s *server) locationNames() map[string]string {
	names := make(map[string]string)
	for _, loc := range s.atlas.Adventures() {
		names[loc.ID] = loc.Name
	}
	return names
}

// retentionLabel renders a retention window for the privacy page.
func retentionLabel(d time.Duration) string {
	days := int(d / (24 * time.Hour))
	switch {
	case days >= 365 && days%365 == 0:
		if days == 365 {
			return "12 months"
		}
		return strconv.Itoa(days/365) + " years"
	case days >= 1:
		if days == 1 {
			return "1 day"
		}
		return strconv.Itoa(days) + " days"
	default:
		return d.String()
	}
}
