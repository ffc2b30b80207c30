// Package stubserver implements the admin REST surface the client consumes:
// a gin server over sqlite used for local development and integration tests.
// It enforces the order lifecycle via the statemachine package, making it the
// authority the client defers to.
package stubserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"food-delivery-admin/models"
)

type Server struct {
	db        *gorm.DB
	engine    *gin.Engine
	jwtSecret []byte
	tokenTTL  time.Duration
}

// New builds a server over the sqlite database at dsn (use "file::memory:?cache=shared"
// for tests) with the schema migrated.
func New(dsn string, jwtSecret []byte) (*Server, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}

	s := &Server{
		db:        db,
		jwtSecret: jwtSecret,
		tokenTTL:  24 * time.Hour,
	}
	s.engine = s.buildRouter()
	return s, nil
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler { return s.engine }

// Run starts the server on addr.
func (s *Server) Run(addr string) error { return s.engine.Run(addr) }

func (s *Server) buildRouter() *gin.Engine {
	r := gin.Default()
	r.Use(requestMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "food-delivery-admin stub"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.POST("/auth/admin/login", s.adminLogin)

	admin := api.Group("/admin")
	admin.Use(s.authRequired(models.RoleAdmin))
	{
		admin.GET("/orders", s.listOrders)
		admin.GET("/orders/:id", s.getOrder)
		admin.POST("/orders/:id/accept", s.acceptOrder)
		admin.POST("/orders/:id/reject", s.rejectOrder)
		admin.PUT("/orders/:id/status", s.updateOrderStatus)
		admin.POST("/orders/:id/assign", s.assignDeliveryBoy)
		admin.GET("/delivery-boys", s.listDeliveryBoys)
		admin.GET("/dashboard/stats", s.dashboardStats)
	}
	return r
}

// respond wraps every payload in the {success, message, data} envelope the
// client unwraps.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

type claims struct {
	UserID int64           `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// generateToken creates a signed JWT for a given user.
func (s *Server) generateToken(user *userRow) (string, error) {
	c := claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   models.UserRole(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.jwtSecret)
}

// authRequired validates the bearer JWT and enforces the given role.
func (s *Server) authRequired(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			fail(c, http.StatusUnauthorized, "Authorization header required (Bearer <token>)")
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		cl := &claims{}
		token, err := jwt.ParseWithClaims(tokenStr, cl, func(t *jwt.Token) (interface{}, error) {
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		if cl.Role != role {
			fail(c, http.StatusForbidden, "Access denied. Required role: "+string(role))
			return
		}
		c.Set("userID", cl.UserID)
		c.Next()
	}
}
