package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/framecraft/admin/internal/users"
)

const sessionCookie = "admin_session"

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, err := s.gate.SignIn(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	// Session cookie only; no expiry, sign-out is the sole revocation.
	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) logout(c *gin.Context) {
	if token := sessionToken(c); token != "" {
		s.gate.SignOut(token)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}

// sessionToken reads the opaque marker from the cookie or, for API
// clients, a bearer header.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// requireAdmin gates the admin group on session token presence and
// attaches the caller's claims for downstream privileged operations.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := s.gate.Verify(sessionToken(c))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set("claims", users.Claims{Email: email, Admin: true})
		c.Next()
	}
}

func callerClaims(c *gin.Context) users.Claims {
	if v, ok := c.Get("claims"); ok {
		if claims, ok := v.(users.Claims); ok {
			return claims
		}
	}
	return users.Claims{}
}
