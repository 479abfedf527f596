package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listUsers(c *gin.Context) {
	list, err := s.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// grantAdminRole is the privileged role-assignment call. The service
// re-checks the admin claim; the middleware alone is not the
// authorization boundary for this one.
func (s *Server) grantAdminRole(c *gin.Context) {
	updated, err := s.users.GrantAdmin(c.Request.Context(), callerClaims(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
