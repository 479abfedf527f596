package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/framecraft/admin/internal/storage"
)

// uploadImage stores an image binary and returns its URL and public
// id. The caller then links the URL into a frame or product document;
// that second step is not atomic with this one, which is why the
// missing-image sweep exists.
func (s *Server) uploadImage(c *gin.Context) {
	if s.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "object storage is not configured"})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	url, publicID, err := s.uploader.Upload(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "publicId": publicID})
}

func (s *Server) missingImages(c *gin.Context) {
	findings, err := storage.SweepMissingImages(c.Request.Context(), s.store)
	if err != nil {
		respondError(c, err)
		return
	}
	if findings == nil {
		findings = []storage.MissingImage{}
	}
	c.JSON(http.StatusOK, findings)
}
