package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"clinicbook/services/gallery"
)

// GalleryHandler serves the clinic gallery endpoints. Listing is public,
// mutation is admin-only.
type GalleryHandler struct {
	GallerySvc gallery.GalleryService
}

func (h *GalleryHandler) ListHandler(c *gin.Context) {
	items, err := h.GallerySvc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": items})
}

// UploadHandler accepts a multipart form with "title", "description" and one
// or more "images" files.
func (h *GalleryHandler) UploadHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one image is required"})
		return
	}

	tempPaths := make([]string, 0, len(files))
	for _, fileHeader := range files {
		tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
			return
		}
		tempPaths = append(tempPaths, tempFilePath)
	}
	defer func() {
		for _, p := range tempPaths {
			os.Remove(p)
		}
	}()

	items, err := h.GallerySvc.Upload(c.PostForm("title"), c.PostForm("description"), tempPaths)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"gallery": items})
}

func (h *GalleryHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.GallerySvc.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted"})
}
