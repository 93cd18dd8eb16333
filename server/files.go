package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// handleUpload stores an attachment blob under the caller-chosen path and
// returns its durable public URL. Paths are confined to the uploads dir.
func (s *Server) handleUpload(c echo.Context) error {
	userID := c.Get("user_id").(string)

	path := c.FormValue("path")
	if path == "" || strings.Contains(path, "..") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid path"})
	}
	// uploads are always scoped to the owning user
	if !strings.HasPrefix(path, userID+"/") {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "path not owned by user"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file required"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable file"})
	}
	defer src.Close()

	target := filepath.Join(s.uploadsDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		c.Logger().Error("upload error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	dst, err := os.Create(target)
	if err != nil {
		c.Logger().Error("upload error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		c.Logger().Error("upload error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	url := fmt.Sprintf("%s://%s/files/%s", c.Scheme(), c.Request().Host, path)
	c.Logger().Infof("Stored attachment for user %s: %s", userID, path)

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
