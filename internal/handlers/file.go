package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quickshare/rooms/internal/service"
)

type FileHandler struct {
	files *service.FileService
}

func NewFileHandler(files *service.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// UploadFile accepts one multipart file under the "file" field.
func (h *FileHandler) UploadFile(c *gin.Context) {
	_, displayName := sessionFrom(c)
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer src.Close()

	file, err := h.files.Upload(
		c.Request.Context(),
		roomID,
		displayName,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		src,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

func (h *FileHandler) ListFiles(c *gin.Context) {
	roomID, ok := roomIDParam(c)
	if !ok {
		return
	}

	files, err := h.files.List(c.Request.Context(), roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// GetDownloadURL mints a signed, short-lived link for one file.
func (h *FileHandler) GetDownloadURL(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	url, err := h.files.DownloadURL(c.Request.Context(), fileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Download redeems a signed token and streams the blob. The token is the
// only access check; no session header is required here so the link works
// from a plain browser navigation.
func (h *FileHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "missing download token"})
		return
	}

	file, rc, err := h.files.OpenDownload(c.Request.Context(), token)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Header("Content-Type", file.MimeType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, rc)
}

// Preview streams image blobs inline, without a token.
func (h *FileHandler) Preview(c *gin.Context) {
	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	file, rc, err := h.files.OpenPreview(c.Request.Context(), fileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", file.MimeType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, rc)
}
