package track

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	repo Repository
	log  *zap.Logger
}

func NewHandler(repo Repository, log *zap.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

type listQuery struct {
	Genre    string `form:"genre"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"pageSize,default=10" binding:"min=1,max=100"`
}

// GetTracks lists tracks with optional genre and free-text filters. The total
// size of the matching set goes out in the X-Total-Count header.
func (h *Handler) GetTracks(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tracks, total, err := h.repo.GetTracks(c.Request.Context(), q.Genre, q.Search, q.Page, q.PageSize)
	if err != nil {
		h.log.Error("track list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tracks"})
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, tracks)
}

func (h *Handler) GetTrackByID(c *gin.Context) {
	id := c.Param("id")

	t, err := h.repo.GetTrackByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("track lookup failed", zap.String("track_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch track"})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) AddTrack(c *gin.Context) {
	var t Track
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.repo.AddTrack(c.Request.Context(), &t)
	if err != nil {
		if errors.Is(err, ErrUnknownArtist) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown artist reference"})
			return
		}
		h.log.Error("track creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create track"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateTrack pre-checks existence so a missing id answers 404; the
// repository itself trusts the caller on this.
func (h *Handler) UpdateTrack(c *gin.Context) {
	id := c.Param("id")

	var t Track
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.repo.GetTrackByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("track lookup failed", zap.String("track_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch track"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}

	if err := h.repo.UpdateTrack(c.Request.Context(), id, &t); err != nil {
		h.log.Error("track update failed", zap.String("track_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update track"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteTrack(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.repo.GetTrackByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("track lookup failed", zap.String("track_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch track"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}

	if err := h.repo.DeleteTrack(c.Request.Context(), id); err != nil {
		h.log.Error("track delete failed", zap.String("track_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete track"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadTrack simulates a file download: the stored locator is served as
// the file body.
func (h *Handler) DownloadTrack(c *gin.Context) {
	id := c.Param("id")

	t, err := h.repo.GetTrackByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("track lookup failed", zap.String("track_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch track"})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+t.Name+`.mp3"`)
	c.Data(http.StatusOK, "application/octet-stream", []byte(t.File))
}
