package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	feedService "carelink/services/feed"
)

// PostHandler serves the community feed endpoints.
type PostHandler struct {
	FeedService feedService.FeedService
}

func NewPostHandler(svc feedService.FeedService) *PostHandler {
	return &PostHandler{FeedService: svc}
}

// actor returns the calling account's id and role, whichever side signed in.
func actor(c *gin.Context) (id, role string) {
	if userID := c.GetString("userID"); userID != "" {
		return userID, "patient"
	}
	return c.GetString("professionalID"), "professional"
}

// PublishHandler handles POST /api/posts.
func (h *PostHandler) PublishHandler(c *gin.Context) {
	authorID, authorRole := actor(c)

	var req feedService.PostData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	post, err := h.FeedService.Publish(c.Request.Context(), authorID, authorRole, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// DeleteHandler handles DELETE /api/posts/:id.
func (h *PostHandler) DeleteHandler(c *gin.Context) {
	authorID, _ := actor(c)

	if err := h.FeedService.Delete(c.Request.Context(), c.Param("id"), authorID); err != nil {
		if errors.Is(err, feedService.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// FeedHandler handles GET /api/posts?cursor=&limit=.
func (h *PostHandler) FeedHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	page, err := h.FeedService.Page(c.Request.Context(), c.Query("cursor"), limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// ByAuthorHandler handles GET /api/posts/author/:id.
func (h *PostHandler) ByAuthorHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)

	posts, err := h.FeedService.ByAuthor(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// LikeHandler handles POST /api/posts/:id/like.
func (h *PostHandler) LikeHandler(c *gin.Context) {
	actorID, _ := actor(c)
	h.reactTo(c, actorID, h.FeedService.Like)
}

// UnlikeHandler handles POST /api/posts/:id/unlike.
func (h *PostHandler) UnlikeHandler(c *gin.Context) {
	actorID, _ := actor(c)
	h.reactTo(c, actorID, h.FeedService.Unlike)
}

func (h *PostHandler) reactTo(c *gin.Context, actorID string, fn func(ctx context.Context, postID, userID string) error) {
	if err := fn(c.Request.Context(), c.Param("id"), actorID); err != nil {
		if errors.Is(err, feedService.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
