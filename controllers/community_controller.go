package controllers

import (
	"context"
	"net/http"
	"strconv"

	"fidexia/backend/models"
	"fidexia/backend/session"

	"github.com/gin-gonic/gin"
)

// SetFilters updates the investor dashboard search and sector filters; absent fields are kept.
func SetFilters(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.FiltersRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		if req.Search != nil {
			s.SetSearch(*req.Search)
		}
		if req.Sector != nil {
			s.SetSectorFilter(*req.Sector)
		}
		return true
	})
}

func SetForumCategory(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		s.SetForumCategory(req.Category)
		return true
	})
}

// LikePost checks the post exists; likes are not recorded.
func LikePost(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, _ *session.Session) bool {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return badRequest(c, "invalid post id")
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		posts, err := d.Data.ForumPosts(ctx)
		if err != nil {
			return internal(c, "load posts", err)
		}
		for _, p := range posts {
			if p.ID == id {
				return true
			}
		}
		return fail(c, http.StatusNotFound, "post not found")
	})
}

func SetLearningRole(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.LearningRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		s.SetLearningRole(req.Role)
		return true
	})
}
