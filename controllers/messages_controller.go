package controllers

import (
	"context"
	"net/http"
	"strconv"

	"fidexia/backend/fixtures"
	"fidexia/backend/models"
	"fidexia/backend/session"

	"github.com/gin-gonic/gin"
)

// chatFromParam resolves :id to a known chat, writing the error response when it cannot.
func chatFromParam(c *gin.Context, d *Deps) (fixtures.Chat, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fixtures.Chat{}, badRequest(c, "invalid chat id")
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()
	chats, err := d.Data.Chats(ctx)
	if err != nil {
		return fixtures.Chat{}, internal(c, "load chats", err)
	}
	for _, ch := range chats {
		if ch.ID == id {
			return ch, true
		}
	}
	return fixtures.Chat{}, fail(c, http.StatusNotFound, fixtures.ErrChatNotFound.Error())
}

func SelectChat(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		ch, ok := chatFromParam(c, d)
		if !ok {
			return false
		}
		if !onView(c, s, session.ViewMessages) {
			return false
		}
		s.SelectChat(ch.ID)
		return true
	})
}

// SendMessage validates the target chat and text; messages are not stored.
func SendMessage(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, _ *session.Session) bool {
		if _, ok := chatFromParam(c, d); !ok {
			return false
		}
		var req models.SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		return true
	})
}

// OpenNotification follows a notification's action to its view.
func OpenNotification(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return badRequest(c, "invalid notification id")
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		list, _, err := d.Data.Notifications(ctx)
		if err != nil {
			return internal(c, "load notifications", err)
		}
		for _, n := range list {
			if n.ID == id {
				s.NavigateString(n.ActionView)
				return true
			}
		}
		return fail(c, http.StatusNotFound, "notification not found")
	})
}

// MarkAllRead is accepted but read flags are fixture data and stay as they are.
func MarkAllRead(d *Deps) gin.HandlerFunc {
	return sessionAction(d, noop)
}

func SetProfileTab(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.ProfileTabRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		if !onView(c, s, session.ViewProfileSettings) {
			return false
		}
		if !s.SetProfileTab(req.Tab) {
			return badRequest(c, "unknown profile tab")
		}
		return true
	})
}

func SetProfileEditing(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.ProfileEditingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		if !onView(c, s, session.ViewProfileSettings) {
			return false
		}
		s.SetProfileEditing(*req.Editing)
		return true
	})
}
