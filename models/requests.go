package models

import "fidexia/backend/screens"

type NavigateRequest struct {
	View string `json:"view" binding:"required"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// LoginRequest falls back to the role tab picked on the login screen when Role is empty.
type LoginRequest struct {
	Role string `json:"role"`
}

type VerifyRequest struct {
	Code string `json:"code" binding:"required,len=6,number"`
}

type InvestRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type FiltersRequest struct {
	Search *string `json:"search"`
	Sector *string `json:"sector"`
}

type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type LearningRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type ProfileTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

type ProfileEditingRequest struct {
	Editing *bool `json:"editing" binding:"required"`
}

type SessionResponse struct {
	Token  string         `json:"token"`
	Screen screens.Screen `json:"screen"`
}
