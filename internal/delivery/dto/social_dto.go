package dto

import "time"

// Request DTOs

type CreateShareRequest struct {
	ContentType string `json:"content_type" validate:"required"`
	ContentID   uint   `json:"content_id" validate:"required,gt=0"`
	Description string `json:"description"`
	Visibility  string `json:"visibility" validate:"omitempty,oneof=public friends private"`
}

type UpdateShareRequest struct {
	Description *string `json:"description"`
	Visibility  *string `json:"visibility" validate:"omitempty,oneof=public friends private"`
}

type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	ParentID *uint  `json:"parent_id" validate:"omitempty,gt=0"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

type ShareResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	ContentType  string    `json:"content_type"`
	ContentID    uint      `json:"content_id"`
	Description  string    `json:"description,omitempty"`
	Visibility   string    `json:"visibility"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	IsLiked      bool      `json:"is_liked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LikeResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ShareID   uint      `json:"share_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"user_id"`
	ShareID   uint              `json:"share_id"`
	ParentID  *uint             `json:"parent_id,omitempty"`
	Content   string            `json:"content"`
	Replies   []CommentResponse `json:"replies,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
