package handler

import (
	"net/http"
	"strconv"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/response"
	"health-tracker/pkg/validator"
)

// SocialHandler serves shares, likes and comments
type SocialHandler struct {
	socialUsecase usecase.SocialUsecase
	validator     *validator.CustomValidator
}

func NewSocialHandler(socialUsecase usecase.SocialUsecase, validator *validator.CustomValidator) *SocialHandler {
	return &SocialHandler{
		socialUsecase: socialUsecase,
		validator:     validator,
	}
}

func writeSocialError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrInvalidContentType, usecase.ErrEmptyComment, usecase.ErrInvalidParentComment:
		response.BadRequest(w, err.Error())
	case usecase.ErrContentNotFound:
		response.NotFound(w, "Shared content not found")
	case usecase.ErrShareNotFound:
		response.NotFound(w, "Share not found")
	case usecase.ErrLikeNotFound:
		response.NotFound(w, "Like not found")
	case usecase.ErrCommentNotFound:
		response.NotFound(w, "Comment not found")
	case usecase.ErrShareForbidden, usecase.ErrCommentForbidden:
		response.Forbidden(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}

func (h *SocialHandler) CreateShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dto.CreateShareRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	share, err := h.socialUsecase.CreateShare(r.Context(), userID, &req)
	if err != nil {
		writeSocialError(w, err, "Failed to create share")
		return
	}
	response.Success(w, http.StatusCreated, "Share created successfully", share)
}

// ListShares lists public shares plus the caller's own, newest first
// @Param content_type query string false "filter by content type"
// @Param user_id query int false "filter by author"
// @Param page query int false "page, default 1"
// @Param limit query int false "page size, default 10"
// @Router /shares [get]
func (h *SocialHandler) ListShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	filter := repository.ShareFilter{ContentType: q.Get("content_type")}
	if raw := q.Get("user_id"); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid user ID")
			return
		}
		author := uint(authorID)
		filter.UserID = &author
	}
	page := pageFromQuery(r)

	shares, total, err := h.socialUsecase.ListShares(r.Context(), userID, filter, page)
	if err != nil {
		writeSocialError(w, err, "Failed to get shares")
		return
	}
	response.SuccessWithMeta(w, http.StatusOK, "Shares retrieved successfully", shares, response.NewMeta(page.Page, page.Limit, total))
}

func (h *SocialHandler) GetShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid share ID")
		return
	}

	share, err := h.socialUsecase.GetShare(r.Context(), userID, id)
	if err != nil {
		writeSocialError(w, err, "Failed to get share")
		return
	}
	response.Success(w, http.StatusOK, "Share retrieved successfully", share)
}

func (h *SocialHandler) UpdateShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid share ID")
		return
	}
	var req dto.UpdateShareRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	share, err := h.socialUsecase.UpdateShare(r.Context(), userID, id, &req)
	if err != nil {
		writeSocialError(w, err, "Failed to update share")
		return
	}
	response.Success(w, http.StatusOK, "Share updated successfully", share)
}

func (h *SocialHandler) DeleteShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid share ID")
		return
	}

	if err := h.socialUsecase.DeleteShare(r.Context(), userID, id); err != nil {
		writeSocialError(w, err, "Failed to delete share")
		return
	}
	response.Success(w, http.StatusOK, "Share deleted successfully", nil)
}

func (h *SocialHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid share ID")
		return
	}

	like, err := h.socialUsecase.Like(r.Context(), userID, id)
	if err != nil {
		writeSocialError(w, err, "Failed to like share")
		return
	}
	response.Success(w, http.StatusOK, "Share liked", like)
}

func (h *SocialHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid share ID")
		return
	}

	if err := h.socialUsecase.Unlike(r.Context(), userID, id); err != nil {
		writeSocialError(w, err, "Failed to unlike share")
		return
	}
	response.Success(w, http.StatusOK, "Share unliked", nil)
}

func (h *SocialHandler) ListLikes(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid share ID")
		return
	}
	page := pageFromQuery(r)

	likes, total, err := h.socialUsecase.ListLikes(r.Context(), userID, id, page)
	if err != nil {
		writeSocialError(w, err, "Failed to get likes")
		return
	}
	response.SuccessWithMeta(w, http.StatusOK, "Likes retrieved successfully", likes, response.NewMeta(page.Page, page.Limit, total))
}

func (h *SocialHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid share ID")
		return
	}
	var req dto.CreateCommentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	comment, err := h.socialUsecase.AddComment(r.Context(), userID, id, &req)
	if err != nil {
		writeSocialError(w, err, "Failed to add comment")
		return
	}
	response.Success(w, http.StatusCreated, "Comment added successfully", comment)
}

func (h *SocialHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid share ID")
		return
	}
	page := pageFromQuery(r)

	comments, total, err := h.socialUsecase.ListComments(r.Context(), userID, id, page)
	if err != nil {
		writeSocialError(w, err, "Failed to get comments")
		return
	}
	response.SuccessWithMeta(w, http.StatusOK, "Comments retrieved successfully", comments, response.NewMeta(page.Page, page.Limit, total))
}

func (h *SocialHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid comment ID")
		return
	}
	var req dto.UpdateCommentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	comment, err := h.socialUsecase.UpdateComment(r.Context(), userID, id, &req)
	if err != nil {
		writeSocialError(w, err, "Failed to update comment")
		return
	}
	response.Success(w, http.StatusOK, "Comment updated successfully", comment)
}

func (h *SocialHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid comment ID")
		return
	}

	if err := h.socialUsecase.DeleteComment(r.Context(), userID, id); err != nil {
		writeSocialError(w, err, "Failed to delete comment")
		return
	}
	response.Success(w, http.StatusOK, "Comment deleted successfully", nil)
}
