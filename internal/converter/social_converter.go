package converter

import (
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
)

func ShareToResponse(share *entity.Share, stats entity.ShareStats) *dto.ShareResponse {
	if share == nil {
		return nil
	}

	return &dto.ShareResponse{
		ID:           share.ID,
		UserID:       share.UserID,
		ContentType:  share.ContentType,
		ContentID:    share.ContentID,
		Description:  share.Description,
		Visibility:   share.Visibility,
		LikeCount:    stats.LikeCount,
		CommentCount: stats.CommentCount,
		IsLiked:      stats.IsLiked,
		CreatedAt:    share.CreatedAt,
		UpdatedAt:    share.UpdatedAt,
	}
}

func LikeToResponse(like *entity.Like) *dto.LikeResponse {
	if like == nil {
		return nil
	}

	return &dto.LikeResponse{
		ID:        like.ID,
		UserID:    like.UserID,
		ShareID:   like.ShareID,
		CreatedAt: like.CreatedAt,
	}
}

func LikesToResponses(likes []entity.Like) []dto.LikeResponse {
	responses := make([]dto.LikeResponse, len(likes))
	for i := range likes {
		responses[i] = *LikeToResponse(&likes[i])
	}
	return responses
}

// CommentToResponse converts a comment and its loaded replies
func CommentToResponse(comment *entity.Comment) *dto.CommentResponse {
	if comment == nil {
		return nil
	}

	response := &dto.CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		ShareID:   comment.ShareID,
		ParentID:  comment.ParentID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if len(comment.Replies) > 0 {
		response.Replies = CommentsToResponses(comment.Replies)
	}
	return response
}

func CommentsToResponses(comments []entity.Comment) []dto.CommentResponse {
	responses := make([]dto.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *CommentToResponse(&comments[i])
	}
	return responses
}
