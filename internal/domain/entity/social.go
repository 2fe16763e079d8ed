package entity

import "time"

// Content types that can be shared
const (
	ContentHealthRecord     = "health_record"
	ContentDietRecord       = "diet_record"
	ContentExerciseRecord   = "exercise_record"
	ContentHealthGoal       = "health_goal"
	ContentWaterIntake      = "water_intake"
	ContentMedicationRecord = "medication_record"
	ContentHealthReport     = "health_report"
)

// SharableTypes lists every content type a share may point at
var SharableTypes = []string{
	ContentHealthRecord,
	ContentDietRecord,
	ContentExerciseRecord,
	ContentHealthGoal,
	ContentWaterIntake,
	ContentMedicationRecord,
	ContentHealthReport,
}

// IsSharable reports whether contentType is a known sharable type
func IsSharable(contentType string) bool {
	for _, t := range SharableTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// Visibility of a share
const (
	VisibilityPublic  = "public"
	VisibilityFriends = "friends"
	VisibilityPrivate = "private"
)

// Share points at content through a soft reference (content_type + content_id)
type Share struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	ContentType string    `gorm:"type:varchar(50);not null;index" json:"content_type"`
	ContentID   uint      `gorm:"not null" json:"content_id"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Visibility  string    `gorm:"type:varchar(20);not null;default:'public'" json:"visibility"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Share) TableName() string {
	return "shares"
}

// Content returns the soft reference to the shared content
func (s *Share) Content() SoftRef {
	return SoftRef{Kind: s.ContentType, ID: s.ContentID}
}

// VisibleTo reports whether userID may read the share. Friends-only shares
// are readable until a friend graph exists.
func (s *Share) VisibleTo(userID uint) bool {
	return s.UserID == userID || s.Visibility != VisibilityPrivate
}

// Like is unique per (user, share)
type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_share" json:"user_id"`
	ShareID   uint      `gorm:"not null;uniqueIndex:idx_likes_user_share;index" json:"share_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// Comment supports a single level of replies through ParentID
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ShareID   uint      `gorm:"not null;index" json:"share_id"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Replies []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

// ShareStats carries the aggregate counters shown with a share
type ShareStats struct {
	LikeCount    int64
	CommentCount int64
	IsLiked      bool
}
