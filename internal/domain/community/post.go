package community

import (
	"github.com/google/uuid"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// Post is a customer photo submission. Posts start unapproved and only
// show on the public wall after admin approval.
type Post struct {
	shared.BaseEntity
	UserID   uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ImageURL string    `gorm:"size:1024;not null" json:"image_url"`
	Caption  string    `gorm:"size:512" json:"caption"`
	Combo    string    `gorm:"size:255" json:"combo"`
	Approved bool      `gorm:"not null;default:false" json:"approved"`
}

// TableName implements gorm's Tabler
func (Post) TableName() string { return "community_posts" }

// NewPost creates an unapproved submission
func NewPost(userID uuid.UUID, imageURL, caption, combo string) (*Post, error) {
	if userID == uuid.Nil {
		return nil, shared.NewInvalidInputError("post user is required")
	}
	if imageURL == "" {
		return nil, shared.NewInvalidInputError("post image is required")
	}
	return &Post{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ImageURL:   imageURL,
		Caption:    caption,
		Combo:      combo,
		Approved:   false,
	}, nil
}

// SetApproved flips the moderation decision
func (p *Post) SetApproved(approved bool) {
	p.Approved = approved
	p.Touch()
}
