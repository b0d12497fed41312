package domain

import "time"

// User is a LINE account that has opened the app at least once
type User struct {
	UserID      string    `json:"user_id" db:"user_id"`
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"`
	PictureURL  *string   `json:"picture_url,omitempty" db:"picture_url"`
	Points      int       `json:"points" db:"points"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// UserProfile is the payload sent when the LINE client registers a user
type UserProfile struct {
	UserID      string  `json:"user_id" validate:"required,max=64"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=255"`
	PictureURL  *string `json:"picture_url,omitempty" validate:"omitempty,url,max=1024"`
}

// UserSummary is one row of the admin user list
type UserSummary struct {
	User
	DrawCount int `json:"draw_count"`
}

// UserDetail is the admin view of one user
type UserDetail struct {
	User         User           `json:"user"`
	Stats        UserStats      `json:"stats"`
	GachaHistory []GachaHistory `json:"gacha_histories"`
	PointHistory []PointHistory `json:"point_histories"`
}
