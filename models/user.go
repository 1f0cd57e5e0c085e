package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Bio       string    `json:"bio" gorm:"not null;default:''"`
	Image     string    `json:"image" gorm:"not null;default:''"`
	Password  string    `json:"-" gorm:"not null"`
	Articles  []Article `json:"articles,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserWithToken is the public view of a user returned by every user endpoint.
type UserWithToken struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
	Token string `json:"token"`
}

type UserResponse struct {
	User UserWithToken `json:"user"`
}
