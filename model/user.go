package model

import "time"

// User 用户模型
type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Phone     string    `gorm:"unique;not null;size:11" json:"phone"`
	Nickname  string    `gorm:"not null;size:100" json:"nickname"`
	Icon      string    `gorm:"size:255" json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
