package models

import (
	"time"

	"gorm.io/datatypes"
)

type BookStatus string

const (
	StatusAvailable BookStatus = "available"
	StatusPending   BookStatus = "pending"
	StatusSold      BookStatus = "sold"
)

// ValidBookStatus reports whether s is in the canonical status set. The
// legacy admin-side vocabulary (Published/Pending/Rejected) is not accepted
// anywhere; there is a single server-side status enum.
func ValidBookStatus(s BookStatus) bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	}
	return false
}

type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookSeller is the public projection of a book's seller. Book responses
// expose only the seller's name and email, never the rest of the user
// record.
type BookSeller struct {
	ID    uint   `json:"-" gorm:"primarykey"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (BookSeller) TableName() string { return "users" }

// Book is a second-hand listing. SellerName and ContactInfo are
// denormalized copies supplied at creation time and are not kept in sync
// with the seller's user record.
type Book struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Title       string         `json:"title" gorm:"not null"`
	Author      string         `json:"author" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"not null"`
	Category    string         `json:"category"`
	Condition   string         `json:"condition"`
	Images      datatypes.JSON `json:"images"`
	SellerID    uint           `json:"seller_id" gorm:"not null;index"`
	Seller      *BookSeller    `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	SellerName  string         `json:"seller_name"`
	ContactInfo ContactInfo    `json:"contact_info" gorm:"embedded;embeddedPrefix:contact_"`
	Status      BookStatus     `json:"status" gorm:"default:'available'"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
