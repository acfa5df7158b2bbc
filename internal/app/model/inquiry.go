package model

import "time"

// Inquiry is a visitor's enquiry about a tour, stored for the sales team.
type Inquiry struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(120);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	Phone      string    `gorm:"type:varchar(30)" json:"phone"`
	Message    string    `gorm:"type:text" json:"message"`
	TourSlug   string    `gorm:"index" json:"tour_slug"`
	Travelers  int       `json:"travelers"`
	TravelDate string    `gorm:"type:varchar(20)" json:"travel_date"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
