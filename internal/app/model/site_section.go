package model

import "time"

// Homepage blocks are stored as closed, typed records: one table per kind with
// an explicit column list.

type HeroSettings struct {
	ID                 uint      `gorm:"primarykey" json:"-"`
	Title              string    `json:"title"`
	Subtitle           string    `json:"subtitle"`
	BackgroundImageURL string    `json:"background_image_url"`
	CTAText            string    `gorm:"column:cta_text" json:"cta_text"`
	CTALink            string    `gorm:"column:cta_link" json:"cta_link"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (HeroSettings) TableName() string {
	return "hero_settings"
}

type TourOffersSettings struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	Heading      string    `json:"heading"`
	Subheading   string    `json:"subheading"`
	CategorySlug string    `json:"category_slug"`
	MaxItems     int       `json:"max_items"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (TourOffersSettings) TableName() string {
	return "tour_offers_settings"
}

type DayOutSettings struct {
	ID          uint        `gorm:"primarykey" json:"-"`
	Heading     string      `json:"heading"`
	Description string      `gorm:"type:text" json:"description"`
	ImageURL    string      `json:"image_url"`
	TourSlugs   StringArray `json:"tour_slugs"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (DayOutSettings) TableName() string {
	return "day_out_settings"
}
