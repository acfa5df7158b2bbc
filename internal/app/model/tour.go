package model

import (
	"fmt"
	"time"

	"github.com/malabartrails/tours-backend/pkg/util"
	"gorm.io/gorm"
)

type SectionType string

const (
	SectionOverview   SectionType = "overview"
	SectionItinerary  SectionType = "itinerary"
	SectionInclusions SectionType = "inclusions"
	SectionGallery    SectionType = "gallery"
	SectionMap        SectionType = "map"
	SectionCustom     SectionType = "custom"
)

type ImageSection string

const (
	ImageBanner    ImageSection = "banner"
	ImageOverview  ImageSection = "overview"
	ImageItinerary ImageSection = "itinerary"
	ImageGallery   ImageSection = "gallery"
)

// Normalize maps anything outside the four placements to overview.
func (s ImageSection) Normalize() ImageSection {
	switch s {
	case ImageBanner, ImageOverview, ImageItinerary, ImageGallery:
		return s
	default:
		return ImageOverview
	}
}

type ActivityType string

const (
	ActivityArrival     ActivityType = "arrival"
	ActivityDeparture   ActivityType = "departure"
	ActivityTemple      ActivityType = "temple"
	ActivityCruise      ActivityType = "cruise"
	ActivityNature      ActivityType = "nature"
	ActivityCity        ActivityType = "city"
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityCultural    ActivityType = "cultural"
	ActivityAdventure   ActivityType = "adventure"
	ActivityDefault     ActivityType = "default"
)

// Tour is the root content entity. It carries both the legacy flat fields
// (Description, DetailedContent, Itinerary, FeaturedImageURL) and the structured
// admin schema (Sections, ItineraryDays, Images); internal/content decides which wins.
type Tour struct {
	ID               uint        `gorm:"primarykey" json:"id"`
	Title            string      `gorm:"not null" json:"title"`
	Slug             string      `gorm:"uniqueIndex" json:"slug"`
	Description      string      `gorm:"type:text" json:"description"`
	DetailedContent  string      `gorm:"type:text" json:"detailed_content"`
	Itinerary        string      `gorm:"type:text" json:"itinerary"` // legacy "Day N: ..." text
	FeaturedImageURL string      `json:"featured_image_url"`
	CategoryID       *uint       `gorm:"index" json:"category_id"`
	Category         *Category   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
	Subcategories    StringArray `json:"subcategories"` // subcategory slugs
	Location         string      `gorm:"index" json:"location"`
	Duration         int         `gorm:"default:1" json:"duration"`
	Price            string      `gorm:"type:varchar(50)" json:"price"`
	IsPublished      bool        `gorm:"default:false;index" json:"is_published"`

	Sections      []TourSection  `gorm:"foreignKey:TourID" json:"sections,omitempty"`
	ItineraryDays []ItineraryDay `gorm:"foreignKey:TourID" json:"itinerary_days,omitempty"`
	Images        []TourImage    `gorm:"foreignKey:TourID" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Tour) TableName() string {
	return "tours"
}

// BeforeCreate fills the slug from the title and keeps it unique.
func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.Duration < 1 {
		t.Duration = 1
	}
	if t.Slug != "" {
		return nil
	}

	baseSlug := util.Slugify(t.Title)
	if baseSlug == "" {
		baseSlug = "tour"
	}
	slug := baseSlug

	counter := 1
	for {
		var count int64
		if err := tx.Session(&gorm.Session{NewDB: true}).Model(&Tour{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		counter++
		slug = fmt.Sprintf("%s-%d", baseSlug, counter)
	}

	t.Slug = slug
	return nil
}

type TourSection struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	TourID    uint        `gorm:"index;not null" json:"tour_id"`
	Type      SectionType `gorm:"type:varchar(20);not null" json:"type"`
	Title     string      `json:"title"`
	Content   string      `gorm:"type:text" json:"content"` // HTML, or JSON settings for map/gallery
	IsVisible bool        `json:"is_visible"`
	Order     int         `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (TourSection) TableName() string {
	return "tour_sections"
}

type ItineraryDay struct {
	ID          uint                `gorm:"primarykey" json:"id"`
	TourID      uint                `gorm:"uniqueIndex:idx_tour_day_number;not null" json:"tour_id"`
	DayNumber   int                 `gorm:"uniqueIndex:idx_tour_day_number;not null" json:"day_number"`
	Title       string              `json:"title"`
	Description string              `gorm:"type:text" json:"description"`
	Activities  []ItineraryActivity `gorm:"foreignKey:ItineraryDayID" json:"activities,omitempty"`
	IsActive    bool                `json:"is_active"`
	Order       int                 `gorm:"column:sort_order;default:0" json:"order"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (ItineraryDay) TableName() string {
	return "itinerary_days"
}

type ItineraryActivity struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	ItineraryDayID uint         `gorm:"index;not null" json:"itinerary_day_id"`
	Title          string       `gorm:"not null" json:"title"`
	ActivityType   ActivityType `gorm:"type:varchar(20)" json:"activity_type"` // empty means classify from the title
	IsIncluded     bool         `json:"is_included"`
	Order          int          `gorm:"column:sort_order;default:0" json:"order"`
}

func (ItineraryActivity) TableName() string {
	return "itinerary_activities"
}

type TourImage struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	TourID    uint         `gorm:"index;not null" json:"tour_id"`
	URL       string       `gorm:"not null" json:"url"`
	Alt       string       `json:"alt"`
	Caption   string       `json:"caption,omitempty"`
	Order     int          `gorm:"column:sort_order;default:0" json:"order"`
	Section   ImageSection `gorm:"type:varchar(20);default:'overview'" json:"section"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
}

func (TourImage) TableName() string {
	return "tour_images"
}
