package service

import (
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/internal/taxonomy"
	"github.com/malabartrails/tours-backend/pkg/logger"
)

const (
	defaultOffersMaxItems = 6
	maxOffersItems        = 24
)

// Defaults for each homepage block. A stored block overrides them field by
// field: a blank stored field keeps the default.
var (
	defaultHero = model.HeroSettings{
		Title:    "Discover Kerala",
		Subtitle: "Tours planned by people who live here",
		CTAText:  "Browse tours",
		CTALink:  "/tours",
	}
	defaultTourOffers = model.TourOffersSettings{
		Heading:  "Tour Offers",
		MaxItems: defaultOffersMaxItems,
	}
	defaultDayOut = model.DayOutSettings{
		Heading: "Day Outs",
	}
)

type TourOffersBlock struct {
	Settings model.TourOffersSettings `json:"settings"`
	Tours    []content.Summary        `json:"tours"`
}

type DayOutBlock struct {
	Settings model.DayOutSettings `json:"settings"`
	Tours    []content.Summary    `json:"tours"`
}

type Homepage struct {
	Hero       model.HeroSettings `json:"hero"`
	TourOffers TourOffersBlock    `json:"tour_offers"`
	DayOut     DayOutBlock        `json:"day_out"`
}

type SiteService interface {
	GetHomepage() (*Homepage, error)
}

type siteService struct {
	settingsRepo repository.SiteSettingsRepository
	tourRepo     repository.TourRepository
	resolver     *content.Resolver
}

func NewSiteService(settingsRepo repository.SiteSettingsRepository, tourRepo repository.TourRepository, resolver *content.Resolver) SiteService {
	return &siteService{
		settingsRepo: settingsRepo,
		tourRepo:     tourRepo,
		resolver:     resolver,
	}
}

func (s *siteService) GetHomepage() (*Homepage, error) {
	storedHero, err := s.settingsRepo.GetHero()
	if err != nil {
		return nil, err
	}
	storedOffers, err := s.settingsRepo.GetTourOffers()
	if err != nil {
		return nil, err
	}
	storedDayOut, err := s.settingsRepo.GetDayOut()
	if err != nil {
		return nil, err
	}

	hero := s.mergeHero(storedHero)
	offers := mergeTourOffers(storedOffers)
	dayOut := s.mergeDayOut(storedDayOut)

	published, err := s.tourRepo.FindPublished()
	if err != nil {
		logger.Error("Failed to load tours for homepage", err)
		return nil, err
	}
	offerTours := taxonomy.ToursByCategory(published, offers.CategorySlug, "", offers.MaxItems)

	dayOutTours, err := s.tourRepo.FindBySlugs(dayOut.TourSlugs)
	if err != nil {
		logger.Error("Failed to load day-out tours", err)
		return nil, err
	}

	return &Homepage{
		Hero: hero,
		TourOffers: TourOffersBlock{
			Settings: offers,
			Tours:    s.resolver.SummarizeAll(offerTours),
		},
		DayOut: DayOutBlock{
			Settings: dayOut,
			Tours:    s.resolver.SummarizeAll(dayOutTours),
		},
	}, nil
}

func (s *siteService) mergeHero(stored *model.HeroSettings) model.HeroSettings {
	hero := defaultHero
	if stored != nil {
		hero.Title = firstNonBlank(stored.Title, hero.Title)
		hero.Subtitle = firstNonBlank(stored.Subtitle, hero.Subtitle)
		hero.BackgroundImageURL = stored.BackgroundImageURL
		hero.CTAText = firstNonBlank(stored.CTAText, hero.CTAText)
		hero.CTALink = firstNonBlank(stored.CTALink, hero.CTALink)
		hero.UpdatedAt = stored.UpdatedAt
	}
	hero.BackgroundImageURL = s.resolver.Sanitizer().ImageURLOrPlaceholder(hero.BackgroundImageURL)
	hero.CTALink = safeLink(hero.CTALink, defaultHero.CTALink)
	return hero
}

func mergeTourOffers(stored *model.TourOffersSettings) model.TourOffersSettings {
	offers := defaultTourOffers
	if stored != nil {
		offers.Heading = firstNonBlank(stored.Heading, offers.Heading)
		offers.Subheading = firstNonBlank(stored.Subheading, offers.Subheading)
		offers.CategorySlug = strings.TrimSpace(stored.CategorySlug)
		offers.UpdatedAt = stored.UpdatedAt
		if stored.MaxItems > 0 {
			offers.MaxItems = min(stored.MaxItems, maxOffersItems)
		}
	}
	return offers
}

func (s *siteService) mergeDayOut(stored *model.DayOutSettings) model.DayOutSettings {
	dayOut := defaultDayOut
	dayOut.TourSlugs = model.StringArray{}
	if stored != nil {
		dayOut.Heading = firstNonBlank(stored.Heading, dayOut.Heading)
		dayOut.Description = s.resolver.Sanitizer().SanitizeHTML(stored.Description)
		dayOut.ImageURL = stored.ImageURL
		dayOut.UpdatedAt = stored.UpdatedAt
		for _, slug := range stored.TourSlugs {
			if slug = strings.TrimSpace(slug); slug != "" {
				dayOut.TourSlugs = append(dayOut.TourSlugs, slug)
			}
		}
	}
	dayOut.ImageURL = s.resolver.Sanitizer().ImageURLOrPlaceholder(dayOut.ImageURL)
	return dayOut
}

func firstNonBlank(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// safeLink allows site-relative paths and http(s) URLs for call-to-action buttons.
func safeLink(link, fallback string) string {
	switch {
	case strings.HasPrefix(link, "/") && !strings.HasPrefix(link, "//"):
		return link
	case strings.HasPrefix(link, "https://"), strings.HasPrefix(link, "http://"):
		return link
	}
	return fallback
}
