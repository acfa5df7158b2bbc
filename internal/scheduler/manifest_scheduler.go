package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

const (
	ManifestKey        = "manifests/published-slugs.json"
	manifestArchiveDir = "manifests/archive"
	exportTimeout      = 2 * time.Minute
)

// SlugLister is satisfied by service.TourService.
type SlugLister interface {
	PublishedSlugs() ([]string, error)
}

// ManifestUploader is satisfied by storage.S3Storage.
type ManifestUploader interface {
	PutJSON(ctx context.Context, key string, v interface{}) (string, error)
}

// Manifest is the document static builds read to pre-render tour pages.
type Manifest struct {
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
	Slugs       []string  `json:"slugs"`
}

// ManifestScheduler exports the published tour slugs to object storage on a cron schedule
type ManifestScheduler struct {
	cron     *cron.Cron
	spec     string
	tours    SlugLister
	uploader ManifestUploader
	now      func() time.Time
}

func NewManifestScheduler(spec string, tours SlugLister, uploader ManifestUploader) *ManifestScheduler {
	return &ManifestScheduler{
		cron:     cron.New(),
		spec:     spec,
		tours:    tours,
		uploader: uploader,
		now:      time.Now,
	}
}

// Start registers the export job and starts the cron runner
func (s *ManifestScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		logger.Info("Starting scheduled manifest export", nil)
		if _, err := s.Export(ctx); err != nil {
			logger.Error("Scheduled manifest export failed", err)
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for manifest export", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Manifest scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// Stop waits for a running export to finish
func (s *ManifestScheduler) Stop() {
	logger.Info("Stopping manifest scheduler...", nil)
	<-s.cron.Stop().Done()
	logger.Info("Manifest scheduler stopped", nil)
}

// Export uploads the current manifest and a dated archive copy. It returns
// the public URL of the current manifest.
func (s *ManifestScheduler) Export(ctx context.Context) (string, error) {
	slugs, err := s.tours.PublishedSlugs()
	if err != nil {
		return "", fmt.Errorf("failed to list published slugs: %w", err)
	}

	now := s.now().UTC()
	manifest := Manifest{
		GeneratedAt: now,
		Count:       len(slugs),
		Slugs:       slugs,
	}

	url, err := s.uploader.PutJSON(ctx, ManifestKey, manifest)
	if err != nil {
		return "", err
	}

	archiveKey := fmt.Sprintf("%s/%s-%s.json", manifestArchiveDir, now.Format("2006-01-02"), uuid.NewString())
	if _, err := s.uploader.PutJSON(ctx, archiveKey, manifest); err != nil {
		// The current manifest is already live; a missing archive copy is not fatal.
		logger.Warn("Failed to archive manifest", map[string]interface{}{
			"key":   archiveKey,
			"error": err.Error(),
		})
	}

	logger.Info("Manifest exported", map[string]interface{}{
		"count": manifest.Count,
		"url":   url,
	})
	return url, nil
}
