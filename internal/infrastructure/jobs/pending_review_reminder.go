package jobs

import (
	"context"
	"log"
	"time"

	"dealhub.backend/internal/domain/repositories"
)

// PendingReviewReminderJob periodically surfaces merchant applications that
// have been waiting for review longer than the configured age.
type PendingReviewReminderJob struct {
	repo        repositories.MerchantRepository
	interval    time.Duration
	maxAgeHours int
	stop        chan struct{}
}

func NewPendingReviewReminderJob(repo repositories.MerchantRepository, interval time.Duration, maxAgeHours int) *PendingReviewReminderJob {
	if interval <= 0 {
		interval = time.Hour
	}
	if maxAgeHours <= 0 {
		maxAgeHours = 48
	}
	return &PendingReviewReminderJob{
		repo:        repo,
		interval:    interval,
		maxAgeHours: maxAgeHours,
		stop:        make(chan struct{}),
	}
}

func (j *PendingReviewReminderJob) Start(ctx context.Context) {
	log.Println("🕐 Starting pending review reminder job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Pending review reminder job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Pending review reminder job stopped")
			return
		case <-ticker.C:
			j.checkPendingApplications(ctx)
		}
	}
}

func (j *PendingReviewReminderJob) Stop() {
	close(j.stop)
}

func (j *PendingReviewReminderJob) checkPendingApplications(ctx context.Context) {
	count, err := j.repo.CountPendingOlderThan(ctx, j.maxAgeHours)
	if err != nil {
		log.Printf("❌ Error counting stale pending applications: %v", err)
		return
	}

	if count == 0 {
		return
	}

	log.Printf("⏳ %d merchant application(s) pending review for more than %dh", count, j.maxAgeHours)
}
