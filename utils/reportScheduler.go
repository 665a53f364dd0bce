package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
	"lms/models/catalog"
)

// InitializeReportScheduler sets up the daily completion-report job. The
// store handle is passed in; the scheduler owns no global state.
func InitializeReportScheduler(db *gorm.DB) *cron.Cron {
	log.Println("[REPORT-SCHEDULER] Initializing completion report scheduler...")

	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ReportCron, func() {
		log.Println("[REPORT-SCHEDULER] Running daily completion report...")
		SendDailyCompletionReport(db)
	}); err != nil {
		log.Printf("[REPORT-SCHEDULER] Invalid cron expression %q: %v", config.AppConfig.ReportCron, err)
		return c
	}

	c.Start()
	log.Printf("[REPORT-SCHEDULER] Completion report scheduler started (%s)", config.AppConfig.ReportCron)
	return c
}

// SendDailyCompletionReport mails every admin a summary of the last day's
// training activity.
func SendDailyCompletionReport(db *gorm.DB) {
	since := time.Now().AddDate(0, 0, -1)

	var completions int64
	if err := db.Model(&catalog.VideoProgress{}).
		Where("completed_at >= ?", since).
		Count(&completions).Error; err != nil {
		log.Printf("[REPORT-SCHEDULER] Error counting completions: %v", err)
		return
	}

	var passes int64
	if err := db.Model(&catalog.VideoProgress{}).
		Where("quiz_completed = ? AND updated_at >= ?", true, since).
		Count(&passes).Error; err != nil {
		log.Printf("[REPORT-SCHEDULER] Error counting quiz passes: %v", err)
		return
	}

	var admins []models.User
	if err := db.Where("role = ? OR is_super_user = ?", models.RoleAdmin, true).Find(&admins).Error; err != nil {
		log.Printf("[REPORT-SCHEDULER] Error fetching admins: %v", err)
		return
	}
	if len(admins) == 0 {
		return
	}

	to := make([]string, len(admins))
	for i, a := range admins {
		to[i] = a.Email
	}

	if err := SendCompletionReport(to, completions, passes); err != nil {
		log.Printf("[REPORT-SCHEDULER] Error sending report: %v", err)
		return
	}
	log.Printf("[REPORT-SCHEDULER] Report sent to %d admin(s)", len(to))
}
