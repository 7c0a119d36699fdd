package cron

import (
	"context"

	"github.com/plantify-app/plantify-backend/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartCronJobs wires the recurring maintenance jobs and starts the scheduler.
func StartCronJobs(resetter *jobs.StreakResetter) *cron.Cron {
	c := cron.New()

	// Streak reset right after midnight
	c.AddFunc("0 0 * * *", func() {
		if err := resetter.RunDailyScan(context.Background()); err != nil {
			logrus.WithError(err).Error("Streak reset scan failed")
		}
	})

	c.Start()
	return c
}
