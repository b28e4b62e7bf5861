package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	appointmentRepo "carelink/database/repository/appointment"
	"carelink/models"
	"carelink/services/scheduling"
	"carelink/utils"
)

// StartCronJobs starts the background scheduler. The completion sweep moves
// approved appointments to completed once their slot has passed.
func StartCronJobs(repo appointmentRepo.AppointmentRepository) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() { sweepCompleted(repo) }); err != nil {
		utils.GetLogger().Fatal("Failed to schedule completion sweep", zap.Error(err))
	}
	c.Start()
	utils.GetLogger().Info("Cron scheduler started")
	return c
}

func sweepCompleted(repo appointmentRepo.AppointmentRepository) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	today := scheduling.DayKey(now)
	tomorrow := scheduling.DayKey(now.AddDate(0, 0, 1))

	appts, err := repo.ListApprovedBefore(ctx, tomorrow)
	if err != nil {
		logger.Error("Completion sweep query failed", zap.Error(err))
		return
	}

	var swept int
	for i := range appts {
		appt := appts[i]
		if appt.AppointmentDate == today {
			end, err := scheduling.TimeToMinutes(appt.AppointmentTime)
			if err != nil {
				continue
			}
			end += scheduling.SlotInterval
			if now.Hour()*60+now.Minute() < end {
				continue // slot still running
			}
		}

		if err := scheduling.Transition(&appt, models.StatusCompleted); err != nil {
			logger.Warn("Completion sweep transition failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}
		if err := repo.Update(ctx, &appt); err != nil {
			logger.Error("Completion sweep update failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}
		swept++
	}

	if swept > 0 {
		logger.Info("Completion sweep finished", zap.Int("completed", swept))
	}
}
