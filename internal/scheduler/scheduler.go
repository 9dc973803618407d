package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fieldforce/sales-agent-api/internal/repositories"
	"github.com/fieldforce/sales-agent-api/internal/services"
	"github.com/fieldforce/sales-agent-api/internal/utils"
)

// maintenanceSchedule runs the nightly job at 03:00 server time.
const maintenanceSchedule = "0 0 3 * * *"

// Scheduler runs the recurring maintenance work: closing login
// sessions left open past the stale cutoff and reporting the daily
// conversation volume.
type Scheduler struct {
	cron          *cron.Cron
	loginSessions *services.LoginSessionService
	conversations repositories.ConversationRepo
}

func New(loginSessions *services.LoginSessionService, conversations repositories.ConversationRepo) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithSeconds()),
		loginSessions: loginSessions,
		conversations: conversations,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(maintenanceSchedule, s.runMaintenance); err != nil {
		return err
	}
	s.cron.Start()
	utils.LogInfo("maintenance scheduler started", map[string]interface{}{
		"schedule": maintenanceSchedule,
	})
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runMaintenance() {
	now := time.Now()

	closed := s.loginSessions.CloseStale(now)
	if closed > 0 {
		utils.LogInfo("closed stale login sessions", map[string]interface{}{
			"count": closed,
		})
	}

	if s.conversations != nil {
		count, err := s.conversations.CountSince(now.Add(-24 * time.Hour))
		if err != nil {
			utils.LogWarn("could not count daily conversations", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		utils.LogInfo("daily conversation volume", map[string]interface{}{
			"count": count,
		})
	}
}
