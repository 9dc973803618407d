package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fieldforce/sales-agent-api/internal/models"
	"github.com/fieldforce/sales-agent-api/internal/repositories"
	"github.com/fieldforce/sales-agent-api/internal/utils"
)

// staleSessionAge is how long a login session may stay open before the
// nightly maintenance job closes it.
const staleSessionAge = 24 * time.Hour

// LoginSessionService tracks salesperson device sessions and derives
// their duration at logout.
type LoginSessionService struct {
	sessions     repositories.LoginSessionRepo
	salespersons repositories.SalespersonRepo
}

func NewLoginSessionService(sessions repositories.LoginSessionRepo, salespersons repositories.SalespersonRepo) *LoginSessionService {
	return &LoginSessionService{
		sessions:     sessions,
		salespersons: salespersons,
	}
}

func (s *LoginSessionService) Create(req *models.CreateLoginSessionRequest) (*models.LoginSession, error) {
	if s.sessions == nil {
		return nil, ErrStoreUnavailable
	}

	salespersonID, err := uuid.Parse(req.SalespersonID)
	if err != nil {
		return nil, fmt.Errorf("invalid salesperson ID: %w", err)
	}

	exists, err := s.salespersons.Exists(salespersonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New("salesperson not found")
	}

	loginTime := req.LoginTime
	if loginTime.IsZero() {
		loginTime = time.Now()
	}

	session := &models.LoginSession{
		SalespersonID: salespersonID,
		LoginTime:     loginTime,
		Location:      req.Location,
		DeviceInfo:    req.DeviceInfo,
	}

	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create login session: %w", err)
	}
	return session, nil
}

// Logout stamps the logout time and derives the session duration.
func (s *LoginSessionService) Logout(id string, logoutTime time.Time) (*models.LoginSession, error) {
	if s.sessions == nil {
		return nil, ErrStoreUnavailable
	}

	session, err := s.sessions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if session.LogoutTime != nil {
		return nil, errors.New("session already closed")
	}

	if logoutTime.IsZero() {
		logoutTime = time.Now()
	}
	if logoutTime.Before(session.LoginTime) {
		return nil, errors.New("logout time precedes login time")
	}

	duration := int(logoutTime.Sub(session.LoginTime).Minutes())
	session.LogoutTime = &logoutTime
	session.SessionDurationMinutes = &duration

	if err := s.sessions.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *LoginSessionService) List(salespersonID string) ([]models.LoginSession, error) {
	if s.sessions == nil {
		return nil, ErrStoreUnavailable
	}
	return s.sessions.List(salespersonID)
}

// CloseStale closes every session left open past the stale cutoff.
// Called by the maintenance scheduler.
func (s *LoginSessionService) CloseStale(now time.Time) int {
	if s.sessions == nil {
		return 0
	}

	cutoff := now.Add(-staleSessionAge)
	stale, err := s.sessions.ListOpenBefore(cutoff)
	if err != nil {
		utils.LogWarn("could not list stale login sessions", map[string]interface{}{
			"error": err.Error(),
		})
		return 0
	}

	closed := 0
	for i := range stale {
		session := &stale[i]
		logoutTime := now
		duration := int(logoutTime.Sub(session.LoginTime).Minutes())
		session.LogoutTime = &logoutTime
		session.SessionDurationMinutes = &duration

		if err := s.sessions.Update(session); err != nil {
			utils.LogWarn("could not close stale login session", map[string]interface{}{
				"session_id": session.ID.String(),
				"error":      err.Error(),
			})
			continue
		}
		closed++
	}
	return closed
}
