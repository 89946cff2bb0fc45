// Package jobs holds the scheduled background work: the daily follow-up
// email to newly registered users.
package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jkarlost/calculadora/internal/models"
)

type userLister interface {
	FindUsersRegisteredSince(since time.Time) ([]models.UserProfile, error)
}

type followUpSender interface {
	SendFollowUp(to, nombre string) error
}

// FollowUp sends the "próximos pasos" email to users who registered since
// the previous run.
type FollowUp struct {
	repo    userLister
	sender  followUpSender
	log     *logrus.Logger
	cron    *cron.Cron
	lastRun time.Time
}

// NewFollowUp creates the follow-up job.
func NewFollowUp(repo userLister, sender followUpSender, log *logrus.Logger) *FollowUp {
	return &FollowUp{
		repo:    repo,
		sender:  sender,
		log:     log,
		lastRun: time.Now().AddDate(0, 0, -1),
	}
}

// Start schedules the job with the given cron spec.
func (f *FollowUp) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, f.run); err != nil {
		return fmt.Errorf("failed to schedule follow-up job: %w", err)
	}
	c.Start()
	f.cron = c
	f.log.Infof("Follow-up job scheduled: %s", spec)
	return nil
}

// Stop halts the scheduler.
func (f *FollowUp) Stop() {
	if f.cron != nil {
		f.cron.Stop()
	}
}

func (f *FollowUp) run() {
	since := f.lastRun
	f.lastRun = time.Now()

	users, err := f.repo.FindUsersRegisteredSince(since)
	if err != nil {
		f.log.Errorf("Follow-up job failed to list users: %v", err)
		return
	}

	sent := 0
	for _, u := range users {
		if u.Email == "" {
			continue
		}
		if err := f.sender.SendFollowUp(u.Email, u.Nombre); err != nil {
			// Logged by the sender; keep going for the rest of the batch.
			continue
		}
		sent++
	}
	f.log.Infof("Follow-up job sent %d of %d emails", sent, len(users))
}
