package service

import (
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain"
	"github.com/diegoclair/game-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
)

// Options carries the values the reminder services are built from
type Options struct {
	Team         entity.TrackedTeam
	ChannelID    string
	SourceZone   string
	Location     *time.Location
	ReminderLead time.Duration
	StartupDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.SourceZone == "" {
		o.SourceZone = domain.DefaultSourceTimezone
	}
	if o.ReminderLead <= 0 {
		o.ReminderLead = domain.DefaultReminderLead
	}
	switch {
	case o.StartupDelay < 0:
		o.StartupDelay = domain.DefaultStartupDelay
	case o.StartupDelay < domain.MinStartupDelay:
		o.StartupDelay = domain.MinStartupDelay
	}
	return o
}

type Instance struct {
	Resolver     *TimeResolver
	Planner      *reminderPlanner
	Orchestrator *orchestrator
}

func NewInstance(opts Options, dm contract.DataManager, fetcher contract.GameFetcher, jobs contract.JobScheduler, sender contract.MessageSender) *Instance {
	opts = opts.withDefaults()

	resolver := NewTimeResolver(opts.Location)
	planner := newReminderPlanner(resolver, opts.Team, opts.SourceZone, opts.ReminderLead)

	return &Instance{
		Resolver:     resolver,
		Planner:      planner,
		Orchestrator: newOrchestrator(opts, dm, fetcher, jobs, sender, planner),
	}
}
