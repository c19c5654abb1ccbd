// Package app provides the high-level operations shared by the CLI commands
// and the TUI: drafts, inbox state, and store change watching.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/desk/pkg/draft"
	"tableflip.dev/desk/pkg/notify"
	"tableflip.dev/desk/pkg/portal"
	"tableflip.dev/desk/pkg/schedule"
	"tableflip.dev/desk/pkg/store"
)

// Service wires the durable store, draft persistence, and notification sync
// behind one surface so UIs and commands share logic.
type Service struct {
	KV      store.KV
	Drafts  *draft.Store
	Tracker *notify.Tracker
	Client  *notify.PortalClient
	Portal  *portal.Client

	Scheduler     *schedule.Scheduler
	AutosaveDelay time.Duration
	Refresh       time.Duration
}

// New builds a Service from config, loading the local store and pointing the
// portal client at the configured base URL.
func New(cfg store.Config) (*Service, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	kv, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	client := notify.NewPortalClient(cfg.PortalURL())
	return &Service{
		KV:            kv,
		Drafts:        draft.NewStore(kv),
		Tracker:       notify.NewTracker(client),
		Client:        client,
		Portal:        portal.NewClient(cfg.PortalURL()),
		Scheduler:     schedule.NewScheduler(),
		AutosaveDelay: cfg.AutosaveDelay(),
		Refresh:       cfg.RefreshInterval(),
	}, nil
}

// Autosaver returns a debounced saver bound to the service's scheduler.
func (s *Service) Autosaver() *draft.Autosaver {
	return draft.NewAutosaver(s.Drafts, s.Scheduler, s.AutosaveDelay)
}

// DraftKeys lists forms with drafts.
func (s *Service) DraftKeys(ctx context.Context) []string {
	if s.Drafts == nil {
		return nil
	}
	return s.Drafts.List(ctx)
}

// Draft restores one form's draft.
func (s *Service) Draft(formKey string) (*draft.Record, error) {
	if s.Drafts == nil {
		return nil, errors.New("app: no draft store configured")
	}
	return s.Drafts.Restore(formKey)
}

// SaveDraft writes a draft immediately, outside the debounce path.
func (s *Service) SaveDraft(formKey string, fields map[string]string) error {
	if s.Drafts == nil {
		return errors.New("app: no draft store configured")
	}
	return s.Drafts.Save(formKey, fields)
}

// DiscardDraft removes a form's draft.
func (s *Service) DiscardDraft(formKey string) error {
	if s.Drafts == nil {
		return errors.New("app: no draft store configured")
	}
	return s.Drafts.Discard(formKey)
}

// LoadInbox fetches the portal inbox into the tracker and returns the visible
// items.
func (s *Service) LoadInbox(ctx context.Context) ([]notify.Item, error) {
	if s.Client == nil || s.Tracker == nil {
		return nil, errors.New("app: no portal client configured")
	}
	items, count, err := s.Client.Inbox(ctx)
	if err != nil {
		return nil, err
	}
	s.Tracker.SetItems(items, count)
	return s.Tracker.Visible(), nil
}

// MarkRead acknowledges one item through the tracker.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	if s.Tracker == nil {
		return errors.New("app: no tracker configured")
	}
	return s.Tracker.MarkRead(ctx, id)
}

// RefreshCount pulls the authoritative unread count.
func (s *Service) RefreshCount(ctx context.Context) error {
	if s.Tracker == nil {
		return errors.New("app: no tracker configured")
	}
	return s.Tracker.RefreshCount(ctx)
}

// UnreadCount returns the currently displayed count.
func (s *Service) UnreadCount() int {
	if s.Tracker == nil {
		return 0
	}
	return s.Tracker.Count()
}

// LeaveRequests fetches the caller's leave request rows from the portal.
func (s *Service) LeaveRequests(ctx context.Context) ([]portal.LeaveRequest, error) {
	if s.Portal == nil {
		return nil, errors.New("app: no portal client configured")
	}
	return s.Portal.LeaveRequests(ctx)
}

// Documents fetches the caller's uploaded document rows from the portal.
func (s *Service) Documents(ctx context.Context) ([]portal.Document, error) {
	if s.Portal == nil {
		return nil, errors.New("app: no portal client configured")
	}
	return s.Portal.Documents(ctx)
}

// SubmitLeave posts a leave request and, on success, drops its draft.
func (s *Service) SubmitLeave(ctx context.Context, req portal.LeaveRequest) (string, error) {
	if s.Portal == nil {
		return "", errors.New("app: no portal client configured")
	}
	id, err := s.Portal.SubmitLeave(ctx, req)
	if err != nil {
		return "", err
	}
	if err := s.Autosaver().Submitted(portal.LeaveFormKey); err != nil {
		return id, err
	}
	return id, nil
}

// Watch subscribes to local store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.KV == nil {
		return nil, errors.New("app: no store configured")
	}
	return s.KV.Watch(ctx)
}
