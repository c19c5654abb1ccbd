package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tableflip.dev/desk/pkg/draft"
)

type testConfig struct {
	path   string
	portal string
}

func (t testConfig) BasePath() string               { return t.path }
func (t testConfig) PortalURL() string              { return t.portal }
func (t testConfig) RefreshInterval() time.Duration { return 30 * time.Second }
func (t testConfig) AutosaveDelay() time.Duration   { return 20 * time.Millisecond }

func newTestService(t *testing.T, portalURL string) *Service {
	t.Helper()
	svc, err := New(testConfig{path: t.TempDir(), portal: portalURL})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceDraftLifecycle(t *testing.T) {
	svc := newTestService(t, "http://localhost:0")

	if err := svc.SaveDraft("leave-request", map[string]string{"reason": "vacation"}); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	keys := svc.DraftKeys(context.Background())
	if len(keys) != 1 || keys[0] != "leave-request" {
		t.Fatalf("unexpected draft keys: %v", keys)
	}

	rec, err := svc.Draft("leave-request")
	if err != nil {
		t.Fatalf("restore draft: %v", err)
	}
	if rec.Fields["reason"] != "vacation" {
		t.Fatalf("unexpected fields: %v", rec.Fields)
	}

	if err := svc.DiscardDraft("leave-request"); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if _, err := svc.Draft("leave-request"); !errors.Is(err, draft.ErrAbsent) {
		t.Fatalf("expected absent draft, got %v", err)
	}
}

func TestServiceInboxAndMarkRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/notifications":
			_, _ = w.Write([]byte(`{"count": 2, "items": [
				{"id": "1", "kind": "notification", "subject": "Leave approved"},
				{"id": "2", "kind": "message", "from": "HR", "subject": "Benefits"}
			]}`))
		case "/api/notifications/1/read":
			_, _ = w.Write([]byte(`{"success": true}`))
		case "/api/notifications/count":
			_, _ = w.Write([]byte(`{"count": 5}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	ctx := context.Background()

	items, err := svc.LoadInbox(ctx)
	if err != nil {
		t.Fatalf("load inbox: %v", err)
	}
	if len(items) != 2 || svc.UnreadCount() != 2 {
		t.Fatalf("unexpected inbox: items=%d count=%d", len(items), svc.UnreadCount())
	}

	if err := svc.MarkRead(ctx, "1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if svc.UnreadCount() != 1 {
		t.Fatalf("expected optimistic count 1, got %d", svc.UnreadCount())
	}

	if err := svc.RefreshCount(ctx); err != nil {
		t.Fatalf("refresh count: %v", err)
	}
	if svc.UnreadCount() != 5 {
		t.Fatalf("authoritative count did not win: %d", svc.UnreadCount())
	}
}
