// Package draft persists unsent form field values so they survive reloads and
// restarts. Drafting is a convenience: storage failures degrade to "no draft
// available" and are never surfaced as blocking errors.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"tableflip.dev/desk/pkg/schedule"
	"tableflip.dev/desk/pkg/store"
)

// ErrAbsent signals that no draft exists for a form key.
var ErrAbsent = errors.New("draft: absent")

const keyPrefix = "autosave:"

// Record is one persisted draft: the form it belongs to, its field values,
// and when it was last written.
type Record struct {
	FormKey string            `json:"form_key"`
	Fields  map[string]string `json:"fields"`
	SavedAt Timestamp         `json:"saved_at"`
}

// Merge overlays the draft's fields onto current, leaving any field named in
// fileFields untouched. File inputs cannot be restored from persisted text.
func (r *Record) Merge(current map[string]string, fileFields ...string) map[string]string {
	merged := make(map[string]string, len(current)+len(r.Fields))
	for name, value := range current {
		merged[name] = value
	}
	skip := make(map[string]struct{}, len(fileFields))
	for _, name := range fileFields {
		skip[name] = struct{}{}
	}
	for name, value := range r.Fields {
		if _, isFile := skip[name]; isFile {
			continue
		}
		merged[name] = value
	}
	return merged
}

// Store reads and writes draft records in the durable local store.
type Store struct {
	kv  store.KV
	now func() time.Time
}

// NewStore wraps the given KV.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Save writes the draft for formKey, replacing any prior record. Fields with
// empty values are never persisted as present; an empty mapping still writes
// a (field-less) record.
func (s *Store) Save(formKey string, fields map[string]string) error {
	if strings.TrimSpace(formKey) == "" {
		return errors.New("draft: form key required")
	}
	kept := make(map[string]string, len(fields))
	for name, value := range fields {
		if name == "" || value == "" {
			continue
		}
		kept[name] = value
	}
	rec := Record{
		FormKey: formKey,
		Fields:  kept,
		SavedAt: Timestamp{s.now()},
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("draft: marshal %s: %w", formKey, err)
	}
	return s.kv.Put(keyPrefix+formKey, data)
}

// Restore returns the most recent draft for formKey, or ErrAbsent.
func (s *Store) Restore(formKey string) (*Record, error) {
	data, err := s.kv.Get(keyPrefix + formKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAbsent
		}
		return nil, err
	}
	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("draft: decode %s: %w", formKey, err)
	}
	if rec.FormKey == "" {
		rec.FormKey = formKey
	}
	if rec.Fields == nil {
		rec.Fields = map[string]string{}
	}
	return rec, nil
}

// Discard deletes the draft for formKey so a submitted form never resurfaces.
func (s *Store) Discard(formKey string) error {
	return s.kv.Erase(keyPrefix + formKey)
}

// List returns the form keys that currently have drafts.
func (s *Store) List(ctx context.Context) []string {
	keys := s.kv.Keys(ctx, keyPrefix)
	forms := make([]string, 0, len(keys))
	for _, key := range keys {
		forms = append(forms, strings.TrimPrefix(key, keyPrefix))
	}
	return forms
}

// Autosaver debounces draft saves: every edit re-arms the timer and the save
// lands once the form has been quiet for the configured delay.
type Autosaver struct {
	store *Store
	sched *schedule.Scheduler
	delay time.Duration
}

// NewAutosaver builds an autosaver over the given store and scheduler. A
// non-positive delay falls back to one second.
func NewAutosaver(s *Store, sched *schedule.Scheduler, delay time.Duration) *Autosaver {
	if delay <= 0 {
		delay = time.Second
	}
	return &Autosaver{store: s, sched: sched, delay: delay}
}

// Edited notes that some field of formKey changed. snapshot is taken when the
// timer fires, not when the edit happens, so the freshest values win.
func (a *Autosaver) Edited(formKey string, snapshot func() map[string]string) {
	a.sched.Schedule(keyPrefix+formKey, a.delay, func() {
		if err := a.store.Save(formKey, snapshot()); err != nil {
			// Degrade silently; the user keeps typing either way.
			fmt.Fprintf(os.Stderr, "draft: autosave %s: %v\n", formKey, err)
		}
	})
}

// Submitted cancels any pending save and discards the stored draft.
func (a *Autosaver) Submitted(formKey string) error {
	a.sched.Cancel(keyPrefix + formKey)
	return a.store.Discard(formKey)
}
