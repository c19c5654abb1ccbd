package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned by Get when no value exists for a key.
var ErrNotFound = errors.New("store: key not found")

// KV is the durable local keyed store backing drafts and cached state. Keys
// are namespaced with ':' separators, e.g. "autosave:leave-request".
type KV interface {
	Put(key string, value []byte) error
	Get(key string) ([]byte, error)
	Erase(key string) error
	Keys(ctx context.Context, prefix string) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a KV backed by diskv using the provided config.
func Load(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &kv{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type kv struct {
	d        *diskv.Diskv
	basePath string
}

func (p *kv) Put(key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	return p.d.Write(key, value)
}

func (p *kv) Get(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (p *kv) Erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *kv) Keys(ctx context.Context, prefix string) []string {
	all := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			all = append(all, key)
		}
	}
	sort.Strings(all)
	return all
}

// keyToPathTransform maps "autosave:leave-request" onto autosave/leave-request
// so each namespace gets its own directory bucket.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, ":")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s:%s", strings.Join(pathKey.Path, ":"), pathKey.FileName)
}
