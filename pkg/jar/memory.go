package jar

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
	"github.com/dmitrymomot/cookiekit/pkg/storage"
)

// Memory is an in-process cookie jar with document.cookie semantics:
// reading returns "name=value" pairs of live cookies, writing a Set-Cookie
// string merges it by name. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries []entry
	now     func() time.Time
	logger  *slog.Logger
}

func NewMemory(opts ...Option) *Memory {
	o := applyOptions(opts)
	return &Memory{
		now:    o.now,
		logger: o.logger.With(logger.Component("memory_jar")),
	}
}

// Cookie returns the live cookies as "n1=v1; n2=v2" in creation order.
func (m *Memory) Cookie() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.entries = prune(m.entries, now)
	return render(m.entries, now)
}

// SetCookie applies one Set-Cookie string.
func (m *Memory) SetCookie(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := apply(m.entries, line, m.now())
	if err != nil {
		m.logger.Debug("rejected set-cookie", logger.Error(err))
		return err
	}
	m.entries = entries
	return nil
}

// Len returns the number of live cookies.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = prune(m.entries, m.now())
	return len(m.entries)
}

func (m *Memory) Source() storage.Source {
	return func() []string {
		return []string{m.Cookie()}
	}
}

func (m *Memory) Sink() storage.Sink {
	return m.SetCookie
}

// Storage returns a JSON-serialized storage bound to the jar.
func (m *Memory) Storage(opts ...storage.Option) *storage.Storage[any] {
	return storage.NewWithSerializer(m.Source(), m.Sink(), storage.JSON, opts...)
}
