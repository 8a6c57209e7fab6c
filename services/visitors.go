package services

import (
	"container/list"
	"sync"
	"time"

	"legal_ai_site/logger"
	"legal_ai_site/services/navigation"

	"github.com/sirupsen/logrus"
)

const (
	defaultMaxSessions = 10000
	defaultMaxTabs     = 8
)

// sessionKey addresses the navigation state of one browser tab
type sessionKey struct {
	visitor string
	tab     string
}

// visitorEntry tracks one tab's orchestrator and when it was last used
type visitorEntry struct {
	key          sessionKey
	orchestrator *navigation.Orchestrator
	lastSeen     time.Time
}

// StoreOption configures a VisitorStore
type StoreOption func(*VisitorStore)

// WithMaxSessions caps the number of live tabs across all visitors. The
// least recently used tab is closed to make room.
func WithMaxSessions(n int) StoreOption {
	return func(s *VisitorStore) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithMaxTabs caps the live tabs of a single visitor
func WithMaxTabs(n int) StoreOption {
	return func(s *VisitorStore) {
		if n > 0 {
			s.maxTabs = n
		}
	}
}

// VisitorStore keeps one navigation orchestrator per browser tab. The
// visitor cookie only groups tabs; each tab navigates on its own. Tabs idle
// longer than ttl are closed, and the store never holds more than
// maxSessions of them.
type VisitorStore struct {
	ttl         time.Duration
	maxSessions int
	maxTabs     int
	factory     func() *navigation.Orchestrator
	now         func() time.Time

	mu      sync.Mutex
	entries map[sessionKey]*list.Element
	lru     *list.List // front is the most recently used
	tabs    map[string]int
	stop    chan struct{}
	once    sync.Once
}

func NewVisitorStore(ttl time.Duration, factory func() *navigation.Orchestrator, opts ...StoreOption) *VisitorStore {
	s := &VisitorStore{
		ttl:         ttl,
		maxSessions: defaultMaxSessions,
		maxTabs:     defaultMaxTabs,
		factory:     factory,
		now:         time.Now,
		entries:     make(map[sessionKey]*list.Element),
		lru:         list.New(),
		tabs:        make(map[string]int),
		stop:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the tab's orchestrator, creating it on first use. Creating
// one may close the visitor's oldest tab or the store's least recently
// used one.
func (s *VisitorStore) Get(visitor, tab string) *navigation.Orchestrator {
	key := sessionKey{visitor: visitor, tab: tab}

	s.mu.Lock()
	if el, ok := s.entries[key]; ok {
		entry := s.touchLocked(el)
		s.mu.Unlock()
		return entry.orchestrator
	}

	var evicted []*visitorEntry
	if s.tabs[visitor] >= s.maxTabs {
		if entry := s.oldestTabLocked(visitor); entry != nil {
			evicted = append(evicted, s.removeLocked(entry))
		}
	}
	for len(s.entries) >= s.maxSessions {
		evicted = append(evicted, s.removeLocked(s.lru.Back().Value.(*visitorEntry)))
	}

	entry := &visitorEntry{key: key, orchestrator: s.factory(), lastSeen: s.now()}
	s.entries[key] = s.lru.PushFront(entry)
	s.tabs[visitor]++
	s.mu.Unlock()

	s.closeAll(evicted, "evicted visitor tabs")
	return entry.orchestrator
}

// Lookup returns the tab's orchestrator without creating one
func (s *VisitorStore) Lookup(visitor, tab string) (*navigation.Orchestrator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[sessionKey{visitor: visitor, tab: tab}]
	if !ok {
		return nil, false
	}
	return s.touchLocked(el).orchestrator, true
}

// Len returns the number of live tabs
func (s *VisitorStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Tabs returns the number of live tabs of one visitor
func (s *VisitorStore) Tabs(visitor string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabs[visitor]
}

// Sweep closes and forgets tabs idle for longer than ttl. It returns the
// number removed.
func (s *VisitorStore) Sweep() int {
	now := s.now()
	var expired []*visitorEntry

	s.mu.Lock()
	// The list is ordered by lastSeen, so the idle tabs sit at the back.
	for el := s.lru.Back(); el != nil; el = s.lru.Back() {
		entry := el.Value.(*visitorEntry)
		if now.Sub(entry.lastSeen) <= s.ttl {
			break
		}
		expired = append(expired, s.removeLocked(entry))
	}
	s.mu.Unlock()

	s.closeAll(expired, "closed idle visitor tabs")
	return len(expired)
}

// StartCleanup sweeps on every tick until Close is called
func (s *VisitorStore) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Close stops the cleanup loop and closes every orchestrator
func (s *VisitorStore) Close() {
	s.once.Do(func() { close(s.stop) })

	s.mu.Lock()
	var all []*visitorEntry
	for el := s.lru.Front(); el != nil; el = el.Next() {
		all = append(all, el.Value.(*visitorEntry))
	}
	s.entries = make(map[sessionKey]*list.Element)
	s.lru.Init()
	s.tabs = make(map[string]int)
	s.mu.Unlock()

	for _, entry := range all {
		entry.orchestrator.Close()
	}
}

func (s *VisitorStore) touchLocked(el *list.Element) *visitorEntry {
	entry := el.Value.(*visitorEntry)
	entry.lastSeen = s.now()
	s.lru.MoveToFront(el)
	return entry
}

func (s *VisitorStore) oldestTabLocked(visitor string) *visitorEntry {
	for el := s.lru.Back(); el != nil; el = el.Prev() {
		if entry := el.Value.(*visitorEntry); entry.key.visitor == visitor {
			return entry
		}
	}
	return nil
}

func (s *VisitorStore) removeLocked(entry *visitorEntry) *visitorEntry {
	if el, ok := s.entries[entry.key]; ok {
		s.lru.Remove(el)
		delete(s.entries, entry.key)
	}
	if s.tabs[entry.key.visitor]--; s.tabs[entry.key.visitor] <= 0 {
		delete(s.tabs, entry.key.visitor)
	}
	return entry
}

// closeAll closes orchestrators outside the lock; Close waits for a
// running transition to finish.
func (s *VisitorStore) closeAll(entries []*visitorEntry, msg string) {
	for _, entry := range entries {
		entry.orchestrator.Close()
	}
	if len(entries) > 0 {
		logger.WithFields(logrus.Fields{"count": len(entries)}).Debug(msg)
	}
}
