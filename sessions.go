package main

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"kasir/pkg/basket"
)

// Session holds one operator's in-progress basket plus the scan state used
// to discard stale recognition results. Baskets live exactly as long as the
// session; nothing is persisted.
type Session struct {
	ID string

	mu       sync.Mutex
	basket   *basket.Basket
	gen      uint64
	scanning bool
}

// BeginScan reserves the single recognition slot and returns the current
// generation. ok is false while another scan is in flight.
func (s *Session) BeginScan() (gen uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning {
		return 0, false
	}
	s.scanning = true
	return s.gen, true
}

// FinishScan releases the recognition slot, whatever the outcome.
func (s *Session) FinishScan() {
	s.mu.Lock()
	s.scanning = false
	s.mu.Unlock()
}

// CancelScan marks the camera view dismissed. An in-flight recognition is
// allowed to complete; its result just fails the generation check below.
func (s *Session) CancelScan() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

// CommitScan appends the item only if no cancel happened since the scan
// started. Returns false for a stale result.
func (s *Session) CommitScan(gen uint64, it basket.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	s.basket.Add(it)
	return true
}

func (s *Session) AddItem(it basket.Item) {
	s.mu.Lock()
	s.basket.Add(it)
	s.mu.Unlock()
}

func (s *Session) RemoveItem(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basket.Remove(i)
}

func (s *Session) Items() []basket.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basket.Items()
}

func (s *Session) Totals(discountPercent, taxRate float64) basket.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basket.Totals(discountPercent, taxRate)
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: map[string]*Session{}}
}

func (st *sessionStore) Create() *Session {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	s := &Session{ID: hex.EncodeToString(b), basket: basket.New()}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *sessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}
