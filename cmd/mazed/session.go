package main

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/vancomm/maze-server/internal/driver"
	"github.com/vancomm/maze-server/internal/maze"
)

// runSnapshot is one frame of a run as sent to the renderer client.
type runSnapshot struct {
	ID    string `json:"id"`
	Phase string `json:"phase"`
	Done  bool   `json:"done"`
	maze.Snapshot
}

// session is one maze run owned by the server. The run itself is
// single-threaded; mu serializes the websocket driver against
// snapshot reads from plain HTTP handlers.
type session struct {
	mu  sync.Mutex
	id  string
	run *driver.Run
	ups int
}

func (s *session) snapshot() runSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *session) snapshotLocked() runSnapshot {
	return runSnapshot{
		ID:       s.id,
		Phase:    s.run.Phase().String(),
		Done:     s.run.Done(),
		Snapshot: s.run.Maze.Snapshot(),
	}
}

// tick advances the run one step and captures the resulting frame.
func (s *session) tick() (runSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.run.Tick(); err != nil {
		return runSnapshot{}, err
	}
	return s.snapshotLocked(), nil
}

func (s *session) done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run.Done()
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

func (st *sessionStore) add(s *session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.id] = s
}

func (st *sessionStore) get(id string) (*session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *sessionStore) remove(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	return ok
}

func newSessionId() string {
	return fmt.Sprintf("%08x", rand.Uint32())
}
