package history

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// maxTurns bounds per-session history; oldest turns are evicted first.
	maxTurns = 10
	// contextTurns is how many recent turns go into the prompt context window.
	contextTurns = 3
)

// Turn is one exchange. Both sides are stored in the working language so the
// context window stays consistent no matter which language a turn arrived in.
type Turn struct {
	User string
	Bot  string
}

type session struct {
	gate  sync.Mutex // serializes a request's read-then-append sequence
	mu    sync.Mutex // guards turns
	turns []Turn
}

// Store holds bounded recent conversation history keyed by session ID.
// History lives in process memory only and is lost on restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

func (s *Store) session(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}
	return sess
}

// Acquire takes the per-session request lock and returns its release func.
// A request holds this from context read through history append so that two
// concurrent requests for the same session cannot interleave their turns.
// Requests for different sessions never contend.
func (s *Store) Acquire(id string) func() {
	sess := s.session(id)
	sess.gate.Lock()
	return sess.gate.Unlock
}

// Context renders up to the three most recent turns as alternating
// user/bot lines, oldest first. Empty history renders as an empty string.
func (s *Store) Context(id string) string {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.turns) == 0 {
		return ""
	}

	start := len(sess.turns) - contextTurns
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for _, turn := range sess.turns[start:] {
		fmt.Fprintf(&b, "사용자: %s\n챗봇: %s\n\n", turn.User, turn.Bot)
	}
	return strings.TrimSpace(b.String())
}

// Append records a completed exchange, evicting from the front when the
// session exceeds maxTurns.
func (s *Store) Append(id, userText, botText string) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.turns = append(sess.turns, Turn{User: userText, Bot: botText})
	if len(sess.turns) > maxTurns {
		sess.turns = sess.turns[len(sess.turns)-maxTurns:]
	}
}

// Len reports the number of stored turns for a session.
func (s *Store) Len(id string) int {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return len(sess.turns)
}
