package trip_models

// historyLimit bounds the stored conversation; the oldest turns fall off
// first.
const historyLimit = 24

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is one logical trip conversation. Identified solely by its opaque
// id; lives until evicted by the session store.
type Session struct {
	ID      string     `json:"session_id"`
	Trip    *TripState `json:"trip_state"`
	History []ChatTurn `json:"history"`
}

func NewSession(id string) *Session {
	return &Session{ID: id, Trip: NewTripState()}
}

func (s *Session) AppendHistory(role, content string) {
	s.History = append(s.History, ChatTurn{Role: role, Content: content})
	if len(s.History) > historyLimit {
		s.History = s.History[len(s.History)-historyLimit:]
	}
}

// RecentHistory returns the last n turns for prompt assembly.
func (s *Session) RecentHistory(n int) []ChatTurn {
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}
