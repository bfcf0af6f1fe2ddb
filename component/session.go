package component

// Outcome is the terminal session state
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "running"
	}
}

// Session holds the terminal result; the first End wins
type Session struct {
	Outcome Outcome
	Message string
}

// End records the result if none is set and returns whether this call ended the session
func (s *Session) End(o Outcome, msg string) bool {
	if s.Outcome != OutcomeNone || o == OutcomeNone {
		return false
	}
	s.Outcome = o
	s.Message = msg
	return true
}

// Over reports whether the session has a result
func (s *Session) Over() bool {
	return s.Outcome != OutcomeNone
}
