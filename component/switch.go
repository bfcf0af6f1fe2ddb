package component

// SwitchPhase is the switch sequence state
type SwitchPhase int

const (
	SwitchIdle SwitchPhase = iota
	SwitchProgressing
	SwitchSolved
)

// SwitchSequence is an ordered press puzzle: indices must arrive as 0, 1, ..., Count-1
type SwitchSequence struct {
	Count    int
	progress int
	phase    SwitchPhase
	pressed  []bool
}

// NewSwitchSequence creates an idle sequence of n switches
func NewSwitchSequence(n int) *SwitchSequence {
	return &SwitchSequence{Count: n, pressed: make([]bool, n)}
}

// SwitchResult reports the effect of one press
type SwitchResult int

const (
	SwitchAdvanced SwitchResult = iota
	SwitchReset
	SwitchCompleted
	SwitchIgnored
)

// Press registers switch index; a wrong index resets all progress
func (s *SwitchSequence) Press(index int) SwitchResult {
	if s.phase == SwitchSolved || index < 0 || index >= s.Count {
		return SwitchIgnored
	}
	if index != s.progress {
		s.Reset()
		return SwitchReset
	}
	s.pressed[index] = true
	s.progress++
	if s.progress == s.Count {
		s.phase = SwitchSolved
		return SwitchCompleted
	}
	s.phase = SwitchProgressing
	return SwitchAdvanced
}

// Reset clears progress and every pressed flag
func (s *SwitchSequence) Reset() {
	s.progress = 0
	s.phase = SwitchIdle
	for i := range s.pressed {
		s.pressed[i] = false
	}
}

// Progress returns the number of correct presses so far
func (s *SwitchSequence) Progress() int {
	return s.progress
}

// Phase returns the current state
func (s *SwitchSequence) Phase() SwitchPhase {
	return s.phase
}

// Pressed reports whether switch index is lit
func (s *SwitchSequence) Pressed(index int) bool {
	return index >= 0 && index < len(s.pressed) && s.pressed[index]
}
