package session

import (
	"fmt"

	"courierdesk/internal/entities"
)

var transitions = map[entities.SessionState][]entities.SessionState{
	entities.SessionUnauthenticated: {entities.SessionAuthenticating},
	entities.SessionAuthenticating:  {entities.SessionProfileLoading, entities.SessionUnauthenticated},
	entities.SessionProfileLoading:  {entities.SessionReady, entities.SessionDegraded},
}

// machine конечный автомат одной загрузки сессии. history нужна для логов и тестов.
type machine struct {
	state   entities.SessionState
	history []entities.SessionState
}

func newMachine() *machine {
	return &machine{
		state:   entities.SessionUnauthenticated,
		history: []entities.SessionState{entities.SessionUnauthenticated},
	}
}

func (m *machine) to(next entities.SessionState) error {
	for _, allowed := range transitions[m.state] {
		if allowed == next {
			m.state = next
			m.history = append(m.history, next)
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, m.state, next)
}

// IsFinal из ready и degraded переходов нет.
func IsFinal(state entities.SessionState) bool {
	return len(transitions[state]) == 0
}
