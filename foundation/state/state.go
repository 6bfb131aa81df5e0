package state

import "sync"

type Service int

const (
	Capturing Service = iota
	Redis
	Speaker
)

type State struct {
	sync.RWMutex

	Capturing bool
	Redis     bool
	Speaker   bool
}

func NewState() *State {
	return &State{
		Capturing: false,
		Redis:     true,
		Speaker:   true,
	}
}

func (s *State) Get(svc Service) bool {
	s.RLock()
	defer s.RUnlock()
	{
		switch svc {
		case Capturing:
			return s.Capturing

		case Redis:
			return s.Redis

		case Speaker:
			return s.Speaker
		}
	}
	return false
}

func (s *State) Set(svc Service, state bool) {
	s.Lock()
	defer s.Unlock()
	{
		switch svc {
		case Capturing:
			s.Capturing = state

		case Redis:
			s.Redis = state

		case Speaker:
			s.Speaker = state
		}
	}
}
