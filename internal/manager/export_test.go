package manager

import "time"

// SetNow pins the service clock in tests.
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}
