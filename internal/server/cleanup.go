package server

import "time"

// CleanupAuthInInterval sweeps expired verification codes and sessions on
// every tick. Run it in its own goroutine.
func (s Server) CleanupAuthInInterval(t *time.Ticker) {
	for range t.C {
		codes, sessions := s.Store.CleanupExpiredAuth()
		if codes > 0 || sessions > 0 {
			s.Logger.Debugf("CleanupAuthInInterval: Removed %d expired codes and %d expired sessions", codes, sessions)
		}
	}
}
