package store

import "smartlearn/backend/models"

// Notifications returns every notification in document order.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.data.Notifications...)
}

// UnreadNotifications returns the notifications not yet marked read.
func (s *Store) UnreadNotifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Notification{}
	for _, n := range s.data.Notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// MarkNotificationRead flags the notification as read and returns it, or nil
// if the id is unknown. Marking an already-read notification again is a no-op
// that still returns the record.
func (s *Store) MarkNotificationRead(id int) *models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Notifications {
		if s.data.Notifications[i].ID == id {
			s.data.Notifications[i].Read = true
			s.save()
			n := s.data.Notifications[i]
			return &n
		}
	}
	return nil
}
