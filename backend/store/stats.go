package store

import "smartlearn/backend/models"

// Uptime is not measured anywhere; the dashboard has always shown this value.
const defaultUptime = 99.8

// SystemStats derives the admin counters from the current snapshot. The
// daily-active and new-registration figures are fixed fractions of the user
// count rather than measurements.
func (s *Store) SystemStats() models.SystemStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.systemStats()
}

func (s *Store) systemStats() models.SystemStats {
	instructors := 0
	for _, u := range s.data.Users {
		if u.Role == models.RoleFaculty {
			instructors++
		}
	}
	total := len(s.data.Users)
	return models.SystemStats{
		TotalUsers:        total,
		TotalCourses:      len(s.data.Courses),
		ActiveInstructors: instructors,
		SystemUptime:      defaultUptime,
		DailyActiveUsers:  total * 4 / 10,
		NewRegistrations:  total / 10,
	}
}
