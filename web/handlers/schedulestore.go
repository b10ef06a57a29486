package handlers

import (
	"sync"

	"campustime.com/campustime/schedule"
)

// ScheduleStore holds the current semester schedule in memory. Imports
// replace the whole snapshot; readers get a copy so a concurrent import
// never mutates a response mid-flight.
type ScheduleStore struct {
	mu      sync.RWMutex
	records []schedule.Record
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{}
}

func (s *ScheduleStore) Replace(records []schedule.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
}

func (s *ScheduleStore) Records() []schedule.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]schedule.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *ScheduleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
