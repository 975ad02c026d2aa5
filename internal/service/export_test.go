package service

import "time"

type idFunc func() string

func (f idFunc) Generate() string { return f() }

// SetRecordIDs replaces the record id generator of a record service.
func SetRecordIDs(s ClientRecordService, generate func() string) {
	s.(*clientRecordService).ids = idFunc(generate)
}

// SetRecordClock replaces the clock of a record service.
func SetRecordClock(s ClientRecordService, now func() time.Time) {
	s.(*clientRecordService).now = now
}
