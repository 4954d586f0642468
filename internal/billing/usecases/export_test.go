package usecases

import "time"

func SetRecordServiceClock(s *SimpleRecordService, now func() time.Time) {
	s.now = now
}

func SetAnalyticsClock(s *SimpleAnalyticsService, now func() time.Time) {
	s.now = now
}

func SetRefreshClock(w *AnalyticsRefreshWorker, now func() time.Time) {
	w.now = now
}
