package usecase

import "time"

// SetClock pins the time source of a usecase so tests can control "now".
func SetClock(uc interface{}, now func() time.Time) {
	switch v := uc.(type) {
	case *interviewUsecase:
		v.now = now
	case *dashboardUsecase:
		v.now = now
	case *studentUsecase:
		v.now = now
	}
}
