package work

import (
	"time"

	domainerror "github.com/worktrack/backend/internal/domain/error"
)

// workDateLayout is the wire format for work dates.
const workDateLayout = "2006-01-02"

func parseWorkDate(value string) (time.Time, error) {
	date, err := time.Parse(workDateLayout, value)
	if err != nil {
		return time.Time{}, domainerror.NewWorkError(
			domainerror.ErrCodeInvalidWorkDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidWorkDate,
		)
	}
	return date, nil
}
