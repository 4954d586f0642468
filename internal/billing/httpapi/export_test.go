package httpapi

import "time"

func SetRecordControllerClock(c *RecordController, now func() time.Time) {
	c.now = now
}
