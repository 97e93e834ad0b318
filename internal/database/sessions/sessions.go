// Package sessions implements the start/stop lifecycle shared by sleep and
// feeding tracking: a session opens with only a start time and closes later by
// attaching an end time, a computed duration and outcome metadata.
//
// # Usage
//
//	sleep := sessions.NewSleepRepository(db)
//	session, err := sleep.Start(profileID, entities.SleepQualityGood, "")
//	...
//	closed, err := sleep.Close(session.ID, time.Now(), entities.SleepQualityFair, "restless")
package sessions

import (
	"math"
	"time"
)

// durationMinutes computes a session's duration the way every close path must:
// whole minutes, rounded, from the wall-clock endpoints. The store is the only
// place this is computed so the (start, end, duration) triple can never
// disagree.
func durationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}
