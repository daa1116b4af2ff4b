/*
NAME
  stats.go

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package isect

import "time"

// OnRayCast and OnConeCast are the opt-in stats hooks for the two
// traversal-entry query classes; both nil by default.
var (
	OnRayCast  func(elapsed time.Duration)
	OnConeCast func(elapsed time.Duration)
)

func recordRayCast(start time.Time) {
	if OnRayCast != nil {
		OnRayCast(time.Since(start))
	}
}

func recordConeCast(start time.Time) {
	if OnConeCast != nil {
		OnConeCast(time.Since(start))
	}
}
