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

package texture

import "time"

// OnBitmapFilter is the opt-in stats hook for filter calls: taps is the
// number of texel fetches the call performed (1, 4 or 16), elapsed is the
// wall time spent filtering. Nil by default; with no hook set, a filter
// call still reads the clock once and then makes one nil check.
var OnBitmapFilter func(taps int, elapsed time.Duration)

func recordFilter(taps int, start time.Time) {
	if OnBitmapFilter != nil {
		OnBitmapFilter(taps, time.Since(start))
	}
}
