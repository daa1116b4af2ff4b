/*
NAME
  interrupt.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package render

// InterruptKind identifies one of the four interrupt classes the
// scheduler accepts.
type InterruptKind int

const (
	Pause InterruptKind = iota
	Resume
	Terminate
	CaptureIntermediate
)

// Interrupt is a request delivered to the scheduler's run loop. Capture
// requests carry a callback invoked with the captured RenderResult.
type Interrupt struct {
	Kind      InterruptKind
	OnCapture func(RenderResult)
}
