package scene

import "fmt"

// ScheduleFlipbook keyframes an object so it is visible during exactly
// one frame window and hidden everywhere else. Across a batch with
// increasing frame indices this plays back as a flipbook: each object
// flashes on for its own frame.
//
// The schedule for frameIdx is: hidden at frame 0 (skipped when the
// object owns frame 0), hidden at frameIdx-1, visible at frameIdx,
// hidden at frameIdx+1. The timeline is extended to cover the trailing
// hidden key. Schedules are independent per object; overlapping frame
// indices across objects simply show both.
func ScheduleFlipbook(s Scene, h ObjectHandle, frameIdx int) error {
	if frameIdx < 0 {
		return fmt.Errorf("flipbook frame index must be >= 0, got %d", frameIdx)
	}

	s.ExtendTimeline(frameIdx + 1)

	if frameIdx > 0 {
		if err := s.SetVisibilityKeyframe(h, 0, false); err != nil {
			return err
		}
	}
	if prev := frameIdx - 1; prev >= 0 {
		if err := s.SetVisibilityKeyframe(h, prev, false); err != nil {
			return err
		}
	}
	if err := s.SetVisibilityKeyframe(h, frameIdx, true); err != nil {
		return err
	}
	return s.SetVisibilityKeyframe(h, frameIdx+1, false)
}
