package sections

import (
	"fmt"
	"sync/atomic"

	"github.com/goliatone/go-portfolio/pkg/types"
)

// IDSource yields custom section ids.
type IDSource interface {
	NextSectionID() types.SectionID
}

// IDSourceFunc adapts a function to IDSource.
type IDSourceFunc func() types.SectionID

// NextSectionID implements IDSource.
func (fn IDSourceFunc) NextSectionID() types.SectionID { return fn() }

// ClockIDSource builds ids of the form custom-<unix-ms>-<counter>. The
// counter is process wide so two ids minted in the same millisecond differ.
type ClockIDSource struct {
	Clock   types.Clock
	counter atomic.Uint64
}

// NewClockIDSource returns a source backed by clock, or the system clock when
// nil.
func NewClockIDSource(clock types.Clock) *ClockIDSource {
	if clock == nil {
		clock = types.SystemClock{}
	}
	return &ClockIDSource{Clock: clock}
}

// NextSectionID implements IDSource.
func (s *ClockIDSource) NextSectionID() types.SectionID {
	clock := s.Clock
	if clock == nil {
		clock = types.SystemClock{}
	}
	n := s.counter.Add(1)
	return types.SectionID(fmt.Sprintf("custom-%d-%d", clock.Now().UnixMilli(), n))
}
