package touch

// Sampler polls a Device once per tick and turns the result into a Sample.
//
// Without dedup every tick is independent: a controller that keeps reporting
// the same press is dispatched on every tick it is seen. With dedup a press
// that is identical to the previous tick's handled (or already suppressed)
// press comes back with Pressed cleared and Repeat set.
type Sampler struct {
	dev   Device
	dedup bool

	prev     Report
	consumed bool
}

// NewSampler creates a sampler for dev. dev may be nil, in which case every
// sample is empty.
func NewSampler(dev Device, dedup bool) *Sampler {
	return &Sampler{
		dev:   dev,
		dedup: dedup,
	}
}

// Present probes the device once.
func (s *Sampler) Present() bool {
	if s.dev == nil {
		return false
	}
	return s.dev.DetectPresence()
}

// Next reads the device and returns this tick's sample.
func (s *Sampler) Next() Sample {
	if s.dev == nil {
		return Sample{}
	}

	if r, ok := s.dev.(Refresher); ok {
		r.Refresh()
	}

	var rep Report
	rep.Point, rep.HasPoint = s.dev.Point()
	rep.Gesture = s.dev.Gesture()
	rep.Pressed = s.dev.Pressed()

	smp := Sample{
		Report: rep,
		Intent: Normalize(rep.Gesture),
	}

	if s.dedup && s.consumed && rep.Pressed && rep == s.prev {
		smp.Pressed = false
		smp.Repeat = true
	} else {
		s.consumed = false
	}
	s.prev = rep

	return smp
}

// Discard reads and drops whatever the device reported while nobody was
// polling it.
func (s *Sampler) Discard() {
	if s.dev == nil {
		return
	}
	if r, ok := s.dev.(Refresher); ok {
		r.Refresh()
	}
	s.prev = Report{}
	s.consumed = false
}

// Handled marks the last sample as dispatched.
func (s *Sampler) Handled() {
	s.consumed = true
}
