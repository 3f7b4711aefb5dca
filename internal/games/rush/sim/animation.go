package sim

// Animation is a color interpolation request. The simulation creates
// animations and polls Finished; the host advances them once per step
// with AdvanceAnimations.
type Animation struct {
	Target   *RGBA
	From, To RGBA
	Duration int
	Elapsed  int
}

// NewAnimation starts an interpolation of *target from from to to over
// duration ticks. The target is set to from immediately.
func NewAnimation(target *RGBA, from, to RGBA, duration int) *Animation {
	a := &Animation{
		Target:   target,
		From:     from,
		To:       to,
		Duration: max(duration, 0),
	}
	if a.Duration == 0 {
		*target = to
	} else {
		*target = from
	}
	return a
}

// Finished reports whether the target has reached To.
func (a *Animation) Finished() bool {
	return a.Elapsed >= a.Duration
}

// Advance moves the animation forward one tick.
func (a *Animation) Advance() {
	if a.Finished() {
		return
	}
	a.Elapsed++
	*a.Target = LerpRGBA(a.From, a.To, float64(a.Elapsed)/float64(a.Duration))
}

// AdvanceAnimations is the host-side runner: it advances every pending
// animation of s by one tick and drops the finished ones.
func AdvanceAnimations(s *State) {
	kept := s.Animations[:0]
	for _, a := range s.Animations {
		a.Advance()
		if !a.Finished() {
			kept = append(kept, a)
		}
	}
	clear(s.Animations[len(kept):])
	s.Animations = kept
}
