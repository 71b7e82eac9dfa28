// Package wizard holds the step counter shared by multi-step forms.
package wizard

// Stepper tracks the current step of a wizard with Total steps. Steps are
// numbered from 1. A Stepper is a value; Next and Prev return new values
// and never move outside [1, Total].
type Stepper struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// New returns a stepper positioned on the first step. Totals below one are
// treated as a single-step wizard.
func New(total int) Stepper {
	if total < 1 {
		total = 1
	}
	return Stepper{Current: 1, Total: total}
}

// At returns a stepper positioned on step, clamped into range.
func At(step, total int) Stepper {
	return New(total).Clamp(step)
}

// Clamp returns s moved to step, bounded to [1, Total].
func (s Stepper) Clamp(step int) Stepper {
	if s.Total < 1 {
		s.Total = 1
	}
	switch {
	case step < 1:
		step = 1
	case step > s.Total:
		step = s.Total
	}
	s.Current = step
	return s
}

// Next advances one step. It is a no-op on the last step.
func (s Stepper) Next() Stepper {
	if s.Current < s.Total {
		s.Current++
	}
	return s
}

// Prev goes back one step. It is a no-op on the first step.
func (s Stepper) Prev() Stepper {
	if s.Current > 1 {
		s.Current--
	}
	return s
}

// IsFirst reports whether s is on step 1.
func (s Stepper) IsFirst() bool {
	return s.Current <= 1
}

// IsLast reports whether s is on the terminal step.
func (s Stepper) IsLast() bool {
	return s.Current >= s.Total
}

// Percent is the rounded completion percentage shown in the progress bar.
func (s Stepper) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Current*100 + s.Total/2) / s.Total
}
