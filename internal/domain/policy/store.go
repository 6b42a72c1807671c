package policy

import "sync"

// Store is the process-wide holder of the current Policy. Writes are visible
// to every Get that follows them.
//
// Each setter validates the whole resulting policy, so opening time may never
// pass closing time. To move the hours past the current closing time, set the
// closing time first or change both in a single Update.
type Store struct {
	mu     sync.RWMutex
	policy Policy
}

func NewStore(initial Policy) (*Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &Store{policy: initial}, nil
}

func (s *Store) Get() Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// Update applies fn to a copy of the current policy and stores the result if
// it is valid. On error the stored policy is unchanged.
func (s *Store) Update(fn func(p *Policy)) (Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.policy
	fn(&next)
	if err := next.Validate(); err != nil {
		return s.policy, err
	}
	s.policy = next
	return next, nil
}

func (s *Store) SetOpeningTime(v string) error {
	_, err := s.Update(func(p *Policy) { p.OpeningTime = v })
	return err
}

func (s *Store) SetClosingTime(v string) error {
	_, err := s.Update(func(p *Policy) { p.ClosingTime = v })
	return err
}

func (s *Store) SetCancellationNotice(v string) error {
	_, err := s.Update(func(p *Policy) { p.CancellationNotice = v })
	return err
}

func (s *Store) SetMidweekDiscountFraction(v float64) error {
	_, err := s.Update(func(p *Policy) { p.MidweekDiscountFraction = v })
	return err
}

func (s *Store) ValidateBooking(date, clock string) error {
	return s.Get().ValidateBooking(date, clock)
}

func (s *Store) CancellationPolicyText() string {
	return s.Get().CancellationPolicyText()
}
