package set

import (
	sliceutil "http-enum/lib/slice"

	"github.com/pkg/errors"
)

var ErrDuplicate = errors.New("duplicate member")

// Ordered is an immutable set that remembers insertion order.
// It is safe for concurrent use since nothing mutates it after New returns.
type Ordered[T comparable] struct {
	members []T
	index   map[T]struct{}
}

// New panics if the same member is given twice.
func New[T comparable](members ...T) *Ordered[T] {
	s := &Ordered[T]{
		members: make([]T, 0, len(members)),
		index:   make(map[T]struct{}, len(members)),
	}

	for _, m := range members {
		if _, ok := s.index[m]; ok {
			panic(errors.Wrapf(ErrDuplicate, "%v", m))
		}
		s.index[m] = struct{}{}
		s.members = append(s.members, m)
	}

	return s
}

func (s *Ordered[T]) Len() uint {
	return uint(len(s.members))
}

func (s *Ordered[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *Ordered[T]) Data() []T {
	out := make([]T, len(s.members))
	copy(out, s.members)
	return out
}

func (s *Ordered[T]) Filter(keep func(T) bool) []T {
	return sliceutil.Filter(s.members, keep)
}
