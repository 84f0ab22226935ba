package grid

// TargetSequence is a non-empty ordered run of codes that a solution's
// value sequence must contain contiguously. It is immutable.
type TargetSequence struct {
	codes []Code
}

// NewTargetSequence copies codes into a TargetSequence.
// Returns ErrEmptySequence if codes is empty.
func NewTargetSequence(codes []Code) (TargetSequence, error) {
	if len(codes) == 0 {
		return TargetSequence{}, ErrEmptySequence
	}
	c := make([]Code, len(codes))
	copy(c, codes)

	return TargetSequence{codes: c}, nil
}

// MustTargetSequence is like NewTargetSequence but panics on error.
func MustTargetSequence(codes ...Code) TargetSequence {
	t, err := NewTargetSequence(codes)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of codes; 0 only for the zero value.
func (t TargetSequence) Len() int { return len(t.codes) }

// At returns the i-th code. It panics if i is out of range, like a slice index.
func (t TargetSequence) At(i int) Code { return t.codes[i] }

// Codes returns a copy of the codes.
func (t TargetSequence) Codes() []Code {
	out := make([]Code, len(t.codes))
	copy(out, t.codes)

	return out
}

// Equal reports whether t and o hold the same codes in the same order.
func (t TargetSequence) Equal(o TargetSequence) bool {
	if len(t.codes) != len(o.codes) {
		return false
	}
	for i := range t.codes {
		if t.codes[i] != o.codes[i] {
			return false
		}
	}

	return true
}

// OccursIn reports whether t appears as a contiguous sub-run of values.
// The zero TargetSequence never occurs.
// Complexity: O(len(values)×Len()).
func (t TargetSequence) OccursIn(values []Code) bool {
	n := len(t.codes)
	if n == 0 || n > len(values) {
		return false
	}
	for i := 0; i+n <= len(values); i++ {
		if t.EndsAt(values, i+n) {
			return true
		}
	}

	return false
}

// EndsAt reports whether t matches values[end-Len():end].
// It returns false when end lies outside [Len(), len(values)].
func (t TargetSequence) EndsAt(values []Code, end int) bool {
	n := len(t.codes)
	if n == 0 || end < n || end > len(values) {
		return false
	}
	base := end - n
	for j := 0; j < n; j++ {
		if values[base+j] != t.codes[j] {
			return false
		}
	}

	return true
}

// String renders the sequence as space-separated codes.
func (t TargetSequence) String() string {
	return JoinCodes(t.codes)
}
