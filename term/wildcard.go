package term

// Wildcard is a `?` type argument, with a single upper bound (the top type when
// unbounded) and at most one lower bound
type Wildcard struct {
	upper Type
	lower Type

	closureOf closureCell
}

var _ Type = (*Wildcard)(nil)

// NewWildcard builds `? extends upper super lower`. lower may be nil, upper may not:
// pass the top type for `?` and `? super X`.
func NewWildcard(upper, lower Type) *Wildcard {
	if upper == nil {
		violation("wildcard without an upper bound, the top type must be supplied explicitly")
	}
	if IsWildcard(upper) || lower != nil && IsWildcard(lower) {
		violation("wildcard bounded by a wildcard")
	}
	if IsPrimitive(upper) || lower != nil && IsPrimitive(lower) {
		violation("wildcard bounded by a primitive")
	}
	return &Wildcard{upper: upper, lower: lower}
}

// Extends builds `? extends upper`
func Extends(upper Type) *Wildcard {
	return NewWildcard(upper, nil)
}

func (w *Wildcard) Named() bool             { return false }
func (w *Wildcard) Name() string            { return "" }
func (w *Wildcard) Top() bool               { return false }
func (w *Wildcard) Type() Type              { return w }
func (w *Wildcard) Owner() Owner            { return nil }
func (w *Wildcard) closure() *closureCell   { return &w.closureOf }
func (w *Wildcard) HasTypeParameters() bool { return false }
func (w *Wildcard) TypeParameters() []Type  { return nil }
func (w *Wildcard) HasTypeArguments() bool  { return false }
func (w *Wildcard) TypeArguments() []Type   { return nil }
func (w *Wildcard) ComponentType() Type     { return nil }
func (w *Wildcard) UpperBounded() bool      { return true }
func (w *Wildcard) LowerBounded() bool      { return w.lower != nil }
func (w *Wildcard) UpperBounds() []Type     { return []Type{w.upper} }
func (w *Wildcard) Hash() uint64            { return Hash(w) }

func (w *Wildcard) LowerBounds() []Type {
	if w.lower == nil {
		return nil
	}
	return []Type{w.lower}
}

func (w *Wildcard) String() string {
	switch {
	case w.lower != nil:
		return "? super " + w.lower.String()
	case w.upper.Top():
		return "?"
	default:
		return "? extends " + w.upper.String()
	}
}
