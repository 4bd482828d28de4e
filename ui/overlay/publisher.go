package overlay

// UpdateFunc receives every newly published Spec.
type UpdateFunc func(Spec)

// A Publisher derives a Spec from RawInput and calls its listener when the
// result differs from the last one it published.
type Publisher struct {
	index    int
	onUpdate UpdateFunc

	last      Spec
	published bool
}

func NewPublisher(index int, onUpdate UpdateFunc) *Publisher {
	return &Publisher{index: index, onUpdate: onUpdate}
}

func (p *Publisher) Index() int {
	return p.index
}

// Publish derives the Spec for raw and notifies the listener if it changed.
// The first call always notifies. Returns whether the listener was called.
func (p *Publisher) Publish(raw RawInput) bool {
	spec := Derive(p.index, raw)
	if p.published && spec == p.last {
		return false
	}
	p.last = spec
	p.published = true
	if p.onUpdate != nil {
		p.onUpdate(spec)
	}
	return true
}

// Last returns the most recently published Spec, if any.
func (p *Publisher) Last() (Spec, bool) {
	return p.last, p.published
}
