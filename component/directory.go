package component

// Directory owns the hostile population: regulars in spawn order plus at most one boss
type Directory struct {
	regulars []*Hostile
	boss     *Hostile
	nextID   EntityID
}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{}
}

// NextID allocates a hostile id
func (d *Directory) NextID() EntityID {
	d.nextID++
	return d.nextID
}

// AddRegular appends a regular hostile
func (d *Directory) AddRegular(h *Hostile) {
	d.regulars = append(d.regulars, h)
}

// SetBoss installs h as the boss; returns false if a boss is already Active or Dying
func (d *Directory) SetBoss(h *Hostile) bool {
	if d.boss != nil {
		return false
	}
	d.boss = h
	return true
}

// Boss returns the current boss or nil
func (d *Directory) Boss() *Hostile {
	return d.boss
}

// BossPresent reports whether a boss is Active or Dying
func (d *Directory) BossPresent() bool {
	return d.boss != nil
}

// Regulars returns regulars in directory order
func (d *Directory) Regulars() []*Hostile {
	return d.regulars
}

// All returns the boss first, then regulars in directory order
func (d *Directory) All() []*Hostile {
	out := make([]*Hostile, 0, len(d.regulars)+1)
	if d.boss != nil {
		out = append(out, d.boss)
	}
	return append(out, d.regulars...)
}

// Len returns the number of hostiles tracked
func (d *Directory) Len() int {
	n := len(d.regulars)
	if d.boss != nil {
		n++
	}
	return n
}

// Sweep removes every removable hostile, marks it Removed and kills its token
func (d *Directory) Sweep() []*Hostile {
	var removed []*Hostile
	if d.boss != nil && d.boss.IsRemovable() {
		removed = append(removed, d.boss)
		d.boss = nil
	}
	kept := d.regulars[:0]
	for _, h := range d.regulars {
		if h.IsRemovable() {
			removed = append(removed, h)
			continue
		}
		kept = append(kept, h)
	}
	for i := len(kept); i < len(d.regulars); i++ {
		d.regulars[i] = nil
	}
	d.regulars = kept
	for _, h := range removed {
		h.State = HostileRemoved
		h.Token.Kill()
	}
	return removed
}

// Clear removes every hostile regardless of state
func (d *Directory) Clear() []*Hostile {
	all := d.All()
	for _, h := range all {
		h.State = HostileRemoved
		h.Token.Kill()
	}
	d.regulars = nil
	d.boss = nil
	return all
}
