package models

// Selection is the caller's current set of chosen parts. Builders keep at
// most one component per type through With; the power estimate still sums
// whatever is passed in, so a hand-built slice with two Memory kits counts
// both.
type Selection []*Component

// SelectionOf builds a Selection applying last-write-wins per type.
func SelectionOf(components ...*Component) Selection {
	var sel Selection
	for _, c := range components {
		sel = sel.With(c)
	}
	return sel
}

// With returns a copy of s where c replaces any component of the same type.
// The replaced component keeps its position.
func (s Selection) With(c *Component) Selection {
	if c == nil {
		return s
	}
	out := make(Selection, 0, len(s)+1)
	replaced := false
	for _, existing := range s {
		if existing == nil {
			continue
		}
		if existing.Type == c.Type {
			if !replaced {
				out = append(out, c)
				replaced = true
			}
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, c)
	}
	return out
}

// Without returns a copy of s with every component of type t removed.
func (s Selection) Without(t ComponentType) Selection {
	out := make(Selection, 0, len(s))
	for _, c := range s {
		if c != nil && c.Type != t {
			out = append(out, c)
		}
	}
	return out
}

// First returns the first component of type t, or nil.
func (s Selection) First(t ComponentType) *Component {
	for _, c := range s {
		if c != nil && c.Type == t {
			return c
		}
	}
	return nil
}

// Count returns how many components of type t are present.
func (s Selection) Count(t ComponentType) int {
	n := 0
	for _, c := range s {
		if c != nil && c.Type == t {
			n++
		}
	}
	return n
}

// Len counts non-nil components.
func (s Selection) Len() int {
	n := 0
	for _, c := range s {
		if c != nil {
			n++
		}
	}
	return n
}

// Normalized returns a copy of s with alias types such as "RAM" or
// "power supply" rewritten to their ComponentType. Unknown types are kept
// as given so the rules simply ignore them.
func (s Selection) Normalized() Selection {
	out := make(Selection, 0, len(s))
	for _, c := range s {
		if c == nil {
			continue
		}
		if t, ok := ParseComponentType(string(c.Type)); ok && t != c.Type {
			cp := *c
			cp.Type = t
			c = &cp
		}
		out = append(out, c)
	}
	return out
}
