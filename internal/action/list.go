package action

// List is a Source backed by a plain slice, for applications that keep
// their actions in a flat registry.
type List []Action

func (l List) AllActions() []Action {
	out := make([]Action, len(l))
	copy(out, l)
	return out
}

func (l List) ActionsByOwner(owner string) []Action {
	var out []Action
	for _, a := range l {
		if a.Owner() == owner {
			out = append(out, a)
		}
	}
	return out
}
