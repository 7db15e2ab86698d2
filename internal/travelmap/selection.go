package travelmap

// Selection holds at most one selected location id. The zero value is the
// cleared state. Transitions return a new value.
type Selection struct {
	id string
}

// SelectionOf restores a selection carried by a client, e.g. a form field.
func SelectionOf(id string) Selection { return Selection{id: id} }

// Select toggles: the current id clears, any other id replaces it.
func (s Selection) Select(id string) Selection {
	if s.id == id {
		return Selection{}
	}
	return Selection{id: id}
}

// Clear drops the selection unconditionally.
func (s Selection) Clear() Selection { return Selection{} }

// ID returns the selected id, if any.
func (s Selection) ID() (string, bool) { return s.id, s.id != "" }

// Active reports whether a location is selected.
func (s Selection) Active() bool { return s.id != "" }
