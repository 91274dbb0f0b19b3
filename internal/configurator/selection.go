package configurator

import "renovo/internal/domain/catalog"

// Stage is how far the user has drilled into the category hierarchy.
type Stage int

const (
	StageEmpty Stage = iota
	StageRoom
	StageElement
	StageSubElement
)

func (s Stage) String() string {
	switch s {
	case StageRoom:
		return "room_chosen"
	case StageElement:
		return "element_chosen"
	case StageSubElement:
		return "sub_element_chosen"
	default:
		return "empty"
	}
}

// Selection tracks the drilled-down room → element → sub-element path.
// Children are always derived from the flat category list by parent_id
// equality, the same list BuildTree is fed with.
type Selection struct {
	categories []catalog.Category
	byID       map[int64]catalog.Category

	room       *catalog.Category
	element    *catalog.Category
	subElement *catalog.Category
}

func NewSelection(categories []catalog.Category) *Selection {
	s := &Selection{}
	s.setCategories(categories)
	return s
}

func (s *Selection) setCategories(categories []catalog.Category) {
	// a repeated id keeps its first entry, as in BuildTree
	s.categories = make([]catalog.Category, 0, len(categories))
	s.byID = make(map[int64]catalog.Category, len(categories))
	for _, c := range categories {
		if _, dup := s.byID[c.ID]; dup {
			continue
		}
		s.byID[c.ID] = c
		s.categories = append(s.categories, c)
	}
}

// Rebase swaps in a fresh category list and keeps as much of the current
// path as is still valid against it; the first slot that no longer resolves
// is cleared together with everything below it.
func (s *Selection) Rebase(categories []catalog.Category) {
	room, element, sub := s.room, s.element, s.subElement
	s.setCategories(categories)
	s.room, s.element, s.subElement = nil, nil, nil

	if room == nil || !s.SelectRoom(room.ID) {
		return
	}
	if element == nil || !s.SelectElement(element.ID) {
		return
	}
	if sub != nil {
		s.SelectSubElement(sub.ID)
	}
}

// SelectRoom sets the room and clears the element and sub-element. It returns
// false, changing nothing, when id is not a room.
func (s *Selection) SelectRoom(id int64) bool {
	c, ok := s.byID[id]
	if !ok || !c.IsRoom() {
		return false
	}
	s.room = &c
	s.element = nil
	s.subElement = nil
	return true
}

// SelectElement requires a selected room and an element under it; it clears
// the sub-element.
func (s *Selection) SelectElement(id int64) bool {
	if s.room == nil {
		return false
	}
	c, ok := s.byID[id]
	if !ok || !childOf(c, s.room.ID) {
		return false
	}
	s.element = &c
	s.subElement = nil
	return true
}

// SelectSubElement requires a selected element and a sub-element under it.
func (s *Selection) SelectSubElement(id int64) bool {
	if s.element == nil {
		return false
	}
	c, ok := s.byID[id]
	if !ok || !childOf(c, s.element.ID) {
		return false
	}
	s.subElement = &c
	return true
}

func childOf(c catalog.Category, parentID int64) bool {
	return c.ParentID != nil && *c.ParentID == parentID
}

func (s *Selection) Stage() Stage {
	switch {
	case s.subElement != nil:
		return StageSubElement
	case s.element != nil:
		return StageElement
	case s.room != nil:
		return StageRoom
	default:
		return StageEmpty
	}
}

func (s *Selection) Room() *catalog.Category       { return s.room }
func (s *Selection) Element() *catalog.Category    { return s.element }
func (s *Selection) SubElement() *catalog.Category { return s.subElement }

// SubElementID is the filter key for the product catalog; nil until a
// sub-element is chosen.
func (s *Selection) SubElementID() *int64 {
	if s.subElement == nil {
		return nil
	}
	id := s.subElement.ID
	return &id
}

// Rooms lists the categories with no parent, in input order.
func (s *Selection) Rooms() []catalog.Category {
	out := make([]catalog.Category, 0)
	for _, c := range s.categories {
		if c.IsRoom() {
			out = append(out, c)
		}
	}
	return out
}

// Elements lists the children of the selected room.
func (s *Selection) Elements() []catalog.Category {
	if s.room == nil {
		return []catalog.Category{}
	}
	return s.childrenOf(s.room.ID)
}

// SubElements lists the children of the selected element.
func (s *Selection) SubElements() []catalog.Category {
	if s.element == nil {
		return []catalog.Category{}
	}
	return s.childrenOf(s.element.ID)
}

func (s *Selection) childrenOf(parentID int64) []catalog.Category {
	out := make([]catalog.Category, 0)
	for _, c := range s.categories {
		if childOf(c, parentID) {
			out = append(out, c)
		}
	}
	return out
}
