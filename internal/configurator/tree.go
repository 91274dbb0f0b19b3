package configurator

import "renovo/internal/domain/catalog"

// Depths of the three category levels.
const (
	DepthRoom       = 0
	DepthElement    = 1
	DepthSubElement = 2
)

// AnomalyKind names a structural problem the tree builder absorbed.
type AnomalyKind string

const (
	// AnomalyOrphan: the declared parent is not in the list; the node became a root.
	AnomalyOrphan AnomalyKind = "orphan_promoted"
	// AnomalyTooDeep: the node landed below the sub-element level.
	AnomalyTooDeep AnomalyKind = "too_deep"
	// AnomalyCycle: the node's parent chain loops back on itself; the node became a root.
	AnomalyCycle AnomalyKind = "cycle"
	// AnomalyDuplicate: a second category reused an id; it was dropped.
	AnomalyDuplicate AnomalyKind = "duplicate_id"
)

type Anomaly struct {
	CategoryID int64       `json:"category_id"`
	Kind       AnomalyKind `json:"kind"`
	Depth      int         `json:"depth,omitempty"`
}

// CategoryNode is a category placed in the tree. Elements is only populated
// on rooms, SubElements only on elements.
type CategoryNode struct {
	catalog.Category
	Depth       int             `json:"depth"`
	Elements    []*CategoryNode `json:"elements"`
	SubElements []*CategoryNode `json:"sub_elements"`
}

type Tree struct {
	Rooms     []*CategoryNode `json:"rooms"`
	Anomalies []Anomaly       `json:"anomalies,omitempty"`
}

// BuildTree turns the flat, parent-referenced category list into the
// room → element → sub-element tree. Siblings keep input order.
//
// A node goes under its parent's Elements when the parent is a room
// (nil parent_id) and under the parent's SubElements otherwise. A node whose
// parent is missing is promoted to a root. Nothing is rejected: problems are
// reported in Tree.Anomalies instead.
func BuildTree(flat []catalog.Category) *Tree {
	tree := &Tree{Rooms: make([]*CategoryNode, 0)}

	nodes := make(map[int64]*CategoryNode, len(flat))
	order := make([]*CategoryNode, 0, len(flat))
	for _, c := range flat {
		if _, dup := nodes[c.ID]; dup {
			tree.Anomalies = append(tree.Anomalies, Anomaly{CategoryID: c.ID, Kind: AnomalyDuplicate})
			continue
		}
		n := &CategoryNode{
			Category:    c,
			Elements:    make([]*CategoryNode, 0),
			SubElements: make([]*CategoryNode, 0),
		}
		nodes[c.ID] = n
		order = append(order, n)
	}

	cyclic := cycleMembers(nodes)

	for _, n := range order {
		var parent *CategoryNode
		if n.ParentID != nil {
			parent = nodes[*n.ParentID]
		}

		switch {
		case cyclic[n.ID]:
			tree.Anomalies = append(tree.Anomalies, Anomaly{CategoryID: n.ID, Kind: AnomalyCycle})
			tree.Rooms = append(tree.Rooms, n)
		case parent == nil:
			if n.ParentID != nil {
				tree.Anomalies = append(tree.Anomalies, Anomaly{CategoryID: n.ID, Kind: AnomalyOrphan})
			}
			tree.Rooms = append(tree.Rooms, n)
		case parent.ParentID == nil:
			parent.Elements = append(parent.Elements, n)
		default:
			parent.SubElements = append(parent.SubElements, n)
		}
	}

	for _, root := range tree.Rooms {
		assignDepth(root, DepthRoom)
	}
	for _, n := range order {
		if n.Depth > DepthSubElement {
			tree.Anomalies = append(tree.Anomalies, Anomaly{CategoryID: n.ID, Kind: AnomalyTooDeep, Depth: n.Depth})
		}
	}

	return tree
}

func assignDepth(n *CategoryNode, depth int) {
	n.Depth = depth
	for _, c := range n.Elements {
		assignDepth(c, depth+1)
	}
	for _, c := range n.SubElements {
		assignDepth(c, depth+1)
	}
}

// cycleMembers marks every node whose parent chain leads back to itself.
func cycleMembers(nodes map[int64]*CategoryNode) map[int64]bool {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[int64]int, len(nodes))
	cyclic := make(map[int64]bool)

	for id := range nodes {
		if state[id] != unvisited {
			continue
		}
		var path []int64
		cur := id
		for {
			n, ok := nodes[cur]
			if !ok || state[cur] == done {
				break
			}
			if state[cur] == inProgress {
				// cur closes a loop: everything from its first occurrence on is cyclic.
				for i := len(path) - 1; i >= 0; i-- {
					cyclic[path[i]] = true
					if path[i] == cur {
						break
					}
				}
				break
			}
			state[cur] = inProgress
			path = append(path, cur)
			if n.ParentID == nil {
				break
			}
			cur = *n.ParentID
		}
		for _, p := range path {
			state[p] = done
		}
	}
	return cyclic
}

// Find returns the node with the given id, or nil.
func (t *Tree) Find(id int64) *CategoryNode {
	var walk func([]*CategoryNode) *CategoryNode
	walk = func(list []*CategoryNode) *CategoryNode {
		for _, n := range list {
			if n.ID == id {
				return n
			}
			if found := walk(n.Elements); found != nil {
				return found
			}
			if found := walk(n.SubElements); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(t.Rooms)
}
