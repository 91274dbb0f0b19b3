package configurator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovo/internal/configurator"
	"renovo/internal/domain/catalog"
)

func ptr(v int64) *int64 { return &v }

func cat(id int64, parent *int64, name string) catalog.Category {
	return catalog.Category{ID: id, ParentID: parent, Name: name}
}

func ids(nodes []*configurator.CategoryNode) []int64 {
	out := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func TestBuildTree_ThreeLevels(t *testing.T) {
	tree := configurator.BuildTree([]catalog.Category{
		cat(1, nil, "Гостиная"),
		cat(2, ptr(1), "Диван"),
		cat(3, ptr(2), "Угловой"),
	})

	require.Len(t, tree.Rooms, 1)
	room := tree.Rooms[0]
	assert.Equal(t, int64(1), room.ID)
	assert.Equal(t, configurator.DepthRoom, room.Depth)
	require.Equal(t, []int64{2}, ids(room.Elements))
	assert.Empty(t, room.SubElements)

	element := room.Elements[0]
	assert.Equal(t, configurator.DepthElement, element.Depth)
	assert.Equal(t, []int64{3}, ids(element.SubElements))
	assert.Empty(t, element.Elements)
	assert.Equal(t, configurator.DepthSubElement, element.SubElements[0].Depth)
	assert.Empty(t, tree.Anomalies)
}

func TestBuildTree_PreservesSiblingOrder(t *testing.T) {
	tree := configurator.BuildTree([]catalog.Category{
		cat(10, nil, "Кухня"),
		cat(5, ptr(10), "Пол"),
		cat(1, nil, "Спальня"),
		cat(7, ptr(10), "Стены"),
		cat(3, ptr(10), "Потолок"),
		cat(9, ptr(7), "Обои"),
		cat(2, ptr(7), "Краска"),
	})

	assert.Equal(t, []int64{10, 1}, ids(tree.Rooms))
	kitchen := tree.Find(10)
	require.NotNil(t, kitchen)
	assert.Equal(t, []int64{5, 7, 3}, ids(kitchen.Elements))
	assert.Equal(t, []int64{9, 2}, ids(tree.Find(7).SubElements))
}

func TestBuildTree_ChildBeforeParentInInput(t *testing.T) {
	tree := configurator.BuildTree([]catalog.Category{
		cat(3, ptr(2), "Угловой"),
		cat(2, ptr(1), "Диван"),
		cat(1, nil, "Гостиная"),
	})

	require.Equal(t, []int64{1}, ids(tree.Rooms))
	assert.Equal(t, []int64{2}, ids(tree.Rooms[0].Elements))
	assert.Equal(t, []int64{3}, ids(tree.Rooms[0].Elements[0].SubElements))
}

func TestBuildTree_DepthInvariant(t *testing.T) {
	flat := []catalog.Category{
		cat(1, nil, "a"), cat(2, nil, "b"),
		cat(3, ptr(1), "a1"), cat(4, ptr(1), "a2"), cat(5, ptr(2), "b1"),
		cat(6, ptr(3), "a1x"), cat(7, ptr(4), "a2x"), cat(8, ptr(5), "b1x"), cat(9, ptr(3), "a1y"),
	}
	byID := map[int64]catalog.Category{}
	for _, c := range flat {
		byID[c.ID] = c
	}

	tree := configurator.BuildTree(flat)
	for _, room := range tree.Rooms {
		assert.Nil(t, room.ParentID)
		for _, el := range room.Elements {
			assert.Nil(t, byID[*el.ParentID].ParentID, "element %d must hang off a room", el.ID)
			for _, sub := range el.SubElements {
				assert.NotNil(t, byID[*sub.ParentID].ParentID, "sub-element %d must hang off an element", sub.ID)
			}
		}
	}
	assert.Empty(t, tree.Anomalies)
}

func TestBuildTree_OrphanPromotedAndFlagged(t *testing.T) {
	tree := configurator.BuildTree([]catalog.Category{
		cat(1, nil, "Гостиная"),
		cat(4, ptr(99), "Потерянный"),
		cat(5, ptr(4), "Ребёнок"),
	})

	assert.Equal(t, []int64{1, 4}, ids(tree.Rooms))
	// the orphan still carries a parent_id, so its child is placed positionally
	orphan := tree.Find(4)
	assert.Equal(t, []int64{5}, ids(orphan.SubElements))
	assert.Contains(t, tree.Anomalies, configurator.Anomaly{CategoryID: 4, Kind: configurator.AnomalyOrphan})
}

func TestBuildTree_TooDeepIsKeptAndFlagged(t *testing.T) {
	tree := configurator.BuildTree([]catalog.Category{
		cat(1, nil, "room"),
		cat(2, ptr(1), "element"),
		cat(3, ptr(2), "sub"),
		cat(4, ptr(3), "too deep"),
	})

	sub := tree.Find(3)
	require.NotNil(t, sub)
	assert.Equal(t, []int64{4}, ids(sub.SubElements))
	assert.Equal(t, []configurator.Anomaly{{CategoryID: 4, Kind: configurator.AnomalyTooDeep, Depth: 3}}, tree.Anomalies)
}

func TestBuildTree_CyclesBecomeRoots(t *testing.T) {
	tree := configurator.BuildTree([]catalog.Category{
		cat(1, ptr(1), "self"),
		cat(2, ptr(3), "loop a"),
		cat(3, ptr(2), "loop b"),
		cat(4, ptr(3), "hangs off loop"),
	})

	assert.Equal(t, []int64{1, 2, 3}, ids(tree.Rooms))
	assert.Empty(t, tree.Find(1).SubElements)
	assert.Equal(t, []int64{4}, ids(tree.Find(3).SubElements))

	kinds := map[int64]configurator.AnomalyKind{}
	for _, a := range tree.Anomalies {
		kinds[a.CategoryID] = a.Kind
	}
	assert.Equal(t, configurator.AnomalyCycle, kinds[1])
	assert.Equal(t, configurator.AnomalyCycle, kinds[2])
	assert.Equal(t, configurator.AnomalyCycle, kinds[3])
	assert.NotContains(t, kinds, int64(4))
}

func TestBuildTree_DuplicateIDKeepsFirst(t *testing.T) {
	tree := configurator.BuildTree([]catalog.Category{
		cat(1, nil, "first"),
		cat(1, nil, "second"),
	})

	require.Len(t, tree.Rooms, 1)
	assert.Equal(t, "first", tree.Rooms[0].Name)
	assert.Equal(t, []configurator.Anomaly{{CategoryID: 1, Kind: configurator.AnomalyDuplicate}}, tree.Anomalies)
}

func TestBuildTree_Empty(t *testing.T) {
	tree := configurator.BuildTree(nil)
	assert.NotNil(t, tree.Rooms)
	assert.Empty(t, tree.Rooms)
	assert.Nil(t, tree.Find(1))
}
