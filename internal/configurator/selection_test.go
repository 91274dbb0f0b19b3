package configurator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renovo/internal/configurator"
	"renovo/internal/domain/catalog"
)

func sampleCategories() []catalog.Category {
	return []catalog.Category{
		cat(1, nil, "Гостиная"),
		cat(2, nil, "Кухня"),
		cat(10, ptr(1), "Пол"),
		cat(11, ptr(1), "Стены"),
		cat(20, ptr(2), "Фартук"),
		cat(100, ptr(10), "Ламинат"),
		cat(101, ptr(10), "Паркет"),
		cat(110, ptr(11), "Обои"),
	}
}

func TestSelection_DrillDown(t *testing.T) {
	s := configurator.NewSelection(sampleCategories())
	assert.Equal(t, configurator.StageEmpty, s.Stage())
	assert.Nil(t, s.SubElementID())
	assert.Empty(t, s.Elements())
	assert.Empty(t, s.SubElements())

	require.True(t, s.SelectRoom(1))
	assert.Equal(t, configurator.StageRoom, s.Stage())
	assert.Equal(t, []catalog.Category{cat(10, ptr(1), "Пол"), cat(11, ptr(1), "Стены")}, s.Elements())

	require.True(t, s.SelectElement(10))
	assert.Equal(t, configurator.StageElement, s.Stage())
	assert.Len(t, s.SubElements(), 2)

	require.True(t, s.SelectSubElement(101))
	assert.Equal(t, configurator.StageSubElement, s.Stage())
	require.NotNil(t, s.SubElementID())
	assert.Equal(t, int64(101), *s.SubElementID())
	assert.Equal(t, "sub_element_chosen", s.Stage().String())
}

func TestSelection_ChangingRoomClearsBelow(t *testing.T) {
	s := configurator.NewSelection(sampleCategories())
	require.True(t, s.SelectRoom(1))
	require.True(t, s.SelectElement(10))
	require.True(t, s.SelectSubElement(100))

	require.True(t, s.SelectRoom(2))
	assert.Equal(t, int64(2), s.Room().ID)
	assert.Nil(t, s.Element())
	assert.Nil(t, s.SubElement())
	assert.Nil(t, s.SubElementID())
}

func TestSelection_ChangingElementClearsSubElement(t *testing.T) {
	s := configurator.NewSelection(sampleCategories())
	require.True(t, s.SelectRoom(1))
	require.True(t, s.SelectElement(10))
	require.True(t, s.SelectSubElement(100))

	require.True(t, s.SelectElement(11))
	assert.Nil(t, s.SubElement())
	assert.Equal(t, configurator.StageElement, s.Stage())
}

func TestSelection_InvalidChoicesChangeNothing(t *testing.T) {
	s := configurator.NewSelection(sampleCategories())

	assert.False(t, s.SelectElement(10), "no room selected yet")
	assert.False(t, s.SelectSubElement(100), "no element selected yet")
	assert.False(t, s.SelectRoom(10), "10 is not a room")
	assert.False(t, s.SelectRoom(999))
	assert.Equal(t, configurator.StageEmpty, s.Stage())

	require.True(t, s.SelectRoom(1))
	require.True(t, s.SelectElement(10))
	assert.False(t, s.SelectElement(20), "element of another room")
	assert.False(t, s.SelectSubElement(110), "sub-element of another element")
	assert.Equal(t, int64(10), s.Element().ID)
	assert.Nil(t, s.SubElement())
}

func TestSelection_RebaseKeepsValidPrefix(t *testing.T) {
	s := configurator.NewSelection(sampleCategories())
	require.True(t, s.SelectRoom(1))
	require.True(t, s.SelectElement(10))
	require.True(t, s.SelectSubElement(100))

	// sub-element 100 disappeared from the catalog
	next := sampleCategories()
	next = append(next[:5], next[6:]...)
	s.Rebase(next)

	assert.Equal(t, configurator.StageElement, s.Stage())
	assert.Equal(t, int64(10), s.Element().ID)
	assert.Nil(t, s.SubElementID())

	// room 1 disappeared
	s.Rebase([]catalog.Category{cat(2, nil, "Кухня")})
	assert.Equal(t, configurator.StageEmpty, s.Stage())
	assert.Equal(t, []catalog.Category{cat(2, nil, "Кухня")}, s.Rooms())
}

func TestSelection_RebaseRefreshesSelectedCategory(t *testing.T) {
	s := configurator.NewSelection(sampleCategories())
	require.True(t, s.SelectRoom(1))

	renamed := sampleCategories()
	renamed[0].Name = "Зал"
	s.Rebase(renamed)

	assert.Equal(t, "Зал", s.Room().Name)
}

func TestSelection_DuplicateIDsMatchTree(t *testing.T) {
	flat := []catalog.Category{
		cat(1, nil, "Гостиная"),
		cat(10, ptr(1), "Пол"),
		cat(1, nil, "Гостиная (копия)"),
		cat(10, ptr(1), "Пол (копия)"),
	}
	tree := configurator.BuildTree(flat)
	s := configurator.NewSelection(flat)

	require.Len(t, tree.Rooms, 1)
	rooms := s.Rooms()
	require.Len(t, rooms, len(tree.Rooms))
	assert.Equal(t, "Гостиная", rooms[0].Name)

	require.True(t, s.SelectRoom(1))
	elements := s.Elements()
	require.Len(t, elements, len(tree.Rooms[0].Elements))
	assert.Equal(t, "Пол", elements[0].Name)
}
