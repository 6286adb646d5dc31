package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/domain"
	"github.com/lagreeflow/lagree/internal/ports"
	portsmocks "github.com/lagreeflow/lagree/internal/ports/mocks"
)

func newTestLessonList(t *testing.T) (*LessonList, *portsmocks.MockLessonCatalog) {
	t.Helper()
	core := testLesson()
	legs := domain.Lesson{ID: 2, Title: "Leg Burner", Category: "Legs", Exercises: []domain.Exercise{{ID: 20, Name: "Lunge", WorkSeconds: 60}}}

	catalog := portsmocks.NewMockLessonCatalog(t)
	catalog.EXPECT().Categories().Return([]string{domain.CategoryAll, "Core", "Legs"})
	catalog.EXPECT().List(ports.LessonFilter{Category: domain.CategoryAll}).Return([]domain.Lesson{core, legs}).Maybe()
	catalog.EXPECT().List(ports.LessonFilter{Category: "Core"}).Return([]domain.Lesson{core}).Maybe()
	catalog.EXPECT().List(ports.LessonFilter{Category: "Legs"}).Return([]domain.Lesson{legs}).Maybe()

	ll := NewLessonList(catalog, NewKeyMap(nil), false, TipsConfig{})
	ll.SetSize(100, 40, 30)
	return ll, catalog
}

func TestLessonList_CycleCategoryWraps(t *testing.T) {
	ll, _ := newTestLessonList(t)
	assert.Equal(t, domain.CategoryAll, ll.Category())
	assert.Len(t, ll.list.Items(), 2)

	ll.CycleCategory(-1)
	assert.Equal(t, "Legs", ll.Category())
	require.NotNil(t, ll.SelectedLesson())
	assert.Equal(t, "Leg Burner", ll.SelectedLesson().Title)

	ll.CycleCategory(1)
	assert.Equal(t, domain.CategoryAll, ll.Category())

	ll.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Core", ll.Category())
	assert.Len(t, ll.list.Items(), 1)
}

func TestLessonList_KeysEmitActions(t *testing.T) {
	ll, _ := newTestLessonList(t)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected tea.Msg
	}{
		{name: "open", msg: tea.KeyMsg{Type: tea.KeyEnter}, expected: OpenLessonMsg{LessonID: 1}},
		{name: "start", msg: keyRune('s'), expected: StartLessonMsg{LessonID: 1}},
		{name: "progress", msg: keyRune('p'), expected: ShowProgressMsg{}},
		{name: "help", msg: keyRune('?'), expected: ShowHelpMsg{}},
		{name: "palette", msg: keyRune('P'), expected: ShowCommandPaletteMsg{}},
		{name: "quit", msg: keyRune('q'), expected: QuitMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := ll.Update(tt.msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.expected, cmd())
		})
	}
}

func TestLessonList_EmptyCategory(t *testing.T) {
	catalog := portsmocks.NewMockLessonCatalog(t)
	catalog.EXPECT().Categories().Return([]string{domain.CategoryAll})
	catalog.EXPECT().List(ports.LessonFilter{Category: domain.CategoryAll}).Return(nil)

	ll := NewLessonList(catalog, NewKeyMap(nil), false, TipsConfig{})

	assert.Nil(t, ll.SelectedLesson())
	_, cmd := ll.Update(keyRune('s'))
	assert.Nil(t, cmd, "start without a lesson does nothing")
	assert.Contains(t, ll.View(), "No lessons in this category")
}
