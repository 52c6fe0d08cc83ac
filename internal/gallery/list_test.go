package gallery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/gallery/internal/models"
)

func item(id, label string) *models.Item {
	return &models.Item{ID: id, ImageURL: "https://picsum.photos/id/" + id + "/200", Color: 0x336699, Label: label}
}

func labels(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}

func ids(items []*models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

type recorder struct {
	changes []Change
}

func (r *recorder) OnChange(c Change) {
	r.changes = append(r.changes, c)
}

func sample() *List {
	return New([]*models.Item{
		item("1", "Dog"),
		item("2", "cat"),
		item("3", "Hotdog"),
		item("4", "Bird"),
	})
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive substring", "DOG", []string{"Dog", "Hotdog"}},
		{"empty restores all", "", []string{"Dog", "cat", "Hotdog", "Bird"}},
		{"whitespace restores all", "   ", []string{"Dog", "cat", "Hotdog", "Bird"}},
		{"surrounding spaces are matched", "  cat ", []string{}},
		{"no match", "zebra", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := sample()
			rec := &recorder{}
			l.SetListener(rec)

			l.Filter(tt.query)
			assert.Equal(t, tt.want, labels(l.Visible()))
			assert.Len(t, l.Items(), 4, "filter never changes the backing list")
			require.Len(t, rec.changes, 1)
			assert.Equal(t, Reset, rec.changes[0].Kind)
		})
	}
}

func TestFilter_LeadingSpaceMatchesWordStart(t *testing.T) {
	l := New([]*models.Item{item("1", "Black cat"), item("2", "Catfish")})

	l.Filter(" cat")
	assert.Equal(t, []string{"Black cat"}, labels(l.Visible()))
	assert.Equal(t, " cat", l.Query())
}

func TestFilter_ThenClear(t *testing.T) {
	l := sample()
	l.Filter("dog")
	l.Filter("")
	assert.Equal(t, ids(l.Items()), ids(l.Visible()))
}

func TestSortAlphabetically(t *testing.T) {
	l := New([]*models.Item{
		item("1", "b"),
		item("2", "B"),
		item("3", "a"),
		item("4", "b"),
	})
	l.SortAlphabetically()

	// ordinal comparison: uppercase sorts before lowercase; stable for equal labels
	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(l.Visible()))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(l.Items()), "backing order is untouched")
}

func TestSortAlphabetically_Idempotent(t *testing.T) {
	l := sample()
	l.SortAlphabetically()
	first := ids(l.Visible())
	l.SortAlphabetically()
	assert.Equal(t, first, ids(l.Visible()))
}

func TestSortAlphabetically_KeepsFilter(t *testing.T) {
	l := sample()
	l.Filter("dog")
	l.SortAlphabetically()
	assert.Equal(t, []string{"Dog", "Hotdog"}, labels(l.Visible()))
}

func TestMove(t *testing.T) {
	l := sample()
	rec := &recorder{}
	l.SetListener(rec)

	require.NoError(t, l.Move(0, 2))
	assert.Equal(t, []string{"3", "2", "1", "4"}, ids(l.Visible()))
	assert.Equal(t, []string{"3", "2", "1", "4"}, ids(l.Items()))
	assert.Equal(t, Change{Kind: Moved, Index: 0, To: 2}, rec.changes[0])

	require.NoError(t, l.Move(2, 0))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(l.Visible()), "move back is identity")
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(l.Items()))
}

func TestMove_UnderFilterSwapsBackingByID(t *testing.T) {
	l := sample()
	l.Filter("dog") // visible: 1 (Dog), 3 (Hotdog)

	require.NoError(t, l.Move(0, 1))
	assert.Equal(t, []string{"3", "1"}, ids(l.Visible()))
	assert.Equal(t, []string{"3", "2", "1", "4"}, ids(l.Items()))
}

func TestMove_DuplicateContent(t *testing.T) {
	// structurally identical items are still distinct entries
	a := item("a", "Same")
	b := item("b", "Same")
	b.ImageURL = a.ImageURL
	l := New([]*models.Item{a, item("x", "Other"), b})

	require.NoError(t, l.Move(1, 2))
	assert.Equal(t, []string{"a", "b", "x"}, ids(l.Items()))
}

func TestMove_OutOfRange(t *testing.T) {
	l := sample()
	assert.True(t, errors.Is(l.Move(-1, 0), models.ErrInvalidPosition))
	assert.True(t, errors.Is(l.Move(0, 4), models.ErrInvalidPosition))
	require.NoError(t, l.Move(1, 1))
}

func TestAddThenDeleteRestoresVisible(t *testing.T) {
	l := sample()
	l.Filter("o")
	before := ids(l.Visible())

	added := item("5", "Fox")
	rec := &recorder{}
	l.SetListener(rec)

	l.Add(added)
	assert.Equal(t, Change{Kind: Inserted, Index: len(before)}, rec.changes[0])

	require.NoError(t, l.Delete(added.ID))
	assert.Equal(t, Change{Kind: Removed, Index: len(before)}, rec.changes[1])
	assert.Equal(t, before, ids(l.Visible()))
}

func TestAdd_NotMatchingFilter(t *testing.T) {
	l := sample()
	l.Filter("dog")
	rec := &recorder{}
	l.SetListener(rec)

	l.Add(item("5", "Fish"))
	assert.Empty(t, rec.changes)
	assert.Len(t, l.Items(), 5)
	assert.Equal(t, -1, l.IndexOf("5"))
}

func TestDelete_NotFound(t *testing.T) {
	assert.ErrorIs(t, sample().Delete("nope"), models.ErrItemNotFound)
}

func TestEdit(t *testing.T) {
	l := sample()
	rec := &recorder{}
	l.SetListener(rec)

	edited := item("ignored", "Puppy")
	require.NoError(t, l.Edit("1", edited))

	got, err := l.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Puppy", got.Label)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, Change{Kind: Changed, Index: 0}, rec.changes[0])
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(l.Items()), "position kept")
}

func TestEdit_LeavesFilter(t *testing.T) {
	l := sample()
	l.Filter("dog")
	rec := &recorder{}
	l.SetListener(rec)

	require.NoError(t, l.Edit("3", item("3", "Sandwich")))
	assert.Equal(t, Change{Kind: Removed, Index: 1}, rec.changes[0])
	assert.Equal(t, []string{"Dog"}, labels(l.Visible()))
}

func TestEdit_JoinsFilter(t *testing.T) {
	l := sample()
	l.Filter("dog")
	rec := &recorder{}
	l.SetListener(rec)

	require.NoError(t, l.Edit("2", item("2", "Dogfish")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(l.Visible()))
	assert.Equal(t, []Change{{Kind: Inserted, Index: 1}}, rec.changes)
}

func TestEdit_JoinsFilterKeepsSortedOrder(t *testing.T) {
	l := New([]*models.Item{
		item("1", "Hotdog"),
		item("2", "cat"),
		item("3", "Dog"),
		item("4", "Bulldog"),
	})
	l.Filter("dog")
	l.SortAlphabetically()
	require.Equal(t, []string{"Bulldog", "Dog", "Hotdog"}, labels(l.Visible()))
	rec := &recorder{}
	l.SetListener(rec)

	require.NoError(t, l.Edit("2", item("2", "Dogfish")))
	assert.Equal(t, []string{"Bulldog", "Dog", "Dogfish", "Hotdog"}, labels(l.Visible()))
	assert.Equal(t, []Change{{Kind: Inserted, Index: 2}}, rec.changes)
}

func TestEdit_NotFound(t *testing.T) {
	assert.ErrorIs(t, sample().Edit("nope", item("nope", "x")), models.ErrItemNotFound)
}

func TestAccessors(t *testing.T) {
	l := sample()

	it, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, "cat", it.Label)

	_, err = l.At(10)
	assert.ErrorIs(t, err, models.ErrInvalidPosition)

	assert.Equal(t, 2, l.IndexOf("3"))
	assert.Equal(t, -1, l.IndexOf("missing"))

	_, err = l.Get("missing")
	assert.ErrorIs(t, err, models.ErrItemNotFound)
	assert.Equal(t, 4, l.Len())
}

func TestReplace_ReappliesFilter(t *testing.T) {
	l := sample()
	l.Filter("bird")
	l.Replace([]*models.Item{item("9", "Bird"), item("8", "Cow")})
	assert.Equal(t, []string{"9"}, ids(l.Visible()))
	assert.Equal(t, "bird", l.Query())
}

func TestListenerFunc(t *testing.T) {
	var got []ChangeKind
	l := sample()
	l.SetListener(ListenerFunc(func(c Change) { got = append(got, c.Kind) }))
	l.Filter("x")
	l.SortAlphabetically()
	assert.Equal(t, []ChangeKind{Reset, Reset}, got)
	assert.Equal(t, "reset", Reset.String())
}
