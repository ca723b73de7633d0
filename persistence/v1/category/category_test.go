package category

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func categoryRows(id uint64, name, color string, at time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "color", "created_at", "updated_at"}).
		AddRow(id, name, color, at, at)
}

func TestInsert(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	t.Run("returns the created row", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO categories \(name,color,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id, name, color, created_at, updated_at`).
			WithArgs("work", "#3B82F6", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(categoryRows(1, "work", "#3B82F6", now))

		c, err := Insert(context.Background(), db, NewCategory{Name: "work", Color: "#3B82F6"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), c.Id)
		assert.Equal(t, "work", c.Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps the unique violation", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO categories`).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := Insert(context.Background(), db, NewCategory{Name: "work", Color: "#3B82F6"})
		assert.ErrorIs(t, err, ErrDuplicateName)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFind(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	t.Run("returns the row", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, color, created_at, updated_at FROM categories WHERE id = \$1`).
			WithArgs(uint64(7)).
			WillReturnRows(categoryRows(7, "personal", "#F59E0B", now))

		c, err := Find(context.Background(), db, 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), c.Id)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id yields a zero category", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, color, created_at, updated_at FROM categories WHERE id = \$1`).
			WithArgs(uint64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "created_at", "updated_at"}))

		c, err := Find(context.Background(), db, 99)
		require.NoError(t, err)
		assert.Zero(t, c.Id)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindByIds(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	t.Run("empty input skips the database", func(t *testing.T) {
		cs, err := FindByIds(context.Background(), db, nil)
		require.NoError(t, err)
		assert.Empty(t, cs)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns only the existing subset", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, color, created_at, updated_at FROM categories WHERE id IN \(\$1,\$2\)`).
			WithArgs(uint64(1), uint64(99)).
			WillReturnRows(categoryRows(1, "work", "#3B82F6", now))

		cs, err := FindByIds(context.Background(), db, []uint64{1, 99})
		require.NoError(t, err)
		assert.Len(t, cs, 1)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListWithNoteCounts(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT c\.id, c\.name, c\.color, c\.created_at, c\.updated_at, COUNT\(nc\.note_id\) AS notes_count FROM categories c LEFT JOIN note_categories nc ON nc\.category_id = c\.id GROUP BY c\.id ORDER BY c\.name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "created_at", "updated_at", "notes_count"}).
			AddRow(2, "personal", "#F59E0B", now, now, 0).
			AddRow(1, "work", "#3B82F6", now, now, 3))

	cs, err := ListWithNoteCounts(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, int64(0), cs[0].NotesCount)
	assert.Equal(t, int64(3), cs[1].NotesCount)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	t.Run("sets only the supplied fields", func(t *testing.T) {
		name := "renamed"
		mock.ExpectQuery(`UPDATE categories SET name = \$1, updated_at = \$2 WHERE id = \$3 RETURNING id, name, color, created_at, updated_at`).
			WithArgs("renamed", sqlmock.AnyArg(), uint64(1)).
			WillReturnRows(categoryRows(1, "renamed", "#3B82F6", now))

		c, err := Update(context.Background(), db, 1, UpdateCategory{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "renamed", c.Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id yields a zero category", func(t *testing.T) {
		color := "#10B981"
		mock.ExpectQuery(`UPDATE categories SET color = \$1, updated_at = \$2 WHERE id = \$3`).
			WithArgs("#10B981", sqlmock.AnyArg(), uint64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "created_at", "updated_at"}))

		c, err := Update(context.Background(), db, 99, UpdateCategory{Color: &color})
		require.NoError(t, err)
		assert.Zero(t, c.Id)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearch(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, name, color, created_at, updated_at FROM categories WHERE name ILIKE \$1 ORDER BY name ASC`).
		WithArgs("%OR%").
		WillReturnRows(categoryRows(1, "work", "#3B82F6", now))

	cs, err := Search(context.Background(), db, "OR")
	require.NoError(t, err)
	assert.Len(t, cs, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).
		WithArgs(uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, Delete(context.Background(), db, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}
