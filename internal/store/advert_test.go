package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"adboard/internal/database"
	"adboard/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeAdvertRow 實作 pgx.Row，用於模擬單筆掃描行為。
type fakeAdvertRow struct {
	scanErr error
	advert  *model.Advert
}

func (r *fakeAdvertRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	a := r.advert
	switch len(dest) {
	case 5:
		// GetAdvertByID: id, title, text, owner, created_at
		*dest[0].(*int) = a.ID
		*dest[1].(*string) = a.Title
		*dest[2].(*string) = a.Text
		*dest[3].(**int) = a.Owner
		*dest[4].(*string) = a.CreatedAt
	case 1:
		// CreateAdvert / DeleteAdvert: id
		*dest[0].(*int) = a.ID
	default:
		panic("fakeAdvertRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeAdvertRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeAdvertRows struct {
	data    []model.Advert
	idx     int
	scanErr error
	err     error
}

func (r *fakeAdvertRows) Close()                                       {}
func (r *fakeAdvertRows) Err() error                                   { return r.err }
func (r *fakeAdvertRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeAdvertRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeAdvertRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeAdvertRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	a := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = a.ID
	*dest[1].(*string) = a.Title
	*dest[2].(*string) = a.Text
	*dest[3].(**int) = a.Owner
	*dest[4].(*string) = a.CreatedAt
	return nil
}
func (r *fakeAdvertRows) Values() ([]any, error) { return nil, nil }
func (r *fakeAdvertRows) RawValues() [][]byte    { return nil }
func (r *fakeAdvertRows) Conn() *pgx.Conn        { return nil }

func TestCreateAdvert(t *testing.T) {
	owner := 1
	fixed := time.Date(2025, 5, 1, 15, 4, 5, 0, time.UTC)

	t.Run("ok sets timestamp", func(t *testing.T) {
		t.Cleanup(func() { now = time.Now })
		now = func() time.Time { return fixed }
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeAdvertRow{advert: &model.Advert{ID: 3}}
			},
		}
		a, err := CreateAdvert(context.Background(), db, &model.Advert{
			Title: "Bike",
			Text:  "For sale",
			Owner: &owner,
		})
		require.NoError(t, err)
		require.Equal(t, 3, a.ID)
		require.Equal(t, "2025-05-01T15:04:05Z", a.CreatedAt)
		require.Equal(t, []any{"Bike", "For sale", "2025-05-01T15:04:05Z", &owner}, gotArgs)
	})

	t.Run("unknown owner", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeAdvertRow{scanErr: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}}
			},
		}
		_, err := CreateAdvert(context.Background(), db, &model.Advert{Owner: &owner})
		require.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestGetAdvertByID(t *testing.T) {
	owner := 1
	sample := model.Advert{ID: 2, Title: "Bike", Text: "For sale", Owner: &owner, CreatedAt: "2025-05-01T15:04:05Z"}

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{2}, args)
				return &fakeAdvertRow{advert: &sample}
			},
		}
		a, err := GetAdvertByID(context.Background(), db, 2)
		require.NoError(t, err)
		require.Equal(t, &sample, a)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeAdvertRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetAdvertByID(context.Background(), db, 404)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteAdvert(t *testing.T) {
	t.Run("ok returns deleted id", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{5}, args)
				return &fakeAdvertRow{advert: &model.Advert{ID: 5}}
			},
		}
		id, err := DeleteAdvert(context.Background(), db, 5)
		require.NoError(t, err)
		require.Equal(t, 5, id)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeAdvertRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := DeleteAdvert(context.Background(), db, 404)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListAdverts(t *testing.T) {
	owner := 1
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeAdvertRows{data: []model.Advert{
					{ID: 1, Title: "Bike", Text: "For sale", Owner: &owner, CreatedAt: "2025-05-01T15:04:05Z"},
					{ID: 2, Title: "Sofa", Text: "Free", CreatedAt: "2025-05-02T08:00:00Z"},
				}}, nil
			},
		}
		adverts, err := ListAdverts(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, adverts, 2)
		require.Equal(t, "Bike", adverts[0].Title)
		require.Nil(t, adverts[1].Owner)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("q")
			},
		}
		_, err := ListAdverts(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeAdvertRows{err: errors.New("rows")}, nil
			},
		}
		_, err := ListAdverts(context.Background(), db)
		require.Error(t, err)
	})
}
