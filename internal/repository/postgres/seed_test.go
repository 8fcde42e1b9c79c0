package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/userdirectory/internal/model"
)

var seedQuery = regexp.QuoteMeta(`SELECT id, name, email FROM users ORDER BY position, id`)

func newMockRepository(t *testing.T) (*SeedRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSeedRepository(&Connection{DB: db}), mock
}

func TestNewSeedRepository(t *testing.T) {
	db := &Connection{}
	repo := NewSeedRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestSeedRepository_ListSeedUsers(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(sqlmock.Sqlmock)
		want      []model.User
		wantErr   string
	}{
		{
			name: "rows in order",
			mockSetup: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email"}).
					AddRow(int64(1), "Alice", "a@x.com").
					AddRow(int64(2), "Bob", "b@x.com")
				m.ExpectQuery(seedQuery).WillReturnRows(rows)
			},
			want: []model.User{
				{ID: 1, Name: "Alice", Email: "a@x.com"},
				{ID: 2, Name: "Bob", Email: "b@x.com"},
			},
		},
		{
			name: "empty table",
			mockSetup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(seedQuery).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))
			},
			want: []model.User{},
		},
		{
			name: "query error",
			mockSetup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(seedQuery).WillReturnError(errors.New("relation does not exist"))
			},
			wantErr: "failed to query seed users",
		},
		{
			name: "scan error",
			mockSetup: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email"}).AddRow("not-a-number", "Alice", "a@x.com")
				m.ExpectQuery(seedQuery).WillReturnRows(rows)
			},
			wantErr: "failed to scan seed user",
		},
		{
			name: "row error",
			mockSetup: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "email"}).
					AddRow(int64(1), "Alice", "a@x.com").
					RowError(0, errors.New("broken pipe"))
				m.ExpectQuery(seedQuery).WillReturnRows(rows)
			},
			wantErr: "failed to iterate seed users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, m := newMockRepository(t)
			tt.mockSetup(m)

			got, err := repo.ListSeedUsers(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestConnection_PingNil(t *testing.T) {
	c := &Connection{}
	assert.Error(t, c.Ping(context.Background()))
	assert.NoError(t, c.Close())
}
