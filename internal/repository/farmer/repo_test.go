package farmer

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestListActive(t *testing.T) {
	repo, mock := setupMockDB(t)

	id1 := uuid.New()
	id2 := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "language", "state", "district", "latitude", "longitude", "crops",
	}).
		AddRow(id1, "Ramesh", "ramesh@example.com", "hi", "Punjab", "Ludhiana", 30.9, 75.85, "{wheat,rice}").
		AddRow(id2, "Lakshmi", "", "ta", "Tamil Nadu", "Thanjavur", nil, nil, "{rice}")

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, email, language, state, district, latitude, longitude, crops
		FROM farmers
		WHERE active = TRUE
		ORDER BY id;
    `)).WillReturnRows(rows)

	farmers, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, farmers, 2)

	assert.Equal(t, id1, farmers[0].ID)
	assert.True(t, farmers[0].HasCoordinates())
	assert.Equal(t, []string{"wheat", "rice"}, farmers[0].Crops)

	// missing coordinates stay nil so callers fall back to geocoding
	assert.False(t, farmers[1].HasCoordinates())
	assert.Equal(t, "Thanjavur, Tamil Nadu", farmers[1].Place())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActive_Empty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, email, language, state, district, latitude, longitude, crops
		FROM farmers
		WHERE active = TRUE
		ORDER BY id;
    `)).WillReturnRows(sqlmock.NewRows([]string{
		"id", "name", "email", "language", "state", "district", "latitude", "longitude", "crops",
	}))

	farmers, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, farmers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
