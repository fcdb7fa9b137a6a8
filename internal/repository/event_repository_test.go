package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-events-api/internal/models"
)

var eventColumns = []string{"id", "name", "description", "type", "college_id", "start_date", "end_date", "college_name"}

func TestEventRepositoryCreateBindsEveryColumn(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events (name, description, type, college_id, start_date, end_date)\nVALUES (?, ?, ?, ?, ?, ?) RETURNING id")).
		WithArgs("Hackathon", "24h build", "Hackathon", int64(1), "2025-09-10", "2025-09-11").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	event := &models.Event{
		Name:        "Hackathon",
		Description: strPtr("24h build"),
		Type:        strPtr("Hackathon"),
		CollegeID:   int64Ptr(1),
		StartDate:   strPtr("2025-09-10"),
		EndDate:     strPtr("2025-09-11"),
	}
	require.NoError(t, repo.Create(context.Background(), event))
	assert.Equal(t, int64(4), event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListWithoutFilter(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	rows := sqlmock.NewRows(eventColumns).
		AddRow(1, "Hackathon", nil, "Hackathon", 1, "2025-09-10", "2025-09-11", "REVA University").
		AddRow(2, "Open Mic", nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery(`FROM events e\s+LEFT JOIN colleges c ON c.id = e.college_id\s+WHERE 1=1 ORDER BY e.id ASC`).
		WithArgs().
		WillReturnRows(rows)

	events, err := repo.List(context.Background(), models.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "REVA University", *events[0].CollegeName)
	assert.Nil(t, events[1].CollegeName)
	assert.Nil(t, events[1].CollegeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryListAppliesFilters(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery(`WHERE 1=1 AND e.college_id = \? AND e.type = \? ORDER BY e.id ASC`).
		WithArgs(int64(2), "Workshop").
		WillReturnRows(sqlmock.NewRows(eventColumns))

	events, err := repo.List(context.Background(), models.EventFilter{CollegeID: int64Ptr(2), Type: "Workshop"})
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}
