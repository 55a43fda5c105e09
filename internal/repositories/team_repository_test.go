package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk_backend/internal/models"
)

const memberJSON = `{"uid":"u2","email":"bo@x.io","name":"Bo","role":"member"}`

var bo = models.TeamMember{UID: "u2", Email: "bo@x.io", Name: "Bo", Role: models.TeamRoleMember}

func TestCreateTeam_EncodesMembers(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewTeamRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO teams`)).
		WithArgs(sqlmock.AnyArg(), "u1", `[`+memberJSON+`]`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	team := &models.Team{OwnerID: "u1", Members: []models.TeamMember{bo}}
	require.NoError(t, repo.CreateTeam(context.Background(), team))
	assert.NotEmpty(t, team.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTeamByID_DecodesMembers(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewTeamRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, owner_id, members, created_at FROM teams WHERE id = $1`)).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "members", "created_at"}).
			AddRow("t1", "u1", []byte(`[`+memberJSON+`]`), nil))

	team, err := repo.GetTeamByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, []models.TeamMember{bo}, team.Members)
	assert.True(t, team.HasMember("u2"))
}

func TestAddMember_MissingTeam(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewTeamRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE teams SET members = CASE`)).
		WithArgs("t404", memberJSON).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.AddMember(context.Background(), "t404", bo), ErrNotFound)
}

func TestRemoveMember_ReportsRemoval(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewTeamRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE teams SET members = COALESCE(`)).
		WithArgs("t1", memberJSON).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE teams SET members = COALESCE(`)).
		WithArgs("t1", memberJSON).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.RemoveMember(context.Background(), "t1", bo)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.RemoveMember(context.Background(), "t1", bo)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
