package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/validation"
)

type teamFixture struct {
	svc   TeamService
	teams *fakeTeamRepo
	users *fakeUserRepo
	carol models.User
}

func newTeamFixture(t *testing.T) teamFixture {
	t.Helper()
	teams := newFakeTeamRepo()
	users := newFakeUserRepo()
	carol := models.User{Email: "carol@x.io", DisplayName: "Carol"}
	require.NoError(t, users.CreateUser(context.Background(), &carol))
	return teamFixture{svc: NewTeamService(teams, users), teams: teams, users: users, carol: carol}
}

func TestCreateTeam_OwnerIsFirstMember(t *testing.T) {
	f := newTeamFixture(t)
	team, err := f.svc.CreateTeam(context.Background(), alice)
	require.NoError(t, err)

	require.Len(t, team.Members, 1)
	assert.Equal(t, models.TeamMember{UID: "alice", Email: "alice@x.io", Name: "Alice", Role: models.TeamRoleOwner}, team.Members[0])
}

func TestFindUserByEmail(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	member, err := f.svc.FindUserByEmail(ctx, alice, "Carol@X.io ")
	require.NoError(t, err)
	assert.Equal(t, f.carol.ID, member.UID)
	assert.Equal(t, models.TeamRoleMember, member.Role)

	_, err = f.svc.FindUserByEmail(ctx, alice, "nobody@x.io")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddThenRemoveMember_RestoresList(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	team, err := f.svc.CreateTeam(ctx, alice)
	require.NoError(t, err)
	before := append([]models.TeamMember(nil), team.Members...)

	team, err = f.svc.AddTeamMember(ctx, alice, team.ID, validation.TeamMemberForm{Email: "carol@x.io"})
	require.NoError(t, err)
	require.Len(t, team.Members, 2)

	// Adding the same member again keeps a single entry.
	team, err = f.svc.AddTeamMember(ctx, alice, team.ID, validation.TeamMemberForm{Email: "carol@x.io"})
	require.NoError(t, err)
	require.Len(t, team.Members, 2)

	team, err = f.svc.RemoveTeamMember(ctx, alice, team.ID, f.carol.ID)
	require.NoError(t, err)
	assert.Equal(t, before, team.Members)
}

func TestRemoveMember_StaleValueRemovesNothing(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	team, err := f.svc.CreateTeam(ctx, alice)
	require.NoError(t, err)
	_, err = f.svc.AddTeamMember(ctx, alice, team.ID, validation.TeamMemberForm{Email: "carol@x.io"})
	require.NoError(t, err)

	// The stored entry is renamed after the service looked it up.
	f.teams.beforeRemove = func() {
		stored := f.teams.teams[team.ID]
		for i := range stored.Members {
			if stored.Members[i].UID == f.carol.ID {
				stored.Members[i].Name = "Caroline"
			}
		}
		f.teams.teams[team.ID] = stored
	}

	team, err = f.svc.RemoveTeamMember(ctx, alice, team.ID, f.carol.ID)
	require.NoError(t, err)
	require.Len(t, team.Members, 2)
	member, ok := team.FindMember(f.carol.ID)
	require.True(t, ok)
	assert.Equal(t, "Caroline", member.Name)
}

func TestTeamMembership_OwnerOnly(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	team, err := f.svc.CreateTeam(ctx, alice)
	require.NoError(t, err)

	_, err = f.svc.GetTeam(ctx, bob, team.ID)
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = f.svc.AddTeamMember(ctx, bob, team.ID, validation.TeamMemberForm{Email: "carol@x.io"})
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = f.svc.RemoveTeamMember(ctx, alice, team.ID, "alice")
	assert.ErrorIs(t, err, ErrCannotRemoveOwner)
}

func TestRemoveMember_UnknownUIDIsNoop(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	team, err := f.svc.CreateTeam(ctx, alice)
	require.NoError(t, err)
	after, err := f.svc.RemoveTeamMember(ctx, alice, team.ID, "ghost")
	require.NoError(t, err)
	assert.Equal(t, team.Members, after.Members)
}

func TestGetTeam_Missing(t *testing.T) {
	f := newTeamFixture(t)
	_, err := f.svc.GetTeam(context.Background(), alice, "t404")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
