package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"bizdesk_backend/internal/models"
)

// TeamRepository stores teams with their members embedded as a JSONB array.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByID(ctx context.Context, id string) (*models.Team, error)
	// AddMember appends member unless an identical entry is already present.
	AddMember(ctx context.Context, teamID string, member models.TeamMember) error
	// RemoveMember drops every entry equal to member in all fields and reports
	// whether anything was removed.
	RemoveMember(ctx context.Context, teamID string, member models.TeamMember) (bool, error)
}

type teamRepository struct {
	db SQLExecutor
}

// NewTeamRepository creates a new instance of TeamRepository.
func NewTeamRepository(db SQLExecutor) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	if team.Members == nil {
		team.Members = []models.TeamMember{}
	}
	members, err := json.Marshal(team.Members)
	if err != nil {
		return fmt.Errorf("%w: encoding team members: %v", ErrDatabaseError, err)
	}

	query := `INSERT INTO teams (id, owner_id, members, created_at)
	          VALUES ($1, $2, $3::jsonb, now())
	          RETURNING created_at`

	team.ID = newID()
	if err := r.db.QueryRowContext(ctx, query, team.ID, team.OwnerID, string(members)).Scan(&team.CreatedAt); err != nil {
		return wrapDBError(err, "creating team")
	}
	return nil
}

func (r *teamRepository) GetTeamByID(ctx context.Context, id string) (*models.Team, error) {
	query := `SELECT id, owner_id, members, created_at FROM teams WHERE id = $1`

	var team models.Team
	var members []byte
	var createdAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(&team.ID, &team.OwnerID, &members, &createdAt)
	if err != nil {
		return nil, wrapDBError(err, "getting team "+id)
	}
	team.CreatedAt = timeOrEpoch(createdAt)
	team.Members = []models.TeamMember{}
	if len(members) > 0 {
		if err := json.Unmarshal(members, &team.Members); err != nil {
			return nil, fmt.Errorf("%w: decoding members of team %s: %v", ErrDatabaseError, id, err)
		}
	}
	return &team, nil
}

func (r *teamRepository) AddMember(ctx context.Context, teamID string, member models.TeamMember) error {
	encoded, err := json.Marshal(member)
	if err != nil {
		return fmt.Errorf("%w: encoding team member: %v", ErrDatabaseError, err)
	}

	query := `UPDATE teams SET members = CASE
	            WHEN EXISTS (SELECT 1 FROM jsonb_array_elements(members) AS m WHERE m = $2::jsonb) THEN members
	            ELSE members || jsonb_build_array($2::jsonb)
	          END
	          WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, teamID, string(encoded))
	if err != nil {
		return wrapDBError(err, "adding member to team "+teamID)
	}
	return expectAffected(result, "adding member to team "+teamID)
}

func (r *teamRepository) RemoveMember(ctx context.Context, teamID string, member models.TeamMember) (bool, error) {
	encoded, err := json.Marshal(member)
	if err != nil {
		return false, fmt.Errorf("%w: encoding team member: %v", ErrDatabaseError, err)
	}

	query := `UPDATE teams SET members = COALESCE(
	            (SELECT jsonb_agg(e.m ORDER BY e.ord)
	               FROM jsonb_array_elements(members) WITH ORDINALITY AS e(m, ord)
	              WHERE e.m <> $2::jsonb),
	            '[]'::jsonb)
	          WHERE id = $1
	            AND EXISTS (SELECT 1 FROM jsonb_array_elements(members) AS m WHERE m = $2::jsonb)`

	result, err := r.db.ExecContext(ctx, query, teamID, string(encoded))
	if err != nil {
		return false, wrapDBError(err, "removing member from team "+teamID)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: getting rows affected for team %s: %v", ErrDatabaseError, teamID, err)
	}
	return rowsAffected > 0, nil
}
