package services

import (
	"context"
	"errors"
	"fmt"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/repositories"
	"bizdesk_backend/internal/validation"
)

// --- Custom Service Errors for Team ---
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrNotTeamOwner      = errors.New("only the team owner can change members")
	ErrCannotRemoveOwner = errors.New("the team owner cannot be removed")
	ErrAlreadyTeamMember = errors.New("user is already a team member")
)

// TeamService manages teams and their embedded member lists.
type TeamService interface {
	FindUserByEmail(ctx context.Context, session models.Session, email string) (*models.TeamMember, error)
	CreateTeam(ctx context.Context, session models.Session) (*models.Team, error)
	GetTeam(ctx context.Context, session models.Session, teamID string) (*models.Team, error)
	AddTeamMember(ctx context.Context, session models.Session, teamID string, form validation.TeamMemberForm) (*models.Team, error)
	RemoveTeamMember(ctx context.Context, session models.Session, teamID, memberUID string) (*models.Team, error)
}

type teamService struct {
	teamRepo repositories.TeamRepository
	userRepo repositories.AuthRepository
}

// NewTeamService creates a new instance of TeamService.
func NewTeamService(teamRepo repositories.TeamRepository, userRepo repositories.AuthRepository) TeamService {
	return &teamService{teamRepo: teamRepo, userRepo: userRepo}
}

// FindUserByEmail returns the account with email shaped as a prospective member.
func (s *teamService) FindUserByEmail(ctx context.Context, session models.Session, email string) (*models.TeamMember, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	form := validation.TeamMemberForm{Email: email}
	if err := validation.Struct(&form); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &models.TeamMember{
		UID:   user.ID,
		Email: user.Email,
		Name:  user.DisplayName,
		Role:  models.TeamRoleMember,
	}, nil
}

// CreateTeam makes a team whose only member is the session user as owner.
func (s *teamService) CreateTeam(ctx context.Context, session models.Session) (*models.Team, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	team := &models.Team{
		OwnerID: session.UserID,
		Members: []models.TeamMember{{
			UID:   session.UserID,
			Email: session.Email,
			Name:  session.Name,
			Role:  models.TeamRoleOwner,
		}},
	}
	if err := s.teamRepo.CreateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

// GetTeam is visible to the team's members only; others see ErrTeamNotFound.
func (s *teamService) GetTeam(ctx context.Context, session models.Session, teamID string) (*models.Team, error) {
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}
	team, err := s.load(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != session.UserID && !team.HasMember(session.UserID) {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

// AddTeamMember looks the user up by email and adds them with role member.
// Adding an identical entry twice leaves a single copy.
func (s *teamService) AddTeamMember(ctx context.Context, session models.Session, teamID string, form validation.TeamMemberForm) (*models.Team, error) {
	team, err := s.ownedTeam(ctx, session, teamID)
	if err != nil {
		return nil, err
	}
	member, err := s.FindUserByEmail(ctx, session, form.Email)
	if err != nil {
		return nil, err
	}
	if existing, ok := team.FindMember(member.UID); ok && existing != *member {
		return nil, ErrAlreadyTeamMember
	}

	if err := s.teamRepo.AddMember(ctx, teamID, *member); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}
	return s.load(ctx, teamID)
}

// RemoveTeamMember removes the stored entry of memberUID by value. When the
// entry changed between the read and the write nothing is removed and no
// error is reported.
func (s *teamService) RemoveTeamMember(ctx context.Context, session models.Session, teamID, memberUID string) (*models.Team, error) {
	team, err := s.ownedTeam(ctx, session, teamID)
	if err != nil {
		return nil, err
	}
	member, ok := team.FindMember(memberUID)
	if !ok {
		return team, nil
	}
	if member.Role == models.TeamRoleOwner {
		return nil, ErrCannotRemoveOwner
	}

	if _, err := s.teamRepo.RemoveMember(ctx, teamID, member); err != nil {
		return nil, fmt.Errorf("failed to remove team member: %w", err)
	}
	return s.load(ctx, teamID)
}

func (s *teamService) ownedTeam(ctx context.Context, session models.Session, teamID string) (*models.Team, error) {
	team, err := s.GetTeam(ctx, session, teamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != session.UserID {
		return nil, ErrNotTeamOwner
	}
	return team, nil
}

func (s *teamService) load(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.teamRepo.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}
