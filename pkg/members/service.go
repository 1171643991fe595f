// Package members resolves project members by username for link and markup builders.
package members

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-projectlinks/pkg/domain"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/logger"
	"github.com/goliatone/go-projectlinks/pkg/interfaces/store"
)

var (
	// ErrInvalidLookup is returned when a lookup is missing its username or project.
	ErrInvalidLookup = errors.New("members: username and project id are required")

	errRepositoryRequired    = errors.New("members: repository is required")
	errServiceNotInitialised = errors.New("members: service not initialised")
)

// Service looks up and maintains project memberships.
type Service struct {
	repo   store.ProjectMemberRepository
	tx     store.TransactionManager
	logger logger.Logger
}

// Dependencies wires repositories and loggers into the service.
type Dependencies struct {
	Repository  store.ProjectMemberRepository
	Transaction store.TransactionManager
	Logger      logger.Logger
}

// MemberInput captures editable membership fields.
type MemberInput struct {
	Username    string `json:"username"`
	ProjectID   int    `json:"project_id"`
	AccountID   int    `json:"account_id"`
	DisplayName string `json:"display_name"`
	AvatarID    string `json:"avatar_id"`
	Status      string `json:"status"`
}

// New constructs the members service.
func New(deps Dependencies) (*Service, error) {
	if deps.Repository == nil {
		return nil, errRepositoryRequired
	}
	tx := deps.Transaction
	if tx == nil {
		tx = &store.NopTransactionManager{}
	}
	return &Service{
		repo:   deps.Repository,
		tx:     tx,
		logger: logger.OrNop(deps.Logger),
	}, nil
}

// FindMemberByUsername returns the member of projectID within accountID.
// A miss is reported as store.ErrNotFound.
func (s *Service) FindMemberByUsername(ctx context.Context, username string, projectID, accountID int) (*domain.ProjectMember, error) {
	if s == nil || s.repo == nil {
		return nil, errServiceNotInitialised
	}
	username = strings.TrimSpace(username)
	if username == "" || projectID <= 0 {
		return nil, ErrInvalidLookup
	}
	member, err := s.repo.GetByUsername(ctx, username, projectID, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Debug("project member not found",
				logger.F("username", username),
				logger.F("project_id", projectID),
				logger.F("account_id", accountID),
			)
		}
		return nil, err
	}
	return member, nil
}

// ListByProject returns the members of a project.
func (s *Service) ListByProject(ctx context.Context, projectID, accountID int, opts store.ListOptions) (store.ListResult[domain.ProjectMember], error) {
	if s == nil || s.repo == nil {
		return store.ListResult[domain.ProjectMember]{}, errServiceNotInitialised
	}
	return s.repo.ListByProject(ctx, projectID, accountID, opts)
}

// Save creates the membership or updates the existing one. The lookup and
// the write run inside one transaction.
func (s *Service) Save(ctx context.Context, input MemberInput) (*domain.ProjectMember, error) {
	if s == nil || s.repo == nil {
		return nil, errServiceNotInitialised
	}
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.ProjectID <= 0 {
		return nil, ErrInvalidLookup
	}
	if input.Status == "" {
		input.Status = domain.MemberStatusActive
	}

	var saved *domain.ProjectMember
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		member, err := s.save(ctx, input)
		if err != nil {
			return err
		}
		saved = member
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *Service) save(ctx context.Context, input MemberInput) (*domain.ProjectMember, error) {
	existing, err := s.repo.GetByUsername(ctx, input.Username, input.ProjectID, input.AccountID)
	switch {
	case err == nil:
		existing.DisplayName = input.DisplayName
		existing.AvatarID = input.AvatarID
		existing.Status = input.Status
		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("members: update %s: %w", input.Username, err)
		}
		return existing, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	member := &domain.ProjectMember{
		Username:    input.Username,
		ProjectID:   input.ProjectID,
		AccountID:   input.AccountID,
		DisplayName: input.DisplayName,
		AvatarID:    input.AvatarID,
		Status:      input.Status,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("members: create %s: %w", input.Username, err)
	}
	s.logger.Info("project member saved",
		logger.F("username", member.Username),
		logger.F("project_id", member.ProjectID),
	)
	return member, nil
}

// Remove soft deletes a membership.
func (s *Service) Remove(ctx context.Context, username string, projectID, accountID int) error {
	member, err := s.FindMemberByUsername(ctx, username, projectID, accountID)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, member.ID)
}
