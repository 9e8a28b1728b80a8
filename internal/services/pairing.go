package services

import (
	"context"
	"fmt"
	"time"

	"couple-space-backend/internal/models"
	"couple-space-backend/internal/repository"

	"github.com/google/uuid"
)

// PairingService stands up new couples and admits partners by invite code
type PairingService struct {
	coupleRepo *repository.CoupleRepository
	userRepo   *repository.UserRepository
	users      *UserService
}

// NewPairingService creates a new pairing service
func NewPairingService(coupleRepo *repository.CoupleRepository, userRepo *repository.UserRepository, users *UserService) *PairingService {
	return &PairingService{
		coupleRepo: coupleRepo,
		userRepo:   userRepo,
		users:      users,
	}
}

// PairingResult is what both pairing flows hand back to the caller
type PairingResult struct {
	User       *models.UserProfile `json:"user"`
	Couple     *models.Couple      `json:"couple"`
	InviteCode string              `json:"invite_code"`
	Token      string              `json:"token"`
}

// CreateCouple registers the founding partner, creates the couple and the
// partner_1 member record, and returns the invite code the second partner
// joins with. The invite code is the couple's own id.
func (s *PairingService) CreateCouple(ctx context.Context, coupleName, email, password, displayName string) (*PairingResult, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	founder := &models.UserProfile{
		ID:           uuid.New().String(),
		Email:        NormalizeEmail(email),
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	couple := &models.Couple{
		ID:        uuid.New().String(),
		Name:      coupleName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	member := &models.CoupleMember{
		ID:        uuid.New().String(),
		CoupleID:  couple.ID,
		UserID:    founder.ID,
		Name:      displayName,
		Role:      models.RolePartner1,
		CreatedAt: now,
	}

	if err := s.coupleRepo.CreateWithFounder(ctx, couple, founder, member); err != nil {
		return nil, fmt.Errorf("failed to create couple: %w", err)
	}
	founder.CoupleID = &couple.ID

	token, err := s.users.GenerateJWT(founder.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &PairingResult{
		User:       founder,
		Couple:     couple,
		InviteCode: couple.ID,
		Token:      token,
	}, nil
}

// JoinCouple registers the second partner and admits them to the couple named
// by the invite code as partner_2
func (s *PairingService) JoinCouple(ctx context.Context, inviteCode, email, password, displayName string) (*PairingResult, error) {
	// Invite codes are couple ids. A mistyped code that is not even a UUID
	// can never match a couple, so treat it as unknown up front instead of
	// letting the uuid column reject it.
	if _, err := uuid.Parse(inviteCode); err != nil {
		return nil, repository.ErrNotFound
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	joiner := &models.UserProfile{
		ID:           uuid.New().String(),
		Email:        NormalizeEmail(email),
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	member := &models.CoupleMember{
		ID:        uuid.New().String(),
		CoupleID:  inviteCode,
		UserID:    joiner.ID,
		Name:      displayName,
		Role:      models.RolePartner2,
		CreatedAt: now,
	}

	couple, err := s.coupleRepo.Join(ctx, inviteCode, joiner, member)
	if err != nil {
		return nil, err
	}
	joiner.CoupleID = &couple.ID

	token, err := s.users.GenerateJWT(joiner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &PairingResult{
		User:       joiner,
		Couple:     couple,
		InviteCode: couple.ID,
		Token:      token,
	}, nil
}

// CoupleInfo is a couple together with its member records
type CoupleInfo struct {
	Couple  *models.Couple         `json:"couple"`
	Members []*models.CoupleMember `json:"members"`
}

// RenameCouple updates the couple's display name and returns the fresh record
func (s *PairingService) RenameCouple(ctx context.Context, coupleID, name string) (*models.Couple, error) {
	if err := s.coupleRepo.UpdateName(ctx, coupleID, name); err != nil {
		return nil, err
	}
	return s.coupleRepo.GetByID(ctx, coupleID)
}

// GetCoupleInfo retrieves a couple and its members
func (s *PairingService) GetCoupleInfo(ctx context.Context, coupleID string) (*CoupleInfo, error) {
	couple, err := s.coupleRepo.GetByID(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	members, err := s.coupleRepo.GetMembers(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	return &CoupleInfo{Couple: couple, Members: members}, nil
}
