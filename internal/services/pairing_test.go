package services

import (
	"context"
	"testing"

	"couple-space-backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestJoinCoupleMalformedInviteCode(t *testing.T) {
	svc := NewPairingService(nil, nil, nil)

	// A code that is not even a UUID cannot name a couple; it reads as
	// unknown before any storage work happens.
	for _, code := range []string{"abc123", "", "not-a-uuid", "12345678-1234"} {
		_, err := svc.JoinCouple(context.Background(), code, "partner@test.com", "secret123", "Partner")
		assert.ErrorIs(t, err, repository.ErrNotFound, "code %q", code)
	}
}
