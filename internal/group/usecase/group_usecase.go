package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/collabhub/collabhub/internal/database"
	groupDomain "github.com/collabhub/collabhub/internal/group/domain"
)

// keyInvalidChars matches everything that cannot appear in a machine key.
var keyInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// groupUseCase implements GroupUseCase.
type groupUseCase struct {
	txManager database.TxManager
	groupRepo GroupRepository
}

// Create stores a new group with its permissions and initial members.
// The group row, its permissions and the memberships are written atomically.
func (g *groupUseCase) Create(
	ctx context.Context,
	input *groupDomain.CreateGroupInput,
) (*groupDomain.Group, error) {
	group := &groupDomain.Group{
		ID:          uuid.Must(uuid.NewV7()),
		Key:         deriveKey(input.Name),
		Name:        input.Name,
		Permissions: input.Permissions,
		CreatedAt:   time.Now().UTC(),
	}

	err := g.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := g.groupRepo.Create(ctx, group); err != nil {
			return err
		}
		if len(input.UserIDs) > 0 {
			return g.groupRepo.ReplaceMembers(ctx, group.ID, input.UserIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

// Get retrieves a group by ID with its permissions.
func (g *groupUseCase) Get(ctx context.Context, groupID uuid.UUID) (*groupDomain.Group, error) {
	return g.groupRepo.Get(ctx, groupID)
}

// List retrieves groups with pagination.
func (g *groupUseCase) List(ctx context.Context, offset, limit int) ([]*groupDomain.Group, error) {
	return g.groupRepo.List(ctx, offset, limit)
}

// UpdateMembers replaces the group's membership with the given user set.
func (g *groupUseCase) UpdateMembers(
	ctx context.Context,
	groupID uuid.UUID,
	userIDs []uuid.UUID,
) error {
	// Ensure the group exists so a bogus ID surfaces as 404, not a silent no-op
	if _, err := g.groupRepo.Get(ctx, groupID); err != nil {
		return err
	}

	return g.txManager.WithTx(ctx, func(ctx context.Context) error {
		return g.groupRepo.ReplaceMembers(ctx, groupID, userIDs)
	})
}

// deriveKey turns a human-readable group name into a snake_case machine key.
// "Project Admins" becomes "project_admins".
func deriveKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = keyInvalidChars.ReplaceAllString(key, "_")
	return strings.Trim(key, "_")
}

// NewGroupUseCase creates a new GroupUseCase.
func NewGroupUseCase(txManager database.TxManager, groupRepo GroupRepository) GroupUseCase {
	return &groupUseCase{
		txManager: txManager,
		groupRepo: groupRepo,
	}
}
