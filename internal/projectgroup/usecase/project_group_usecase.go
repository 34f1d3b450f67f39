package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/collabhub/collabhub/internal/database"
	projectGroupDomain "github.com/collabhub/collabhub/internal/projectgroup/domain"
)

// keyInvalidChars matches everything that cannot appear in a machine key.
var keyInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// projectGroupUseCase implements ProjectGroupUseCase.
type projectGroupUseCase struct {
	txManager        database.TxManager
	projectGroupRepo ProjectGroupRepository
	projectGetter    ProjectGetter
}

// Create stores a new project group with its permissions and initial members.
// The parent project must exist; the group row, its permissions and the
// memberships are written atomically.
func (p *projectGroupUseCase) Create(
	ctx context.Context,
	input *projectGroupDomain.CreateProjectGroupInput,
) (*projectGroupDomain.ProjectGroup, error) {
	if _, err := p.projectGetter.Get(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	group := &projectGroupDomain.ProjectGroup{
		ID:          uuid.Must(uuid.NewV7()),
		ProjectID:   input.ProjectID,
		Key:         deriveKey(input.Name),
		Name:        input.Name,
		Permissions: input.Permissions,
		MemberIDs:   input.UserIDs,
		CreatedAt:   time.Now().UTC(),
	}

	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := p.projectGroupRepo.Create(ctx, group); err != nil {
			return err
		}
		if len(input.UserIDs) > 0 {
			return p.projectGroupRepo.ReplaceMembers(ctx, group.ID, input.UserIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

// ListByProject retrieves a project's groups.
func (p *projectGroupUseCase) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*projectGroupDomain.ProjectGroup, error) {
	if _, err := p.projectGetter.Get(ctx, projectID); err != nil {
		return nil, err
	}

	return p.projectGroupRepo.ListByProject(ctx, projectID)
}

// Delete removes a project group scoped by its project.
func (p *projectGroupUseCase) Delete(ctx context.Context, projectID, groupID uuid.UUID) error {
	return p.projectGroupRepo.Delete(ctx, projectID, groupID)
}

// deriveKey turns a human-readable group name into a snake_case machine key.
func deriveKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = keyInvalidChars.ReplaceAllString(key, "_")
	return strings.Trim(key, "_")
}

// NewProjectGroupUseCase creates a new ProjectGroupUseCase.
func NewProjectGroupUseCase(
	txManager database.TxManager,
	projectGroupRepo ProjectGroupRepository,
	projectGetter ProjectGetter,
) ProjectGroupUseCase {
	return &projectGroupUseCase{
		txManager:        txManager,
		projectGroupRepo: projectGroupRepo,
		projectGetter:    projectGetter,
	}
}
