// Package access holds the authorization predicates. Handlers consult these
// instead of re-implementing role checks inline, so the policy reads in one
// place.
package access

import (
	"context"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/raids-lab/orbit/dao/model"
	"github.com/raids-lab/orbit/pkg/apierr"
)

// CanCreateProject allows admins and managers to open new projects.
func CanCreateProject(role model.Role) bool {
	return role == model.RoleAdmin || role == model.RoleManager
}

// CanManageProject allows admins everywhere and managers on projects they
// own. Managing covers settings, members and deletion.
func CanManageProject(role model.Role, userID uint, p *model.Project) bool {
	if role == model.RoleAdmin {
		return true
	}
	return role == model.RoleManager && p.OwnerID == userID
}

// CanViewStats is wider than manage: any manager may read the numbers of
// any project, as may its owner.
func CanViewStats(role model.Role, userID uint, p *model.Project) bool {
	return role == model.RoleAdmin || role == model.RoleManager || p.OwnerID == userID
}

func CanListAllUsers(role model.Role) bool {
	return role == model.RoleAdmin || role == model.RoleManager
}

// CanDeactivateUser forbids self-deactivation so the last admin cannot
// lock the platform.
func CanDeactivateUser(actorRole model.Role, actorID, targetID uint) bool {
	return actorRole == model.RoleAdmin && actorID != targetID
}

// CanViewVelocity restricts per-user analytics to the user themselves and
// admins.
func CanViewVelocity(role model.Role, actorID, targetID uint) bool {
	return actorID == targetID || role == model.RoleAdmin
}

// canAccessProject decides read access: admins, owners and members always
// pass, everyone else only while open access is on.
func canAccessProject(role model.Role, userID uint, p *model.Project, isMember, openAccess bool) bool {
	if role == model.RoleAdmin || p.OwnerID == userID || isMember {
		return true
	}
	return openAccess
}

// Checker resolves membership from the database and applies the predicates.
// One instance is shared by all handlers through the register config.
type Checker struct {
	db         *gorm.DB
	openAccess bool
}

func NewChecker(db *gorm.DB, openAccess bool) *Checker {
	return &Checker{db: db, openAccess: openAccess}
}

// IsMember reports whether the user has a membership row in the project.
func (ch *Checker) IsMember(ctx context.Context, userID, projectID uint) (bool, error) {
	var count int64
	err := ch.db.WithContext(ctx).Model(&model.UserProject{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RequireProjectView fails with Forbidden when the caller may not read the
// project. The project must already be loaded, lookup failures are the
// caller's NotFound.
func (ch *Checker) RequireProjectView(ctx context.Context, role model.Role, userID uint, p *model.Project) error {
	if role == model.RoleAdmin || p.OwnerID == userID || ch.openAccess {
		return nil
	}
	isMember, err := ch.IsMember(ctx, userID, p.ID)
	if err != nil {
		return err
	}
	if !canAccessProject(role, userID, p, isMember, ch.openAccess) {
		return apierr.Forbidden("no access to project %s", p.Key)
	}
	return nil
}

// RequireProjectManage fails with Forbidden when the caller may not change
// the project.
func (ch *Checker) RequireProjectManage(role model.Role, userID uint, p *model.Project) error {
	if !CanManageProject(role, userID, p) {
		return apierr.Forbidden("no permission to manage project %s", p.Key)
	}
	return nil
}

// AccessibleProjectIDs returns the projects a user may list issues from when
// no explicit project filter is given: owned plus joined. The bool reports
// that open access makes the restriction moot.
func (ch *Checker) AccessibleProjectIDs(ctx context.Context, userID uint) ([]uint, bool, error) {
	if ch.openAccess {
		return nil, true, nil
	}
	var owned []uint
	if err := ch.db.WithContext(ctx).Model(&model.Project{}).
		Where("owner_id = ?", userID).
		Pluck("id", &owned).Error; err != nil {
		return nil, false, err
	}
	var joined []uint
	if err := ch.db.WithContext(ctx).Model(&model.UserProject{}).
		Where("user_id = ?", userID).
		Pluck("project_id", &joined).Error; err != nil {
		return nil, false, err
	}
	return lo.Uniq(append(owned, joined...)), false, nil
}
