package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raids-lab/orbit/dao/model"
)

func TestCanCreateProject(t *testing.T) {
	assert.True(t, CanCreateProject(model.RoleAdmin))
	assert.True(t, CanCreateProject(model.RoleManager))
	assert.False(t, CanCreateProject(model.RoleUser))
	assert.False(t, CanCreateProject(model.RoleGuest))
}

func TestCanManageProject(t *testing.T) {
	project := &model.Project{OwnerID: 7}

	// 管理员可以管理任何项目
	assert.True(t, CanManageProject(model.RoleAdmin, 1, project))
	// Manager 只能管理自己拥有的项目
	assert.True(t, CanManageProject(model.RoleManager, 7, project))
	assert.False(t, CanManageProject(model.RoleManager, 8, project))
	// 普通用户即使是所有者也没有 Manager 权限
	assert.False(t, CanManageProject(model.RoleUser, 7, project))
}

func TestCanViewStats(t *testing.T) {
	project := &model.Project{OwnerID: 7}

	assert.True(t, CanViewStats(model.RoleAdmin, 1, project))
	assert.True(t, CanViewStats(model.RoleManager, 8, project))
	assert.True(t, CanViewStats(model.RoleUser, 7, project))
	assert.False(t, CanViewStats(model.RoleUser, 8, project))
}

func TestCanListAllUsers(t *testing.T) {
	assert.True(t, CanListAllUsers(model.RoleAdmin))
	assert.True(t, CanListAllUsers(model.RoleManager))
	assert.False(t, CanListAllUsers(model.RoleUser))
}

func TestCanDeactivateUser(t *testing.T) {
	assert.True(t, CanDeactivateUser(model.RoleAdmin, 1, 2))
	// 禁止自我停用
	assert.False(t, CanDeactivateUser(model.RoleAdmin, 1, 1))
	assert.False(t, CanDeactivateUser(model.RoleManager, 1, 2))
	assert.False(t, CanDeactivateUser(model.RoleUser, 1, 2))
}

func TestCanViewVelocity(t *testing.T) {
	assert.True(t, CanViewVelocity(model.RoleUser, 3, 3))
	assert.True(t, CanViewVelocity(model.RoleAdmin, 1, 3))
	assert.False(t, CanViewVelocity(model.RoleManager, 1, 3))
	assert.False(t, CanViewVelocity(model.RoleUser, 1, 3))
}

func TestCanAccessProject(t *testing.T) {
	project := &model.Project{OwnerID: 7}

	tests := []struct {
		name       string
		role       model.Role
		userID     uint
		isMember   bool
		openAccess bool
		want       bool
	}{
		{"admin always", model.RoleAdmin, 1, false, false, true},
		{"owner always", model.RoleUser, 7, false, false, true},
		{"member always", model.RoleUser, 8, true, false, true},
		{"outsider closed", model.RoleUser, 8, false, false, false},
		{"outsider open access", model.RoleUser, 8, false, true, true},
		{"manager is not special here", model.RoleManager, 8, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canAccessProject(tt.role, tt.userID, project, tt.isMember, tt.openAccess)
			assert.Equal(t, tt.want, got)
		})
	}
}
