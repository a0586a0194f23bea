package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is the basic entity of the system
type User struct {
	gorm.Model
	Name        string                            `gorm:"uniqueIndex;type:varchar(32);not null;comment:用户名"`
	Nickname    string                            `gorm:"type:varchar(64);comment:昵称"`
	Email       string                            `gorm:"uniqueIndex;type:varchar(128);not null;comment:邮箱(统一小写)"`
	Password    *string                           `gorm:"type:varchar(256);comment:密码哈希"`
	Role        Role                              `gorm:"not null;default:2;comment:平台角色"`
	Status      Status                            `gorm:"not null;default:2;comment:用户状态"`
	Attributes  datatypes.JSONType[UserAttribute] `gorm:"comment:用户额外属性"`
	LastLoginAt *time.Time                        `gorm:"comment:上次登录时间"`

	UserProjects []UserProject
}

// UserAttribute is the contact card stored as a JSON blob, also used as the
// notification receiver descriptor.
type UserAttribute struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Team     string `json:"team,omitempty"`
}

// UserProject binds a user to a project with a per-project role.
type UserProject struct {
	gorm.Model
	UserID    uint        `gorm:"primaryKey"`
	ProjectID uint        `gorm:"primaryKey"`
	Role      ProjectRole `gorm:"not null;default:2;comment:用户在项目中的角色"`
}
