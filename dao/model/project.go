package model

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// MaxProjectKeyLen bounds the short prefix used to build issue display keys.
const MaxProjectKeyLen = 10

type Project struct {
	gorm.Model
	Name        string        `gorm:"type:varchar(128);not null;comment:项目名"`
	Key         string        `gorm:"uniqueIndex;type:varchar(10);not null;comment:项目标识前缀(大写)"`
	Description string        `gorm:"type:text;comment:项目描述"`
	Status      ProjectStatus `gorm:"not null;default:1;comment:项目状态"`
	OwnerID     uint          `gorm:"index;not null;comment:项目所有者"`
	Owner       User
	// IssueCounter only moves forward, so numbers of deleted issues are
	// never handed out again. Incremented under a row lock.
	IssueCounter uint `gorm:"not null;default:0;comment:Issue编号计数器"`
	// DefaultAssigneeID 新建 Issue 未指定负责人时的默认值，普通列而非外键，
	// 删除用户时置空即可
	DefaultAssigneeID *uint `gorm:"comment:默认负责人"`

	UserProjects []UserProject
}

// NormalizeProjectKey uppercases a raw key after trimming surrounding spaces.
func NormalizeProjectKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ValidateProjectKey checks a normalized key: 1 to 10 ASCII letters or digits.
func ValidateProjectKey(key string) error {
	if key == "" {
		return fmt.Errorf("project key must not be empty")
	}
	if len(key) > MaxProjectKeyLen {
		return fmt.Errorf("project key %q exceeds %d characters", key, MaxProjectKeyLen)
	}
	for _, r := range key {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("project key %q contains invalid character %q", key, r)
		}
	}
	return nil
}
