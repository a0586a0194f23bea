// 定义与数据库表字段对应的常量
// 由于 Gin 框架在进行参数校验时，如果给了 required 标签，则不能传入零值
// 这个时候，我们可以通过定义对应类型的指针解决该问题，但这可能导致出错
// 所以在定义常量时，最好将零值排除在外，请使用 iota + 1 定义第一个常量
package model

// User role in platform
type Role uint8

const (
	RoleGuest   Role = iota + 1 // Read-only visitor
	RoleUser                    // Regular developer
	RoleManager                 // Can create and manage owned projects
	RoleAdmin                   // Platform administrator
)

// User account status
type Status uint8

const (
	StatusPending  Status = iota + 1 // Pending status, not yet activated
	StatusActive                     // Active status
	StatusInactive                   // Deactivated, login rejected
)

// Project lifecycle status
type ProjectStatus uint8

const (
	ProjectActive   ProjectStatus = iota + 1 // Open for new issues
	ProjectArchived                          // Kept for history, hidden from default listings
)

// Role of a user inside a single project
type ProjectRole uint8

const (
	ProjectRoleViewer     ProjectRole = iota + 1 // Can read the board
	ProjectRoleDeveloper                         // Can create and edit issues
	ProjectRoleMaintainer                        // Can manage members and settings
)
