package payload

// 定义返回值时，优先在使用到该返回值的 /internal/handler/xxx.go 中直接定义
// 当某个返回值的结构体通用时，从 /internal/handler/xxx.go 中提升至此文件中

type (
	// UserBrief 用于在 Issue、Project 等返回值中引用用户
	UserBrief struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Nickname string `json:"nickname"`
	}

	// ProjectBrief 用于在 Issue、Analytics 等返回值中引用项目
	ProjectBrief struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Key  string `json:"key"`
	}

	// StatusCount 状态直方图的一项
	StatusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
)
