package constants

const (
	APIPrefix = "v1"

	// Pagination caps for the list endpoints
	DefaultPageSize  = 50
	MaxIssuePageSize = 100
	MaxUserPageSize  = 200

	// The Kanban board never loads more issues than this per project
	MaxBoardIssues = 1000
)
