package util

// IssueEvent is pushed by the lifecycle controller after a successful
// mutation and fanned out to board subscribers.
type IssueEvent struct {
	ProjectID uint           `json:"projectID"`
	IssueID   uint           `json:"issueID"`
	IssueKey  string         `json:"issueKey"`
	Operation IssueOperation `json:"operation"`
	Status    string         `json:"status,omitempty"`
}

type IssueOperation string

const (
	CreateIssue     IssueOperation = "create"
	UpdateIssue     IssueOperation = "update"
	TransitionIssue IssueOperation = "transition"
	DeleteIssue     IssueOperation = "delete"
)
