package models

import "time"

// ReviewAction is a reviewer's decision on a queued entry.
type ReviewAction string

const (
	ReviewActionApprove  ReviewAction = "approve"
	ReviewActionReject   ReviewAction = "reject"
	ReviewActionEscalate ReviewAction = "escalate"
)

// Valid reports whether a is a known review action.
func (a ReviewAction) Valid() bool {
	switch a {
	case ReviewActionApprove, ReviewActionReject, ReviewActionEscalate:
		return true
	}
	return false
}

// EscalatedPriority is the priority an entry jumps to on escalation.
const EscalatedPriority = 10

// Role is a user's authorization role.
type Role string

const (
	RoleUser     Role = "user"
	RoleReviewer Role = "reviewer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleReviewer, RoleAdmin:
		return true
	}
	return false
}

// ReviewQueueFilters narrow and page the review queue listing.
type ReviewQueueFilters struct {
	Status     string
	AssignedTo string
	Limit      int
	Offset     int
}

// ReviewDocSummary is the document slice shown alongside a queue entry.
type ReviewDocSummary struct {
	URL             string   `json:"url"`
	Domain          string   `json:"domain"`
	CleanText       string   `json:"clean_text"`
	Language        string   `json:"language"`
	LangConfidence  float64  `json:"lang_confidence"`
	HeuristicScore  float64  `json:"heuristic_score"`
	ClassifierScore *float64 `json:"classifier_score,omitempty"`
	Label           string   `json:"label"`
}

// ReviewQueueEntry is one row of the review queue listing.
type ReviewQueueEntry struct {
	ID         string           `json:"id"`
	DocID      string           `json:"doc_id"`
	Status     string           `json:"status"`
	Priority   int              `json:"priority"`
	Note       string           `json:"note,omitempty"`
	AssignedTo string           `json:"assigned_to,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	Doc        ReviewDocSummary `json:"doc"`
}

// ReviewQueueResponse is the paged queue listing plus the standing count
// of pending entries.
type ReviewQueueResponse struct {
	Items        []ReviewQueueEntry `json:"items"`
	TotalPending int                `json:"total_pending"`
	Limit        int                `json:"limit"`
	Offset       int                `json:"offset"`
}

// ReviewStats are the per-status queue counts plus the caller's active
// assignments.
type ReviewStats struct {
	Pending    int `json:"pending"`
	InReview   int `json:"in_review"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
	Escalated  int `json:"escalated"`
	MyAssigned int `json:"my_assigned"`
}
