package workflow

// =====================================================
// STATUS
// =====================================================

// Status dùng chung cho draft record và approval record.
// DRAFT = chưa submit, chưa có approval record.
type Status string

const (
	StatusDraft    Status = "DRAFT"
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal - APPROVED không thể quay lại trạng thái khác, owner không sửa được nữa
func (s Status) IsTerminal() bool {
	return s == StatusApproved
}

// =====================================================
// ENTITY TYPE
// =====================================================

type EntityType string

const (
	EntityInfo    EntityType = "info"
	EntitySummary EntityType = "summary"
	EntitySocials EntityType = "socials"
)

func (t EntityType) IsValid() bool {
	switch t {
	case EntityInfo, EntitySummary, EntitySocials:
		return true
	}
	return false
}

// =====================================================
// REVIEW ACTION
// =====================================================

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

func (a Action) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}

// Outcome returns the status a draft lands in after the action.
func (a Action) Outcome() Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}
