package domain

// UserRole is the account type. Caregivers are linked to exactly one elder.
type UserRole string

const (
	UserRoleElder     UserRole = "elder"
	UserRoleCaregiver UserRole = "caregiver"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleElder, UserRoleCaregiver, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin returns true if the role has administrative privileges.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// ExpenseFrequency is the billing cycle of a fixed expense.
type ExpenseFrequency string

const (
	FrequencyMonthly   ExpenseFrequency = "monthly"
	FrequencyQuarterly ExpenseFrequency = "quarterly"
	FrequencyYearly    ExpenseFrequency = "yearly"
)

func (f ExpenseFrequency) String() string { return string(f) }

func (f ExpenseFrequency) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// MonthsPerCycle returns how many months one billing cycle covers.
func (f ExpenseFrequency) MonthsPerCycle() int {
	switch f {
	case FrequencyQuarterly:
		return 3
	case FrequencyYearly:
		return 12
	default:
		return 1
	}
}

// FeedbackStatus tracks admin handling of a feedback item.
type FeedbackStatus string

const (
	FeedbackStatusPending    FeedbackStatus = "pending"
	FeedbackStatusInProgress FeedbackStatus = "in_progress"
	FeedbackStatusResolved   FeedbackStatus = "resolved"
)

func (s FeedbackStatus) String() string { return string(s) }

func (s FeedbackStatus) IsValid() bool {
	switch s {
	case FeedbackStatusPending, FeedbackStatusInProgress, FeedbackStatusResolved:
		return true
	}
	return false
}

// FeedbackPriority is the submitter's urgency estimate.
type FeedbackPriority string

const (
	FeedbackPriorityLow    FeedbackPriority = "low"
	FeedbackPriorityMedium FeedbackPriority = "medium"
	FeedbackPriorityHigh   FeedbackPriority = "high"
)

func (p FeedbackPriority) String() string { return string(p) }

func (p FeedbackPriority) IsValid() bool {
	switch p {
	case FeedbackPriorityLow, FeedbackPriorityMedium, FeedbackPriorityHigh:
		return true
	}
	return false
}

// TutorialStatus tracks admin handling of a tutorial request.
type TutorialStatus string

const (
	TutorialStatusPending    TutorialStatus = "pending"
	TutorialStatusInProgress TutorialStatus = "in_progress"
	TutorialStatusCompleted  TutorialStatus = "completed"
	TutorialStatusRejected   TutorialStatus = "rejected"
)

func (s TutorialStatus) String() string { return string(s) }

func (s TutorialStatus) IsValid() bool {
	switch s {
	case TutorialStatusPending, TutorialStatusInProgress, TutorialStatusCompleted, TutorialStatusRejected:
		return true
	}
	return false
}

// ContactType says where an emergency contact number came from.
type ContactType string

const (
	ContactTypeCaregiver ContactType = "caregiver"
	ContactTypeEmergency ContactType = "emergency"
)

func (c ContactType) String() string { return string(c) }
