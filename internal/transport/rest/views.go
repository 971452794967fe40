package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// JSON views of domain types. Dates are "YYYY-MM-DD", times of day "HH:MM",
// instants RFC 3339.

type userResponse struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	Role             string     `json:"role"`
	Gender           string     `json:"gender,omitempty"`
	Age              int        `json:"age,omitempty"`
	ElderID          *uuid.UUID `json:"elder_id,omitempty"`
	Street           string     `json:"street,omitempty"`
	City             string     `json:"city,omitempty"`
	State            string     `json:"state,omitempty"`
	Pincode          string     `json:"pincode,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	MonthlyBudget    float64    `json:"monthly_budget"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Phone:            u.Phone,
		Role:             string(u.Role),
		Gender:           u.Gender,
		Age:              u.Age,
		ElderID:          u.ElderID,
		Street:           u.Address.Street,
		City:             u.Address.City,
		State:            u.Address.State,
		Pincode:          u.Address.Pincode,
		EmergencyContact: u.EmergencyContact,
		MonthlyBudget:    u.MonthlyBudget,
		CreatedAt:        u.CreatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out
}

type medicineResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	Times     []string  `json:"times"`
	Days      []string  `json:"days"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toMedicineResponse(m *domain.Medicine) medicineResponse {
	return medicineResponse{
		ID:        m.ID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		Times:     m.Times,
		Days:      m.Days,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

type scheduleEntryResponse struct {
	ID           uuid.UUID  `json:"id"`
	MedicineID   uuid.UUID  `json:"medicine_id"`
	MedicineName string     `json:"medicine_name"`
	Dosage       string     `json:"dosage"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Status       string     `json:"status"`
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	Version      int        `json:"version"`
}

func toScheduleEntryResponse(e *domain.ScheduleEntry) scheduleEntryResponse {
	return scheduleEntryResponse{
		ID:           e.ID,
		MedicineID:   e.MedicineID,
		MedicineName: e.MedicineName,
		Dosage:       e.Dosage,
		Date:         e.ScheduledAt.Format(time.DateOnly),
		Time:         e.Time,
		Status:       e.Status(),
		TakenAt:      e.TakenAt,
		Version:      e.Version,
	}
}

func toScheduleEntryResponses(entries []domain.ScheduleEntry) []scheduleEntryResponse {
	out := make([]scheduleEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toScheduleEntryResponse(&entries[i]))
	}
	return out
}

type reminderResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func toReminderResponses(list []domain.Reminder, loc *time.Location) []reminderResponse {
	out := make([]reminderResponse, 0, len(list))
	for _, r := range list {
		due := r.DueAt.In(loc)
		out = append(out, reminderResponse{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Date:        due.Format(time.DateOnly),
			Time:        due.Format(domain.ClockLayout),
			Completed:   r.Completed,
			CompletedAt: r.CompletedAt,
		})
	}
	return out
}

type eventResponse struct {
	ID               uuid.UUID `json:"id"`
	OrganizerID      uuid.UUID `json:"organizer_id"`
	OrganizerName    string    `json:"organizer_name"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	MaxParticipants  int       `json:"max_participants"`
	ParticipantCount int       `json:"participant_count"`
	IsFull           bool      `json:"is_full"`
}

func toEventResponse(e *domain.Event, loc *time.Location) eventResponse {
	starts := e.StartsAt.In(loc)
	return eventResponse{
		ID:               e.ID,
		OrganizerID:      e.OrganizerID,
		OrganizerName:    e.OrganizerName,
		Name:             e.Name,
		Description:      e.Description,
		Date:             starts.Format(time.DateOnly),
		Time:             starts.Format(domain.ClockLayout),
		Location:         e.Location,
		MaxParticipants:  e.MaxParticipants,
		ParticipantCount: e.ParticipantCount,
		IsFull:           e.IsFull(),
	}
}

func toEventResponses(list []domain.Event, loc *time.Location) []eventResponse {
	out := make([]eventResponse, 0, len(list))
	for i := range list {
		out = append(out, toEventResponse(&list[i], loc))
	}
	return out
}

type expenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
}

func toExpenseResponses(list []domain.RegularExpense) []expenseResponse {
	out := make([]expenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, expenseResponse{
			ID:          e.ID,
			Name:        e.Name,
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
			Date:        e.SpentOn.Format(time.DateOnly),
		})
	}
	return out
}

type fixedExpenseResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Frequency   string     `json:"frequency"`
	Description string     `json:"description,omitempty"`
	DueDate     string     `json:"due_date"`
	IsPaid      bool       `json:"is_paid"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func toFixedExpenseResponse(e *domain.FixedExpense) fixedExpenseResponse {
	return fixedExpenseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Amount:      e.Amount,
		Category:    e.Category,
		Frequency:   string(e.Frequency),
		Description: e.Description,
		DueDate:     e.DueDate.Format(time.DateOnly),
		IsPaid:      e.IsPaid,
		PaidAt:      e.PaidAt,
	}
}

func toFixedExpenseResponses(list []domain.FixedExpense) []fixedExpenseResponse {
	out := make([]fixedExpenseResponse, 0, len(list))
	for i := range list {
		out = append(out, toFixedExpenseResponse(&list[i]))
	}
	return out
}

type emergencyLogResponse struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"user_id"`
	UserName            string     `json:"user_name"`
	ContactType         string     `json:"contact_type"`
	PhoneNumber         string     `json:"phone_number"`
	LinkedCaregiverID   *uuid.UUID `json:"linked_caregiver_id,omitempty"`
	LinkedCaregiverName *string    `json:"linked_caregiver_name,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toEmergencyLogResponse(l *domain.EmergencyLog) emergencyLogResponse {
	return emergencyLogResponse{
		ID:                  l.ID,
		UserID:              l.UserID,
		UserName:            l.UserName,
		ContactType:         l.ContactType,
		PhoneNumber:         l.PhoneNumber,
		LinkedCaregiverID:   l.LinkedCaregiverID,
		LinkedCaregiverName: l.LinkedCaregiverName,
		CreatedAt:           l.CreatedAt,
	}
}

func toEmergencyLogResponses(list []domain.EmergencyLog) []emergencyLogResponse {
	out := make([]emergencyLogResponse, 0, len(list))
	for i := range list {
		out = append(out, toEmergencyLogResponse(&list[i]))
	}
	return out
}

type tutorialResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	Topic           string    `json:"topic"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	Difficulty      string    `json:"difficulty,omitempty"`
	Platform        string    `json:"platform,omitempty"`
	AdditionalNotes string    `json:"additional_notes,omitempty"`
	Status          string    `json:"status"`
	AdminNotes      string    `json:"admin_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toTutorialResponse(t *domain.TutorialRequest) tutorialResponse {
	return tutorialResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		UserName:        t.UserName,
		Topic:           t.Topic,
		Category:        t.Category,
		Description:     t.Description,
		Difficulty:      t.Difficulty,
		Platform:        t.Platform,
		AdditionalNotes: t.AdditionalNotes,
		Status:          string(t.Status),
		AdminNotes:      t.AdminNotes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func toTutorialResponses(list []domain.TutorialRequest) []tutorialResponse {
	out := make([]tutorialResponse, 0, len(list))
	for i := range list {
		out = append(out, toTutorialResponse(&list[i]))
	}
	return out
}

type feedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Type      string    `json:"type"`
	Rating    *int      `json:"rating,omitempty"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toFeedbackResponse(f *domain.Feedback, userName string) feedbackResponse {
	return feedbackResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		UserName:  userName,
		Type:      f.Type,
		Rating:    f.Rating,
		Message:   f.Message,
		Priority:  string(f.Priority),
		Status:    string(f.Status),
		CreatedAt: f.CreatedAt,
	}
}
