package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/medicine"
)

type medicineService interface {
	CreateMedicine(ctx context.Context, input medicine.CreateMedicineInput) (*medicine.CreateResult, error)
	ListMedicines(ctx context.Context) ([]domain.Medicine, error)
	ListToday(ctx context.Context) (*medicine.TodayResult, error)
	DeleteMedicine(ctx context.Context, input medicine.DeleteMedicineInput) error
	MarkTaken(ctx context.Context, input medicine.MarkTakenInput) (*domain.ScheduleEntry, error)
}

// MedicineHandler serves medicines and their daily schedule.
type MedicineHandler struct {
	svc medicineService
	log *slog.Logger
}

// NewMedicineHandler creates a MedicineHandler.
func NewMedicineHandler(svc medicineService, logger *slog.Logger) *MedicineHandler {
	return &MedicineHandler{svc: svc, log: logger.With("handler", "medicine")}
}

type createMedicineRequest struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	Days      []string `json:"days"`
	Notes     string   `json:"notes"`
}

type createMedicineResponse struct {
	Medicine       medicineResponse `json:"medicine"`
	ScheduledCount int              `json:"scheduled_count"`
}

type todayResponse struct {
	Due   []scheduleEntryResponse `json:"due"`
	Taken []scheduleEntryResponse `json:"taken"`
}

func toTodayResponse(res *medicine.TodayResult) *todayResponse {
	if res == nil {
		return nil
	}
	return &todayResponse{
		Due:   toScheduleEntryResponses(res.Due),
		Taken: toScheduleEntryResponses(res.Taken),
	}
}

type markTakenRequest struct {
	Taken   bool `json:"taken"`
	Version *int `json:"version"`
}

// List returns the caller's medicines sorted by name.
//
//	@Summary	List medicines
//	@Tags		medicines
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	medicineResponse
//	@Router		/api/v1/medicines [get]
func (h *MedicineHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListMedicines(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]medicineResponse, 0, len(list))
	for i := range list {
		out = append(out, toMedicineResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create stores a medicine and schedules the next 30 days of doses.
//
//	@Summary	Create a medicine
//	@Tags		medicines
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		createMedicineRequest	true	"Medicine"
//	@Success	201		{object}	createMedicineResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/medicines [post]
func (h *MedicineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMedicineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.CreateMedicine(r.Context(), medicine.CreateMedicineInput{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Times:     req.Times,
		Days:      req.Days,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createMedicineResponse{
		Medicine:       toMedicineResponse(res.Medicine),
		ScheduledCount: res.ScheduledCount,
	})
}

// Today returns today's due and taken doses.
//
//	@Summary	Today's schedule
//	@Tags		medicines
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	todayResponse
//	@Router		/api/v1/medicines/today [get]
func (h *MedicineHandler) Today(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListToday(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodayResponse(res))
}

// Delete removes a medicine together with its schedule.
//
//	@Summary	Delete a medicine
//	@Tags		medicines
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Medicine ID"
//	@Success	200	{object}	OKResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/medicines/{id} [delete]
func (h *MedicineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteMedicine(r.Context(), medicine.DeleteMedicineInput{MedicineID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeOK(w, "medicine deleted")
}

// MarkTaken toggles one dose. Sending version enables the stale-write check.
//
//	@Summary	Mark a dose taken or pending
//	@Tags		medicines
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Schedule entry ID"
//	@Param		body	body		markTakenRequest	true	"New state"
//	@Success	200		{object}	scheduleEntryResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/api/v1/schedule/{id}/taken [post]
func (h *MedicineHandler) MarkTaken(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req markTakenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.MarkTaken(r.Context(), medicine.MarkTakenInput{
		EntryID:         id,
		Taken:           req.Taken,
		ExpectedVersion: req.Version,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleEntryResponse(entry))
}
