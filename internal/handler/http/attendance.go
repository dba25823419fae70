package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/desadigital/absensi-backend-go/internal/domain/attendance"
	"github.com/desadigital/absensi-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Action == string(attendance.ActionCreate) {
		response.Created(w, "Attendance recorded", result)
		return
	}
	response.SuccessWithMessage(w, "Attendance updated", result)
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	req := attendance.HistoryRequest{
		Period: r.URL.Query().Get("period"),
		Page:   1,
		Limit:  10,
	}
	if req.Period == "" {
		req.Period = string(attendance.PeriodDay)
	}

	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			req.Page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			req.Limit = limitNum
		}
	}

	results, err := h.attendanceService.History(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if req.Limit > 0 {
		totalPages = int((results.TotalItems + int64(req.Limit) - 1) / int64(req.Limit))
	}
	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       req.Page,
		Limit:      req.Limit,
		TotalItems: results.TotalItems,
		TotalPages: totalPages,
	})
}
