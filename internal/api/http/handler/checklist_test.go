package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Pranav7758/digital-setu-hub/internal/api/http/middleware"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
	"github.com/Pranav7758/digital-setu-hub/internal/testutil"
)

func TestChecklist_List(t *testing.T) {
	svc := &MockChecklistService{}
	svc.On("Purposes").Return([]model.Purpose{{ID: "passport", Name: "Passport Application"}})

	h := NewChecklist(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/checklists", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"passport"`)
}

func TestChecklist_Get(t *testing.T) {
	userID := uuid.New()
	svc := &MockChecklistService{}

	svc.On("Evaluate", mock.Anything, userID, "passport").Return(model.Checklist{
		Purpose:   "passport",
		Name:      "Passport Application",
		Items:     []model.ChecklistItem{{ID: "aadhar", Status: model.ChecklistCompleted}},
		Completed: 1,
		Total:     6,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/checklists/passport", nil)
	req = req.WithContext(middleware.SetUserIDToContext(req.Context(), userID))
	req = withURLParam(req, "purpose", "passport")
	rec := httptest.NewRecorder()

	h := NewChecklist(svc, testutil.MakeNoopLogger())
	h.Get(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"completed":1`)
	assert.Contains(t, rec.Body.String(), `"total":6`)
}

func TestChecklist_Get_UnknownPurpose(t *testing.T) {
	userID := uuid.New()
	svc := &MockChecklistService{}

	svc.On("Evaluate", mock.Anything, userID, "space_travel").Return(model.Checklist{}, model.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/checklists/space_travel", nil)
	req = req.WithContext(middleware.SetUserIDToContext(req.Context(), userID))
	req = withURLParam(req, "purpose", "space_travel")
	rec := httptest.NewRecorder()

	h := NewChecklist(svc, testutil.MakeNoopLogger())
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
