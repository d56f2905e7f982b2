package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pranav7758/digital-setu-hub/internal/api/http/middleware"
	"github.com/Pranav7758/digital-setu-hub/internal/model"
	"github.com/Pranav7758/digital-setu-hub/internal/testutil"
)

func authedRequest(method, target string, body *bytes.Buffer, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middleware.SetUserIDToContext(req.Context(), userID))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDocument_List(t *testing.T) {
	userID := uuid.New()
	svc := &MockDocumentService{}

	svc.On("List", mock.Anything, userID).Return([]model.Document{
		{ID: uuid.New(), UserID: userID, DocumentName: "Aadhar", DocumentType: "aadhar", VerificationStatus: model.VerificationPending, CreatedAt: time.Now()},
	}, nil)

	h := NewDocument(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest(http.MethodGet, "/api/documents", nil, userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"document_name":"Aadhar"`)
	// Internal object keys are never exposed on the list.
	assert.NotContains(t, rec.Body.String(), "file_url")
}

func TestDocument_Upload(t *testing.T) {
	userID := uuid.New()
	svc := &MockDocumentService{}

	svc.On("Upload", mock.Anything, mock.MatchedBy(func(p model.CreateDocumentParams) bool {
		return p.UserID == userID &&
			p.DocumentName == "Aadhar Card" &&
			p.DocumentType == "aadhar" &&
			p.ContentType == "application/pdf" &&
			p.FileName == "aadhar.pdf"
	}), mock.Anything, int64(9)).Return(model.Document{ID: uuid.New(), UserID: userID, DocumentName: "Aadhar Card"}, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("document_name", "Aadhar Card"))
	require.NoError(t, mw.WriteField("document_type", "aadhar"))

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="aadhar.pdf"`)
	partHeader.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte("pdf bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := authedRequest(http.MethodPost, "/api/documents", &body, userID)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h := NewDocument(svc, testutil.MakeNoopLogger())
	h.Upload(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestDocument_Upload_MissingFile(t *testing.T) {
	userID := uuid.New()
	svc := &MockDocumentService{}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("document_name", "Aadhar"))
	require.NoError(t, mw.Close())

	req := authedRequest(http.MethodPost, "/api/documents", &body, userID)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h := NewDocument(svc, testutil.MakeNoopLogger())
	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocument_ViewURL(t *testing.T) {
	userID := uuid.New()
	docID := uuid.New()
	svc := &MockDocumentService{}

	svc.On("ViewURL", mock.Anything, userID, docID).Return("https://signed/a", nil)

	req := authedRequest(http.MethodGet, "/api/documents/"+docID.String()+"/url", nil, userID)
	req = withURLParam(req, "id", docID.String())
	rec := httptest.NewRecorder()

	h := NewDocument(svc, testutil.MakeNoopLogger())
	h.ViewURL(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://signed/a"}`, rec.Body.String())
}

func TestDocument_ViewURL_NotFound(t *testing.T) {
	userID := uuid.New()
	docID := uuid.New()
	svc := &MockDocumentService{}

	svc.On("ViewURL", mock.Anything, userID, docID).Return("", model.ErrNotFound)

	req := authedRequest(http.MethodGet, "/api/documents/"+docID.String()+"/url", nil, userID)
	req = withURLParam(req, "id", docID.String())
	rec := httptest.NewRecorder()

	h := NewDocument(svc, testutil.MakeNoopLogger())
	h.ViewURL(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocument_ViewURL_InvalidID(t *testing.T) {
	userID := uuid.New()
	svc := &MockDocumentService{}

	req := authedRequest(http.MethodGet, "/api/documents/abc/url", nil, userID)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h := NewDocument(svc, testutil.MakeNoopLogger())
	h.ViewURL(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ViewURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocument_Delete(t *testing.T) {
	userID := uuid.New()
	docID := uuid.New()
	svc := &MockDocumentService{}

	svc.On("Delete", mock.Anything, userID, docID).Return(nil)

	req := authedRequest(http.MethodDelete, "/api/documents/"+docID.String(), nil, userID)
	req = withURLParam(req, "id", docID.String())
	rec := httptest.NewRecorder()

	h := NewDocument(svc, testutil.MakeNoopLogger())
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}
