package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Pranav7758/digital-setu-hub/internal/model"
)

// Checklist evaluates purpose-based document checklists ("what do I need
// for a passport") against a user's uploaded documents. The purpose catalog
// is static; matching is a keyword heuristic over document type and name.
type Checklist struct {
	documentStore model.DocumentStore
}

func NewChecklist(documentStore model.DocumentStore) *Checklist {
	return &Checklist{
		documentStore: documentStore,
	}
}

// Purposes returns the purpose catalog with all items in missing state.
func (s *Checklist) Purposes() []model.Purpose {
	return purposes
}

// Evaluate computes the checklist for one purpose against the user's
// documents. Unknown purposes return model.ErrNotFound.
func (s *Checklist) Evaluate(ctx context.Context, userID uuid.UUID, purposeID string) (model.Checklist, error) {
	var purpose *model.Purpose
	for i := range purposes {
		if purposes[i].ID == purposeID {
			purpose = &purposes[i]
			break
		}
	}
	if purpose == nil {
		return model.Checklist{}, model.ErrNotFound
	}

	documents, err := s.documentStore.GetByUserID(ctx, userID)
	if err != nil {
		return model.Checklist{}, fmt.Errorf("failed to get documents by user id: %w", err)
	}

	checklist := model.Checklist{
		Purpose: purpose.ID,
		Name:    purpose.Name,
		Items:   make([]model.ChecklistItem, 0, len(purpose.Requirements)),
		Total:   len(purpose.Requirements),
	}

	for _, req := range purpose.Requirements {
		item := req
		if hasMatchingDocument(documents, req) {
			item.Status = model.ChecklistCompleted
			checklist.Completed++
		} else {
			item.Status = model.ChecklistMissing
		}
		checklist.Items = append(checklist.Items, item)
	}

	return checklist, nil
}

// hasMatchingDocument reports whether any document satisfies the
// requirement: direct type containment either way, or a keyword match on
// the document's name or type.
func hasMatchingDocument(documents []model.Document, req model.ChecklistItem) bool {
	reqType := strings.ToLower(req.DocumentType)

	for _, doc := range documents {
		docType := strings.ToLower(doc.DocumentType)
		docName := strings.ToLower(doc.DocumentName)

		if strings.Contains(docType, reqType) || strings.Contains(reqType, docType) {
			return true
		}

		for _, keyword := range nameKeywords[reqType] {
			if strings.Contains(docName, keyword) || strings.Contains(docType, keyword) {
				return true
			}
		}
	}

	return false
}

// nameKeywords maps a requirement type to name fragments commonly used for
// documents of that kind.
var nameKeywords = map[string][]string{
	"aadhar":                 {"aadhar", "aadhaar", "uid"},
	"pan":                    {"pan", "pan card"},
	"birth_certificate":      {"birth", "certificate", "10th", "ssc"},
	"address_proof":          {"address", "utility", "bill", "bank statement", "rental"},
	"photo":                  {"photo", "photograph", "picture"},
	"signature":              {"signature", "sign"},
	"income_proof":           {"income", "salary", "itr", "tax"},
	"education_certificates": {"education", "degree", "certificate", "marksheet", "diploma"},
	"experience_letters":     {"experience", "employment", "job", "work"},
	"resume":                 {"resume", "cv", "curriculum vitae"},
	"age_proof":              {"birth", "10th", "pan", "age"},
	"medical_certificate":    {"medical", "fitness"},
}

var purposes = []model.Purpose{
	{
		ID:          "passport",
		Name:        "Passport Application",
		Description: "Documents required for Indian passport application",
		Requirements: []model.ChecklistItem{
			{ID: "aadhar", Name: "Aadhar Card", Description: "Valid Aadhar card with current address", Required: true, DocumentType: "aadhar"},
			{ID: "pan", Name: "PAN Card", Description: "Valid PAN card", Required: true, DocumentType: "pan"},
			{ID: "birth_certificate", Name: "Birth Certificate", Description: "Original birth certificate or 10th class certificate", Required: true, DocumentType: "birth_certificate"},
			{ID: "address_proof", Name: "Address Proof", Description: "Utility bill, bank statement, or rental agreement (not older than 3 months)", Required: true, DocumentType: "address_proof"},
			{ID: "photo", Name: "Passport Size Photo", Description: "Recent passport size photograph (35mm x 35mm)", Required: true, DocumentType: "photo"},
			{ID: "signature", Name: "Signature", Description: "Digital signature or scanned signature", Required: true, DocumentType: "signature"},
		},
	},
	{
		ID:          "bank_account",
		Name:        "Bank Account Opening",
		Description: "Documents required for opening a new bank account",
		Requirements: []model.ChecklistItem{
			{ID: "aadhar", Name: "Aadhar Card", Description: "Valid Aadhar card", Required: true, DocumentType: "aadhar"},
			{ID: "pan", Name: "PAN Card", Description: "Valid PAN card", Required: true, DocumentType: "pan"},
			{ID: "address_proof", Name: "Address Proof", Description: "Utility bill, bank statement, or rental agreement", Required: true, DocumentType: "address_proof"},
			{ID: "income_proof", Name: "Income Proof", Description: "Salary slip, ITR, or income certificate", Required: true, DocumentType: "income_proof"},
			{ID: "photo", Name: "Passport Size Photo", Description: "Recent passport size photograph", Required: true, DocumentType: "photo"},
		},
	},
	{
		ID:          "job_application",
		Name:        "Job Application",
		Description: "Documents required for job applications",
		Requirements: []model.ChecklistItem{
			{ID: "resume", Name: "Resume/CV", Description: "Updated resume with current information", Required: true, DocumentType: "resume"},
			{ID: "aadhar", Name: "Aadhar Card", Description: "Valid Aadhar card", Required: true, DocumentType: "aadhar"},
			{ID: "pan", Name: "PAN Card", Description: "Valid PAN card", Required: true, DocumentType: "pan"},
			{ID: "education_certificates", Name: "Education Certificates", Description: "Degree certificates, mark sheets", Required: true, DocumentType: "education_certificates"},
			{ID: "experience_letters", Name: "Experience Letters", Description: "Previous employment experience letters", Required: false, DocumentType: "experience_letters"},
			{ID: "photo", Name: "Passport Size Photo", Description: "Recent passport size photograph", Required: true, DocumentType: "photo"},
		},
	},
	{
		ID:          "driving_license",
		Name:        "Driving License",
		Description: "Documents required for driving license application",
		Requirements: []model.ChecklistItem{
			{ID: "aadhar", Name: "Aadhar Card", Description: "Valid Aadhar card", Required: true, DocumentType: "aadhar"},
			{ID: "age_proof", Name: "Age Proof", Description: "Birth certificate, 10th certificate, or PAN card", Required: true, DocumentType: "age_proof"},
			{ID: "address_proof", Name: "Address Proof", Description: "Utility bill or bank statement", Required: true, DocumentType: "address_proof"},
			{ID: "medical_certificate", Name: "Medical Certificate", Description: "Medical fitness certificate from authorized doctor", Required: true, DocumentType: "medical_certificate"},
		},
	},
	{
		ID:          "voter_id",
		Name:        "Voter ID Card",
		Description: "Documents required for voter ID application",
		Requirements: []model.ChecklistItem{
			{ID: "aadhar", Name: "Aadhar Card", Description: "Valid Aadhar card", Required: true, DocumentType: "aadhar"},
			{ID: "age_proof", Name: "Age Proof", Description: "Birth certificate or 10th certificate", Required: true, DocumentType: "age_proof"},
			{ID: "address_proof", Name: "Address Proof", Description: "Utility bill, bank statement, or rental agreement", Required: true, DocumentType: "address_proof"},
			{ID: "photo", Name: "Passport Size Photo", Description: "Recent passport size photograph", Required: true, DocumentType: "photo"},
		},
	},
}
