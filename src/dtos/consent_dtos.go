package dtos

import (
	"strings"

	"github.com/samber/lo"

	"github.com/kedeea/kedeea-consent-api/src/models"
)

// ConsentRequest is the body of POST /api/consent.
// AccessCode is a pointer so a missing code is a validation error while an empty one is a 403.
type ConsentRequest struct {
	AccessCode *string `json:"access_code" binding:"required"`

	FirstName      string  `json:"first_name" binding:"required,notblank"`
	LastName       string  `json:"last_name" binding:"required,notblank"`
	GuardianName   *string `json:"guardian_name"`
	AddressLine    *string `json:"address_line"`
	City           *string `json:"city"`
	PostalCode     *string `json:"postal_code"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Sex            *string `json:"sex"`
	Age            *int    `json:"age"`
	MedicalHistory *string `json:"medical_history"`

	Physio       bool `json:"physio"`
	Ergo         bool `json:"ergo"`
	Logo         bool `json:"logo"`
	Diet         bool `json:"diet"`
	GaitAnalysis bool `json:"gait_analysis"`
	Counseling   bool `json:"counseling"`

	VideoCapture          bool `json:"video_capture"`
	DataProcessing        bool `json:"data_processing"`
	DataTransferOutsideEU bool `json:"data_transfer_outside_eu"`
	BiomedicalCapture     bool `json:"biomedical_capture"`

	SignedAt *models.Date `json:"signed_at"`
}

// ConsentResponse is returned once both rows are stored.
type ConsentResponse struct {
	Status        string `json:"status"`
	ParticipantID string `json:"participant_id"`
}

// ErrorResponse carries a single message, as used by 403 and 500 replies.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorItem describes one rejected field of a 422 reply.
type ValidationErrorItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is the 422 body.
type ValidationErrorResponse struct {
	Detail []ValidationErrorItem `json:"detail"`
}

// Code returns the submitted access code, or "" when absent.
func (r *ConsentRequest) Code() string {
	return lo.FromPtr(r.AccessCode)
}

// ToModels converts the request into the rows to insert.
// Names are trimmed and signed_at falls back to today's date.
func (r *ConsentRequest) ToModels(today models.Date) (*models.ParticipantModel, *models.ConsentModel) {
	participant := &models.ParticipantModel{
		FirstName:      strings.TrimSpace(r.FirstName),
		LastName:       strings.TrimSpace(r.LastName),
		GuardianName:   r.GuardianName,
		AddressLine:    r.AddressLine,
		City:           r.City,
		PostalCode:     r.PostalCode,
		Phone:          r.Phone,
		Email:          r.Email,
		Sex:            r.Sex,
		Age:            r.Age,
		MedicalHistory: r.MedicalHistory,
	}

	consent := &models.ConsentModel{
		Physio:                r.Physio,
		Ergo:                  r.Ergo,
		Logo:                  r.Logo,
		Diet:                  r.Diet,
		GaitAnalysis:          r.GaitAnalysis,
		Counseling:            r.Counseling,
		VideoCapture:          r.VideoCapture,
		DataProcessing:        r.DataProcessing,
		DataTransferOutsideEU: r.DataTransferOutsideEU,
		BiomedicalCapture:     r.BiomedicalCapture,
		SignedAt:              lo.FromPtrOr(r.SignedAt, today),
	}

	return participant, consent
}
