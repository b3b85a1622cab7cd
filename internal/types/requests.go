package types

import (
	"github.com/go-playground/validator/v10"
)

// UploadFileRequest describes a resume file submitted for ingestion.
// The content itself is never parsed (ingestion is mocked); only the
// metadata is validated.
type UploadFileRequest struct {
	Filename    string `json:"filename" validate:"required,min=1"`
	ContentType string `json:"content_type" validate:"required"`
	SizeBytes   int64  `json:"size_bytes" validate:"required,gt=0"`
}

// LinkedInRequest submits a LinkedIn profile URL for ingestion
type LinkedInRequest struct {
	URL string `json:"url" validate:"required,min=1"`
}

// RawTextRequest submits pasted free text for ingestion
type RawTextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// ToggleCareerRequest toggles one career in the wizard's interest list
type ToggleCareerRequest struct {
	Career string `json:"career" validate:"required,min=1"`
}

// ChooseOptionRequest selects the option for the current wizard step
type ChooseOptionRequest struct {
	OptionID string `json:"option_id" validate:"required,min=1"`
}

// SetHoursRequest sets the weekly learning commitment
type SetHoursRequest struct {
	Hours int `json:"hours" validate:"required,min=1,max=40"`
}

// SelectCareerRequest commits the user to one recommended career
type SelectCareerRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}

// SubmitAnswerRequest submits an answer for the active interview question
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required,min=1"`
}

// AddStudySessionRequest schedules a new study session
type AddStudySessionRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string   `json:"end_time" validate:"required,datetime=15:04"`
	Type        string   `json:"type,omitempty" validate:"omitempty,oneof=focused practice review project"`
	Priority    string   `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	Recurring   string   `json:"recurring,omitempty" validate:"omitempty,oneof=none daily weekly weekdays"`
	Skills      []string `json:"skills,omitempty"`
	Reminders   bool     `json:"reminders,omitempty"`
}

// NavigateRequest asks the state machine to move to a named screen
type NavigateRequest struct {
	To string `json:"to" validate:"required,min=1"`
}

// Validate validates the UploadFileRequest using the validator.
func (r *UploadFileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LinkedInRequest using the validator.
func (r *LinkedInRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RawTextRequest using the validator.
func (r *RawTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ToggleCareerRequest using the validator.
func (r *ToggleCareerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChooseOptionRequest using the validator.
func (r *ChooseOptionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SetHoursRequest using the validator.
func (r *SetHoursRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SelectCareerRequest using the validator.
func (r *SelectCareerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SubmitAnswerRequest using the validator.
func (r *SubmitAnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AddStudySessionRequest using the validator.
func (r *AddStudySessionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the NavigateRequest using the validator.
func (r *NavigateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
