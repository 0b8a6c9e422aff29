package candidate

import (
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/validator"
)

type CreateCandidateRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Experience int    `json:"experience"`
	Position   string `json:"position"`
}

func (r *CreateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a 10-digit number"})
	}
	if r.Experience < 0 {
		errs = append(errs, validator.ValidationError{Field: "experience", Message: "experience must not be negative"})
	}
	if !validator.IsInSlice(r.Position, Positions()) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position must be Designer, Developer or Human Resource"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCandidateRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"fullName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Experience *int    `json:"experience,omitempty"`
	Position   *string `json:"position,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be valid"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a 10-digit number"})
	}
	if r.Experience != nil && *r.Experience < 0 {
		errs = append(errs, validator.ValidationError{Field: "experience", Message: "experience must not be negative"})
	}
	if r.Position != nil && !validator.IsInSlice(*r.Position, Positions()) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position must be Designer, Developer or Human Resource"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Pending, Shortlisted, Selected or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Pending, Shortlisted, Selected or Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UploadResumeRequest struct {
	ID       string `json:"-"`
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

func (r *UploadResumeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.FileName) {
		errs = append(errs, validator.ValidationError{Field: "fileName", Message: "fileName is required"})
	}
	if validator.IsEmpty(r.FileURL) {
		errs = append(errs, validator.ValidationError{Field: "fileUrl", Message: "fileUrl is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkDeleteRequest struct {
	CandidateIDs []string `json:"candidateIds"`
}

func (r *BulkDeleteRequest) Validate() error {
	if len(r.CandidateIDs) == 0 {
		return validator.ValidationErrors{{Field: "candidateIds", Message: "candidateIds must be a non-empty array"}}
	}
	return nil
}

type CandidateFilter struct {
	Position      *string
	Status        *string
	MinExperience *int
	Search        *string

	pagination.Params
}

func (f *CandidateFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Position != nil && !validator.IsInSlice(*f.Position, Positions()) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "unknown position"})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CandidateResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Experience int     `json:"experience"`
	Position   string  `json:"position"`
	Status     string  `json:"status"`
	Resume     *Resume `json:"resume,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func NewCandidateResponse(c Candidate) CandidateResponse {
	return CandidateResponse{
		ID:         c.ID,
		FullName:   c.FullName,
		Email:      c.Email,
		Phone:      c.Phone,
		Experience: c.Experience,
		Position:   string(c.Position),
		Status:     string(c.Status),
		Resume:     c.Resume,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}

type ListCandidatesResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Meta       pagination.Meta     `json:"-"`
}

// StatusUpdateResult is the composite outcome of a status update. When the
// Selected transition triggers a conversion, Employee carries the converted
// record and ConversionWarning is set if the conversion failed without
// blocking the status update itself.
type StatusUpdateResult struct {
	Candidate         CandidateResponse `json:"candidate"`
	Employee          interface{}       `json:"employee,omitempty"`
	ConversionWarning string            `json:"-"`
}

type PositionCount struct {
	Position string `json:"position"`
	Count    int64  `json:"count"`
}

type ExperienceStats struct {
	AvgExperience float64 `json:"avgExperience"`
	MinExperience int     `json:"minExperience"`
	MaxExperience int     `json:"maxExperience"`
}

type StatsResponse struct {
	TotalCandidates  int64               `json:"totalCandidates"`
	PositionStats    []PositionCount     `json:"positionStats"`
	ExperienceStats  ExperienceStats     `json:"experienceStats"`
	RecentCandidates []CandidateResponse `json:"recentCandidates"`
}
