package model

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintCategory is the closed set of maintenance areas.
type ComplaintCategory string

const (
	CategoryElectrical  ComplaintCategory = "Electrical"
	CategoryPlumbing    ComplaintCategory = "Plumbing"
	CategoryCleanliness ComplaintCategory = "Cleanliness"
	CategoryOther       ComplaintCategory = "Other"
)

// Valid reports whether c is one of the known categories.
func (c ComplaintCategory) Valid() bool {
	switch c {
	case CategoryElectrical, CategoryPlumbing, CategoryCleanliness, CategoryOther:
		return true
	}
	return false
}

// ComplaintStatus tracks a complaint through Submitted → In Progress → Resolved.
type ComplaintStatus string

const (
	StatusSubmitted  ComplaintStatus = "Submitted"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// Valid reports whether s is a known status.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// StaffSettable reports whether assigned staff may move a complaint into s.
func (s ComplaintStatus) StaffSettable() bool {
	return s == StatusInProgress || s == StatusResolved
}

var suggestedStaffRoles = map[ComplaintCategory]string{
	CategoryElectrical:  "Electrician",
	CategoryPlumbing:    "Plumber",
	CategoryCleanliness: "Cleaner",
}

// SuggestedStaffRole returns the staff specialty usually sent for a category.
// Other has no suggestion. This is a filtering hint only; assignment accepts
// any staff member.
func SuggestedStaffRole(c ComplaintCategory) (string, bool) {
	role, ok := suggestedStaffRoles[c]
	return role, ok
}

// Image is the photo attached to a complaint. Data is emitted as base64 in JSON.
type Image struct {
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// StudentSummary is the owning student joined into complaint listings.
type StudentSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	RollNumber string    `json:"roll_number"`
}

// StaffSummary is the assigned staff member joined into complaint listings.
type StaffSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

// Complaint is a maintenance request filed by a student.
type Complaint struct {
	ID              uuid.UUID         `json:"id"`
	StudentID       uuid.UUID         `json:"student_id"`
	Category        ComplaintCategory `json:"category"`
	Description     string            `json:"description"`
	Image           Image             `json:"image"`
	Status          ComplaintStatus   `json:"status"`
	AssignedStaffID *uuid.UUID        `json:"assigned_staff_id"`
	Remarks         string            `json:"remarks"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	Student       *StudentSummary `json:"student,omitempty"`
	AssignedStaff *StaffSummary   `json:"assigned_staff,omitempty"`
}

// IsAssignedTo reports whether staffID currently owns the complaint.
func (c *Complaint) IsAssignedTo(staffID uuid.UUID) bool {
	return c.AssignedStaffID != nil && *c.AssignedStaffID == staffID
}

// ComplaintStats feeds the admin dashboard. Pending counts everything not
// Resolved, including In Progress.
type ComplaintStats struct {
	Total    int `json:"total"`
	Resolved int `json:"resolved"`
	Pending  int `json:"pending"`
}

// SubmitComplaintForm is the multipart form for POST /api/complaints.
// The image part is read separately.
type SubmitComplaintForm struct {
	Category    ComplaintCategory `form:"category" binding:"required,complaint_category"`
	Description string            `form:"description" binding:"required,max=5000"`
}

// AssignComplaintRequest is the payload for PUT /api/admin/complaints/:id/assign.
type AssignComplaintRequest struct {
	StaffID string `json:"staff_id" binding:"required,uuid"`
}

// UpdateComplaintStatusRequest is the payload for PUT /api/staff/complaints/:id/status.
type UpdateComplaintStatusRequest struct {
	Status  ComplaintStatus `json:"status" binding:"required,complaint_status"`
	Remarks string          `json:"remarks" binding:"required_if=Status Resolved,max=2000"`
}
