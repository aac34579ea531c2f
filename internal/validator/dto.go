package validator

import (
	"github.com/InnoTrack-2025/research-service/internal/models"
)

// ===== AUTH =====

// RegisterRequest carries the registration payload. Role-conditional
// requirements (college, branch, roll number) are enforced by the
// struct-level rule in rules.go.
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,min=6,max=72"`
	Role     models.UserRole `json:"role" validate:"required,oneof=student faculty college government"`

	CollegeID   string `json:"collegeId"`
	CollegeName string `json:"collegeName"`
	Branch      string `json:"branch"`
	RollNumber  string `json:"rollNumber"`

	Department string `json:"department" validate:"omitempty,max=100"`
	Contact    string `json:"contact" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"required,oneof=student faculty college government"`
}

// ===== PROFILE =====

// UpdateProfileRequest covers the editable profile surface. Email and
// role are immutable and deliberately absent.
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Department  *string `json:"department" validate:"omitempty,max=100"`
	Designation *string `json:"designation" validate:"omitempty,max=100"`
	Contact     *string `json:"contact" validate:"omitempty,max=30"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
}

// ===== COLLEGES =====

type CreateCollegeRequest struct {
	CollegeID string `json:"collegeId" validate:"required,max=50"`
	Name      string `json:"name" validate:"required,max=200"`
	City      string `json:"city" validate:"omitempty,max=100"`
	State     string `json:"state" validate:"omitempty,max=100"`
}

// ===== PUBLICATIONS =====

type PublicationCreateRequest struct {
	Title           string      `json:"title" validate:"required,max=300"`
	Authors         []string    `json:"authors" validate:"required,min=1,dive,required,max=200"`
	Journal         string      `json:"journal" validate:"required,max=300"`
	DOI             *string     `json:"doi" validate:"omitempty,max=100"`
	PublicationDate models.Date `json:"publicationDate" validate:"required"`
	ImpactFactor    float64     `json:"impactFactor" validate:"min=0"`
	Department      string      `json:"department" validate:"required,max=100"`
}

type PublicationUpdateRequest struct {
	Title           *string      `json:"title" validate:"omitempty,max=300"`
	Authors         []string     `json:"authors" validate:"omitempty,min=1,dive,required,max=200"`
	Journal         *string      `json:"journal" validate:"omitempty,max=300"`
	DOI             *string      `json:"doi" validate:"omitempty,max=100"`
	PublicationDate *models.Date `json:"publicationDate"`
	ImpactFactor    *float64     `json:"impactFactor" validate:"omitempty,min=0"`
	Department      *string      `json:"department" validate:"omitempty,max=100"`
}

// ===== PATENTS =====

type PatentCreateRequest struct {
	Title              string              `json:"title" validate:"required,max=300"`
	Inventors          []string            `json:"inventors" validate:"required,min=1,dive,required,max=200"`
	PatentNumber       *string             `json:"patentNumber" validate:"omitempty,max=100"`
	FilingDate         models.Date         `json:"filingDate" validate:"required"`
	Status             models.PatentStatus `json:"status" validate:"omitempty,oneof=Filed Pending Granted Rejected"`
	Department         string              `json:"department" validate:"required,max=100"`
	Description        string              `json:"description" validate:"required"`
	RelatedPublication *uint               `json:"relatedPublication"`
}

type PatentUpdateRequest struct {
	Title              *string              `json:"title" validate:"omitempty,max=300"`
	Inventors          []string             `json:"inventors" validate:"omitempty,min=1,dive,required,max=200"`
	PatentNumber       *string              `json:"patentNumber" validate:"omitempty,max=100"`
	FilingDate         *models.Date         `json:"filingDate"`
	Status             *models.PatentStatus `json:"status" validate:"omitempty,oneof=Filed Pending Granted Rejected"`
	Department         *string              `json:"department" validate:"omitempty,max=100"`
	Description        *string              `json:"description" validate:"omitempty"`
	RelatedPublication *uint                `json:"relatedPublication"`
}

// ===== GRANTS =====

type GrantCreateRequest struct {
	Title           string              `json:"title" validate:"required,max=300"`
	Grantor         string              `json:"grantor" validate:"required,max=200"`
	Amount          float64             `json:"amount" validate:"required,min=0"`
	Status          models.GrantStatus  `json:"status" validate:"omitempty,oneof=Applied 'In Progress' Approved Rejected"`
	ApplicationDate models.Date         `json:"applicationDate" validate:"required"`
	ApprovalDate    models.OptionalDate `json:"approvalDate"`
	DueDate         models.OptionalDate `json:"dueDate"`
	Department      string              `json:"department" validate:"required,max=100"`
	LeadResearcher  string              `json:"leadResearcher" validate:"required,max=100"`
}

type GrantUpdateRequest struct {
	Title           *string             `json:"title" validate:"omitempty,max=300"`
	Grantor         *string             `json:"grantor" validate:"omitempty,max=200"`
	Amount          *float64            `json:"amount" validate:"omitempty,min=0"`
	Status          *models.GrantStatus `json:"status" validate:"omitempty,oneof=Applied 'In Progress' Approved Rejected"`
	ApplicationDate *models.Date        `json:"applicationDate"`
	ApprovalDate    models.OptionalDate `json:"approvalDate"`
	DueDate         models.OptionalDate `json:"dueDate"`
	Department      *string             `json:"department" validate:"omitempty,max=100"`
	LeadResearcher  *string             `json:"leadResearcher" validate:"omitempty,max=100"`
}

// ===== AWARDS =====

type AwardCreateRequest struct {
	Title        string           `json:"title" validate:"required,max=300"`
	Recipient    string           `json:"recipient" validate:"required,max=200"`
	AwardType    models.AwardType `json:"awardType" validate:"required,oneof=Research Innovation Teaching Service Other"`
	AwardingBody string           `json:"awardingBody" validate:"required,max=200"`
	DateReceived models.Date      `json:"dateReceived" validate:"required"`
	Description  string           `json:"description" validate:"required"`
	Department   string           `json:"department" validate:"required,max=100"`
}

type AwardUpdateRequest struct {
	Title        *string           `json:"title" validate:"omitempty,max=300"`
	Recipient    *string           `json:"recipient" validate:"omitempty,max=200"`
	AwardType    *models.AwardType `json:"awardType" validate:"omitempty,oneof=Research Innovation Teaching Service Other"`
	AwardingBody *string           `json:"awardingBody" validate:"omitempty,max=200"`
	DateReceived *models.Date      `json:"dateReceived"`
	Description  *string           `json:"description" validate:"omitempty"`
	Department   *string           `json:"department" validate:"omitempty,max=100"`
}

// ===== STARTUPS =====

type StartupCreateRequest struct {
	Name        string               `json:"name" validate:"required,max=200"`
	Founders    []string             `json:"founders" validate:"required,min=1,dive,required,max=200"`
	Description string               `json:"description" validate:"required"`
	Industry    string               `json:"industry" validate:"required,max=100"`
	Stage       models.StartupStage  `json:"stage" validate:"omitempty,oneof=Idea MVP 'Early Stage' Growth Established"`
	Funding     float64              `json:"funding" validate:"min=0"`
	LaunchDate  models.OptionalDate  `json:"launchDate"`
	Department  string               `json:"department" validate:"required,max=100"`
	Status      models.StartupStatus `json:"status" validate:"omitempty,oneof=Active Inactive Acquired Closed"`
}

type StartupUpdateRequest struct {
	Name        *string               `json:"name" validate:"omitempty,max=200"`
	Founders    []string              `json:"founders" validate:"omitempty,min=1,dive,required,max=200"`
	Description *string               `json:"description" validate:"omitempty"`
	Industry    *string               `json:"industry" validate:"omitempty,max=100"`
	Stage       *models.StartupStage  `json:"stage" validate:"omitempty,oneof=Idea MVP 'Early Stage' Growth Established"`
	Funding     *float64              `json:"funding" validate:"omitempty,min=0"`
	LaunchDate  models.OptionalDate   `json:"launchDate"`
	Department  *string               `json:"department" validate:"omitempty,max=100"`
	Status      *models.StartupStatus `json:"status" validate:"omitempty,oneof=Active Inactive Acquired Closed"`
}

// ===== INNOVATION PROJECTS =====

type InnovationProjectCreateRequest struct {
	Title       string               `json:"title" validate:"required,max=300"`
	Description string               `json:"description" validate:"required"`
	Team        []string             `json:"team" validate:"required,min=1,dive,required,max=200"`
	Department  string               `json:"department" validate:"required,max=100"`
	Status      models.ProjectStatus `json:"status" validate:"omitempty,oneof=Planning 'In Progress' Completed 'On Hold'"`
	StartDate   models.Date          `json:"startDate" validate:"required"`
	EndDate     models.OptionalDate  `json:"endDate"`
	Budget      float64              `json:"budget" validate:"min=0"`
	Impact      string               `json:"impact" validate:"required"`
	Outcomes    []string             `json:"outcomes" validate:"omitempty,dive,required,max=500"`
}

type InnovationProjectUpdateRequest struct {
	Title       *string               `json:"title" validate:"omitempty,max=300"`
	Description *string               `json:"description" validate:"omitempty"`
	Team        []string              `json:"team" validate:"omitempty,min=1,dive,required,max=200"`
	Department  *string               `json:"department" validate:"omitempty,max=100"`
	Status      *models.ProjectStatus `json:"status" validate:"omitempty,oneof=Planning 'In Progress' Completed 'On Hold'"`
	StartDate   *models.Date          `json:"startDate"`
	EndDate     models.OptionalDate   `json:"endDate"`
	Budget      *float64              `json:"budget" validate:"omitempty,min=0"`
	Impact      *string               `json:"impact" validate:"omitempty"`
	Outcomes    []string              `json:"outcomes" validate:"omitempty,dive,required,max=500"`
}
