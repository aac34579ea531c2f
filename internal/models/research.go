package models

import (
	"time"
)

// ===== PUBLICATION =====

type Publication struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Title           string     `json:"title" gorm:"not null;size:300"`
	Authors         StringList `json:"authors" gorm:"type:jsonb;not null"`
	Journal         string     `json:"journal" gorm:"not null;size:300"`
	DOI             *string    `json:"doi,omitempty" gorm:"uniqueIndex;size:100"`
	PublicationDate time.Time  `json:"publicationDate" gorm:"not null"`
	ImpactFactor    float64    `json:"impactFactor" gorm:"default:0"`
	Department      string     `json:"department" gorm:"not null;size:100"`

	CreatedBy uint  `json:"createdBy" gorm:"not null;index"`
	Creator   *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Publication) TableName() string { return "publications" }

func (p *Publication) GetID() uint      { return p.ID }
func (p *Publication) OwnerID() uint    { return p.CreatedBy }
func (p *Publication) SetOwner(id uint) { p.CreatedBy = id }

// ===== PATENT =====

type PatentStatus string

const (
	PatentFiled    PatentStatus = "Filed"
	PatentPending  PatentStatus = "Pending"
	PatentGranted  PatentStatus = "Granted"
	PatentRejected PatentStatus = "Rejected"
)

type Patent struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Title        string       `json:"title" gorm:"not null;size:300"`
	Inventors    StringList   `json:"inventors" gorm:"type:jsonb;not null"`
	PatentNumber *string      `json:"patentNumber,omitempty" gorm:"uniqueIndex;size:100"`
	FilingDate   time.Time    `json:"filingDate" gorm:"not null"`
	Status       PatentStatus `json:"status" gorm:"not null;size:20;default:Filed"`
	Department   string       `json:"department" gorm:"not null;size:100"`
	Description  string       `json:"description" gorm:"not null;type:text"`

	// Optional cross-reference to a publication describing the invention.
	RelatedPublicationID *uint        `json:"relatedPublicationId,omitempty"`
	RelatedPublication   *Publication `json:"relatedPublication,omitempty" gorm:"foreignKey:RelatedPublicationID"`

	CreatedBy uint  `json:"createdBy" gorm:"not null;index"`
	Creator   *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Patent) TableName() string { return "patents" }

func (p *Patent) GetID() uint      { return p.ID }
func (p *Patent) OwnerID() uint    { return p.CreatedBy }
func (p *Patent) SetOwner(id uint) { p.CreatedBy = id }

// ===== GRANT =====

type GrantStatus string

const (
	GrantApplied    GrantStatus = "Applied"
	GrantInProgress GrantStatus = "In Progress"
	GrantApproved   GrantStatus = "Approved"
	GrantRejected   GrantStatus = "Rejected"
)

type Grant struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	Title           string      `json:"title" gorm:"not null;size:300"`
	Grantor         string      `json:"grantor" gorm:"not null;size:200"`
	Amount          float64     `json:"amount" gorm:"not null"`
	Status          GrantStatus `json:"status" gorm:"not null;size:20;default:Applied"`
	ApplicationDate time.Time   `json:"applicationDate" gorm:"not null"`
	ApprovalDate    *time.Time  `json:"approvalDate,omitempty"`
	DueDate         *time.Time  `json:"dueDate,omitempty"`
	Department      string      `json:"department" gorm:"not null;size:100"`
	LeadResearcher  string      `json:"leadResearcher" gorm:"not null;size:100"`

	CreatedBy uint  `json:"createdBy" gorm:"not null;index"`
	Creator   *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Grant) TableName() string { return "grants" }

func (g *Grant) GetID() uint      { return g.ID }
func (g *Grant) OwnerID() uint    { return g.CreatedBy }
func (g *Grant) SetOwner(id uint) { g.CreatedBy = id }

// ===== AWARD =====

type AwardType string

const (
	AwardResearch   AwardType = "Research"
	AwardInnovation AwardType = "Innovation"
	AwardTeaching   AwardType = "Teaching"
	AwardService    AwardType = "Service"
	AwardOther      AwardType = "Other"
)

type Award struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null;size:300"`
	Recipient    string    `json:"recipient" gorm:"not null;size:200"`
	AwardType    AwardType `json:"awardType" gorm:"not null;size:20"`
	AwardingBody string    `json:"awardingBody" gorm:"not null;size:200"`
	DateReceived time.Time `json:"dateReceived" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null;type:text"`
	Department   string    `json:"department" gorm:"not null;size:100"`

	CreatedBy uint  `json:"createdBy" gorm:"not null;index"`
	Creator   *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Award) TableName() string { return "awards" }

func (a *Award) GetID() uint      { return a.ID }
func (a *Award) OwnerID() uint    { return a.CreatedBy }
func (a *Award) SetOwner(id uint) { a.CreatedBy = id }

// ===== STARTUP =====

type StartupStage string

const (
	StageIdea        StartupStage = "Idea"
	StageMVP         StartupStage = "MVP"
	StageEarly       StartupStage = "Early Stage"
	StageGrowth      StartupStage = "Growth"
	StageEstablished StartupStage = "Established"
)

type StartupStatus string

const (
	StartupActive   StartupStatus = "Active"
	StartupInactive StartupStatus = "Inactive"
	StartupAcquired StartupStatus = "Acquired"
	StartupClosed   StartupStatus = "Closed"
)

type Startup struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"not null;size:200"`
	Founders    StringList    `json:"founders" gorm:"type:jsonb;not null"`
	Description string        `json:"description" gorm:"not null;type:text"`
	Industry    string        `json:"industry" gorm:"not null;size:100"`
	Stage       StartupStage  `json:"stage" gorm:"not null;size:20;default:Idea"`
	Funding     float64       `json:"funding" gorm:"default:0"`
	LaunchDate  *time.Time    `json:"launchDate,omitempty"`
	Department  string        `json:"department" gorm:"not null;size:100"`
	Status      StartupStatus `json:"status" gorm:"not null;size:20;default:Active"`

	CreatedBy uint  `json:"createdBy" gorm:"not null;index"`
	Creator   *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Startup) TableName() string { return "startups" }

func (s *Startup) GetID() uint      { return s.ID }
func (s *Startup) OwnerID() uint    { return s.CreatedBy }
func (s *Startup) SetOwner(id uint) { s.CreatedBy = id }

// ===== INNOVATION PROJECT =====

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
	ProjectOnHold     ProjectStatus = "On Hold"
)

type InnovationProject struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title" gorm:"not null;size:300"`
	Description string        `json:"description" gorm:"not null;type:text"`
	Team        StringList    `json:"team" gorm:"type:jsonb;not null"`
	Department  string        `json:"department" gorm:"not null;size:100"`
	Status      ProjectStatus `json:"status" gorm:"not null;size:20;default:Planning"`
	StartDate   time.Time     `json:"startDate" gorm:"not null"`
	EndDate     *time.Time    `json:"endDate,omitempty"`
	Budget      float64       `json:"budget" gorm:"default:0"`
	Impact      string        `json:"impact" gorm:"not null;type:text"`
	Outcomes    StringList    `json:"outcomes" gorm:"type:jsonb"`

	CreatedBy uint  `json:"createdBy" gorm:"not null;index"`
	Creator   *User `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (InnovationProject) TableName() string { return "innovation_projects" }

func (p *InnovationProject) GetID() uint      { return p.ID }
func (p *InnovationProject) OwnerID() uint    { return p.CreatedBy }
func (p *InnovationProject) SetOwner(id uint) { p.CreatedBy = id }
