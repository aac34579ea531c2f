package handlers

import (
	"github.com/InnoTrack-2025/research-service/internal/models"
	"github.com/InnoTrack-2025/research-service/internal/services"
	"github.com/InnoTrack-2025/research-service/internal/utils"
	"github.com/InnoTrack-2025/research-service/internal/validator"
)

// Per-resource handler constructors. Each binds the generic handler to
// its DTO pair through a fromCreate and an applyUpdate adapter; defaults
// that the database also knows are applied here so responses carry them
// before the first reload.

type PublicationHandler = ResourceHandler[*models.Publication, validator.PublicationCreateRequest, validator.PublicationUpdateRequest]

func NewPublicationHandler(service services.ResourceService[*models.Publication], v *validator.Validator, logger utils.Logger) *PublicationHandler {
	return NewResourceHandler("publication", service, v, logger,
		func(req *validator.PublicationCreateRequest, user *models.User) *models.Publication {
			return &models.Publication{
				Title:           req.Title,
				Authors:         models.StringList(req.Authors),
				Journal:         req.Journal,
				DOI:             req.DOI,
				PublicationDate: req.PublicationDate.Time,
				ImpactFactor:    req.ImpactFactor,
				Department:      req.Department,
			}
		},
		func(req *validator.PublicationUpdateRequest) func(*models.Publication) error {
			return func(p *models.Publication) error {
				if req.Title != nil {
					p.Title = *req.Title
				}
				if req.Authors != nil {
					p.Authors = models.StringList(req.Authors)
				}
				if req.Journal != nil {
					p.Journal = *req.Journal
				}
				if req.DOI != nil {
					p.DOI = req.DOI
				}
				if req.PublicationDate != nil {
					p.PublicationDate = req.PublicationDate.Time
				}
				if req.ImpactFactor != nil {
					p.ImpactFactor = *req.ImpactFactor
				}
				if req.Department != nil {
					p.Department = *req.Department
				}
				return nil
			}
		})
}

type PatentHandler = ResourceHandler[*models.Patent, validator.PatentCreateRequest, validator.PatentUpdateRequest]

func NewPatentHandler(service services.ResourceService[*models.Patent], v *validator.Validator, logger utils.Logger) *PatentHandler {
	return NewResourceHandler("patent", service, v, logger,
		func(req *validator.PatentCreateRequest, user *models.User) *models.Patent {
			status := req.Status
			if status == "" {
				status = models.PatentFiled
			}
			return &models.Patent{
				Title:                req.Title,
				Inventors:            models.StringList(req.Inventors),
				PatentNumber:         req.PatentNumber,
				FilingDate:           req.FilingDate.Time,
				Status:               status,
				Department:           req.Department,
				Description:          req.Description,
				RelatedPublicationID: req.RelatedPublication,
			}
		},
		func(req *validator.PatentUpdateRequest) func(*models.Patent) error {
			return func(p *models.Patent) error {
				if req.Title != nil {
					p.Title = *req.Title
				}
				if req.Inventors != nil {
					p.Inventors = models.StringList(req.Inventors)
				}
				if req.PatentNumber != nil {
					p.PatentNumber = req.PatentNumber
				}
				if req.FilingDate != nil {
					p.FilingDate = req.FilingDate.Time
				}
				if req.Status != nil {
					p.Status = *req.Status
				}
				if req.Department != nil {
					p.Department = *req.Department
				}
				if req.Description != nil {
					p.Description = *req.Description
				}
				if req.RelatedPublication != nil {
					p.RelatedPublicationID = req.RelatedPublication
				}
				return nil
			}
		})
}

type GrantHandler = ResourceHandler[*models.Grant, validator.GrantCreateRequest, validator.GrantUpdateRequest]

func NewGrantHandler(service services.ResourceService[*models.Grant], v *validator.Validator, logger utils.Logger) *GrantHandler {
	return NewResourceHandler("grant", service, v, logger,
		func(req *validator.GrantCreateRequest, user *models.User) *models.Grant {
			status := req.Status
			if status == "" {
				status = models.GrantApplied
			}
			return &models.Grant{
				Title:           req.Title,
				Grantor:         req.Grantor,
				Amount:          req.Amount,
				Status:          status,
				ApplicationDate: req.ApplicationDate.Time,
				ApprovalDate:    req.ApprovalDate.TimePtr(),
				DueDate:         req.DueDate.TimePtr(),
				Department:      req.Department,
				LeadResearcher:  req.LeadResearcher,
			}
		},
		func(req *validator.GrantUpdateRequest) func(*models.Grant) error {
			return func(g *models.Grant) error {
				if req.Title != nil {
					g.Title = *req.Title
				}
				if req.Grantor != nil {
					g.Grantor = *req.Grantor
				}
				if req.Amount != nil {
					g.Amount = *req.Amount
				}
				if req.Status != nil {
					g.Status = *req.Status
				}
				if req.ApplicationDate != nil {
					g.ApplicationDate = req.ApplicationDate.Time
				}
				req.ApprovalDate.Apply(&g.ApprovalDate)
				req.DueDate.Apply(&g.DueDate)
				if req.Department != nil {
					g.Department = *req.Department
				}
				if req.LeadResearcher != nil {
					g.LeadResearcher = *req.LeadResearcher
				}
				return nil
			}
		})
}

type AwardHandler = ResourceHandler[*models.Award, validator.AwardCreateRequest, validator.AwardUpdateRequest]

func NewAwardHandler(service services.ResourceService[*models.Award], v *validator.Validator, logger utils.Logger) *AwardHandler {
	return NewResourceHandler("award", service, v, logger,
		func(req *validator.AwardCreateRequest, user *models.User) *models.Award {
			return &models.Award{
				Title:        req.Title,
				Recipient:    req.Recipient,
				AwardType:    req.AwardType,
				AwardingBody: req.AwardingBody,
				DateReceived: req.DateReceived.Time,
				Description:  req.Description,
				Department:   req.Department,
			}
		},
		func(req *validator.AwardUpdateRequest) func(*models.Award) error {
			return func(a *models.Award) error {
				if req.Title != nil {
					a.Title = *req.Title
				}
				if req.Recipient != nil {
					a.Recipient = *req.Recipient
				}
				if req.AwardType != nil {
					a.AwardType = *req.AwardType
				}
				if req.AwardingBody != nil {
					a.AwardingBody = *req.AwardingBody
				}
				if req.DateReceived != nil {
					a.DateReceived = req.DateReceived.Time
				}
				if req.Description != nil {
					a.Description = *req.Description
				}
				if req.Department != nil {
					a.Department = *req.Department
				}
				return nil
			}
		})
}

type StartupHandler = ResourceHandler[*models.Startup, validator.StartupCreateRequest, validator.StartupUpdateRequest]

func NewStartupHandler(service services.ResourceService[*models.Startup], v *validator.Validator, logger utils.Logger) *StartupHandler {
	return NewResourceHandler("startup", service, v, logger,
		func(req *validator.StartupCreateRequest, user *models.User) *models.Startup {
			stage := req.Stage
			if stage == "" {
				stage = models.StageIdea
			}
			status := req.Status
			if status == "" {
				status = models.StartupActive
			}
			return &models.Startup{
				Name:        req.Name,
				Founders:    models.StringList(req.Founders),
				Description: req.Description,
				Industry:    req.Industry,
				Stage:       stage,
				Funding:     req.Funding,
				LaunchDate:  req.LaunchDate.TimePtr(),
				Department:  req.Department,
				Status:      status,
			}
		},
		func(req *validator.StartupUpdateRequest) func(*models.Startup) error {
			return func(s *models.Startup) error {
				if req.Name != nil {
					s.Name = *req.Name
				}
				if req.Founders != nil {
					s.Founders = models.StringList(req.Founders)
				}
				if req.Description != nil {
					s.Description = *req.Description
				}
				if req.Industry != nil {
					s.Industry = *req.Industry
				}
				if req.Stage != nil {
					s.Stage = *req.Stage
				}
				if req.Funding != nil {
					s.Funding = *req.Funding
				}
				req.LaunchDate.Apply(&s.LaunchDate)
				if req.Department != nil {
					s.Department = *req.Department
				}
				if req.Status != nil {
					s.Status = *req.Status
				}
				return nil
			}
		})
}

type InnovationProjectHandler = ResourceHandler[*models.InnovationProject, validator.InnovationProjectCreateRequest, validator.InnovationProjectUpdateRequest]

func NewInnovationProjectHandler(service services.ResourceService[*models.InnovationProject], v *validator.Validator, logger utils.Logger) *InnovationProjectHandler {
	return NewResourceHandler("innovation project", service, v, logger,
		func(req *validator.InnovationProjectCreateRequest, user *models.User) *models.InnovationProject {
			status := req.Status
			if status == "" {
				status = models.ProjectPlanning
			}
			return &models.InnovationProject{
				Title:       req.Title,
				Description: req.Description,
				Team:        models.StringList(req.Team),
				Department:  req.Department,
				Status:      status,
				StartDate:   req.StartDate.Time,
				EndDate:     req.EndDate.TimePtr(),
				Budget:      req.Budget,
				Impact:      req.Impact,
				Outcomes:    models.StringList(req.Outcomes),
			}
		},
		func(req *validator.InnovationProjectUpdateRequest) func(*models.InnovationProject) error {
			return func(p *models.InnovationProject) error {
				if req.Title != nil {
					p.Title = *req.Title
				}
				if req.Description != nil {
					p.Description = *req.Description
				}
				if req.Team != nil {
					p.Team = models.StringList(req.Team)
				}
				if req.Department != nil {
					p.Department = *req.Department
				}
				if req.Status != nil {
					p.Status = *req.Status
				}
				if req.StartDate != nil {
					p.StartDate = req.StartDate.Time
				}
				req.EndDate.Apply(&p.EndDate)
				if req.Budget != nil {
					p.Budget = *req.Budget
				}
				if req.Impact != nil {
					p.Impact = *req.Impact
				}
				if req.Outcomes != nil {
					p.Outcomes = models.StringList(req.Outcomes)
				}
				return nil
			}
		})
}
