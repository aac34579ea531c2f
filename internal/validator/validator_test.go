package validator

import (
	"testing"
	"time"

	"github.com/InnoTrack-2025/research-service/internal/models"
)

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return parsed
}

func validRegisterRequest(role models.UserRole) RegisterRequest {
	req := RegisterRequest{
		Name:     "Asha Rao",
		Email:    "asha@iitd.ac.in",
		Password: "s3cret-pass",
		Role:     role,
	}
	switch role {
	case models.RoleStudent:
		req.CollegeID = "IITD"
		req.CollegeName = "IIT Delhi"
		req.Branch = "Computer Science"
		req.RollNumber = "2021CS10234"
	case models.RoleFaculty:
		req.CollegeID = "IITD"
		req.CollegeName = "IIT Delhi"
		req.Branch = "Computer Science"
	case models.RoleCollege:
		req.CollegeID = "IITD"
		req.CollegeName = "IIT Delhi"
	}
	return req
}

func hasFieldError(errs ValidationErrors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestRegisterRequestValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		mutate     func(*RegisterRequest)
		role       models.UserRole
		wantFields []string
	}{
		{name: "valid student", role: models.RoleStudent},
		{name: "valid faculty", role: models.RoleFaculty},
		{name: "valid college", role: models.RoleCollege},
		{name: "valid government without college", role: models.RoleGovernment},
		{
			name:       "student missing roll number",
			role:       models.RoleStudent,
			mutate:     func(r *RegisterRequest) { r.RollNumber = "" },
			wantFields: []string{"RollNumber"},
		},
		{
			name:       "faculty missing branch",
			role:       models.RoleFaculty,
			mutate:     func(r *RegisterRequest) { r.Branch = "" },
			wantFields: []string{"Branch"},
		},
		{
			name:       "college account missing college id",
			role:       models.RoleCollege,
			mutate:     func(r *RegisterRequest) { r.CollegeID = "" },
			wantFields: []string{"CollegeID"},
		},
		{
			name:       "bad email",
			role:       models.RoleGovernment,
			mutate:     func(r *RegisterRequest) { r.Email = "not-an-email" },
			wantFields: []string{"Email"},
		},
		{
			name:       "short password",
			role:       models.RoleGovernment,
			mutate:     func(r *RegisterRequest) { r.Password = "abc" },
			wantFields: []string{"Password"},
		},
		{
			name:       "unknown role",
			role:       models.UserRole("admin"),
			wantFields: []string{"Role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest(tt.role)
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			errs := v.Validate(req)
			if len(tt.wantFields) == 0 {
				if errs != nil {
					t.Fatalf("Validate() = %v, want nil", errs)
				}
				return
			}
			if errs == nil {
				t.Fatalf("Validate() = nil, want errors on %v", tt.wantFields)
			}
			for _, field := range tt.wantFields {
				if !hasFieldError(errs, field) {
					t.Errorf("missing error for field %s in %v", field, errs)
				}
			}
		})
	}
}

func TestLoginRequestValidation(t *testing.T) {
	v := New()

	errs := v.Validate(LoginRequest{Email: "asha@iitd.ac.in", Password: "pw", Role: models.RoleStudent})
	if errs != nil {
		t.Fatalf("Validate() = %v, want nil", errs)
	}

	errs = v.Validate(LoginRequest{Email: "asha@iitd.ac.in", Password: "pw", Role: "superuser"})
	if !hasFieldError(errs, "Role") {
		t.Errorf("expected Role error, got %v", errs)
	}
}

func TestGrantCreateRequestStatusValues(t *testing.T) {
	v := New()

	base := GrantCreateRequest{
		Title:           "AI for Crop Yield",
		Grantor:         "DST",
		Amount:          1_500_000,
		ApplicationDate: models.NewDate(mustParseDate(t, "2024-01-10")),
		Department:      "Computer Science",
		LeadResearcher:  "Dr. Asha Rao",
	}

	// Multi-word status values must survive the oneof rule.
	for _, status := range []models.GrantStatus{"", "Applied", "In Progress", "Approved", "Rejected"} {
		req := base
		req.Status = status
		if errs := v.Validate(req); errs != nil {
			t.Errorf("Validate(status=%q) = %v, want nil", status, errs)
		}
	}

	req := base
	req.Status = "Pending"
	if errs := v.Validate(req); !hasFieldError(errs, "Status") {
		t.Errorf("expected Status error, got %v", errs)
	}
}

func TestPublicationCreateRequestRequiredFields(t *testing.T) {
	v := New()

	errs := v.Validate(PublicationCreateRequest{})
	for _, field := range []string{"Title", "Authors", "Journal", "PublicationDate", "Department"} {
		if !hasFieldError(errs, field) {
			t.Errorf("missing error for field %s in %v", field, errs)
		}
	}

	errs = v.Validate(PublicationCreateRequest{
		Title:           "Graph Neural Networks for Traffic",
		Authors:         []string{"Asha Rao", "Vikram Iyer"},
		Journal:         "IEEE TITS",
		PublicationDate: models.NewDate(mustParseDate(t, "2024-03-15")),
		Department:      "Computer Science",
	})
	if errs != nil {
		t.Errorf("Validate() = %v, want nil", errs)
	}
}
