package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/InnoTrack-2025/research-service/internal/models"
)

// roleRequirements maps each role to the registration fields it must
// supply on top of the common ones. Government users are not tied to a
// college, so they carry no extra requirements.
var roleRequirements = map[models.UserRole][]string{
	models.RoleStudent:    {"CollegeID", "CollegeName", "Branch", "RollNumber"},
	models.RoleFaculty:    {"CollegeID", "CollegeName", "Branch"},
	models.RoleCollege:    {"CollegeID", "CollegeName"},
	models.RoleGovernment: {},
}

func registerRequestValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(RegisterRequest)

	required, known := roleRequirements[req.Role]
	if !known {
		// role itself is covered by the oneof tag
		return
	}

	fields := map[string]string{
		"CollegeID":   req.CollegeID,
		"CollegeName": req.CollegeName,
		"Branch":      req.Branch,
		"RollNumber":  req.RollNumber,
	}

	for _, name := range required {
		if fields[name] == "" {
			sl.ReportError(fields[name], name, name, "required_for_role", string(req.Role))
		}
	}
}
