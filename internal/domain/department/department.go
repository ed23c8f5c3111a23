package department

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/id"
)

var codeRegex = regexp.MustCompile(`^[A-Z][A-Z0-9_]{1,19}$`)

// Department is a unit of campus administration that issues are routed to.
type Department struct {
	id        string
	name      string
	code      string
	createdAt time.Time
}

// NewDepartment upper-cases the code; codes are unique across the campus.
func NewDepartment(name, code string, now time.Time) (*Department, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))

	if name == "" {
		return nil, errors.NewValidationError("department name is required")
	}
	if len(name) > 100 {
		return nil, errors.NewValidationError("department name exceeds maximum length of 100 characters")
	}
	if !codeRegex.MatchString(code) {
		return nil, errors.NewValidationError(
			"invalid department code",
			"2-20 characters: letters, digits and underscores, starting with a letter",
		)
	}

	return &Department{
		id:        id.NewDepartmentID(),
		name:      name,
		code:      code,
		createdAt: now,
	}, nil
}

func ReconstructDepartment(departmentID, name, code string, createdAt time.Time) (*Department, error) {
	if departmentID == "" {
		return nil, fmt.Errorf("department ID cannot be empty")
	}
	return &Department{id: departmentID, name: name, code: code, createdAt: createdAt}, nil
}

func (d *Department) ID() string           { return d.id }
func (d *Department) Name() string         { return d.name }
func (d *Department) Code() string         { return d.code }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
