package valueobjects

import "fmt"

type Category string

const (
	CategoryInfrastructure Category = "INFRASTRUCTURE"
	CategoryAcademics      Category = "ACADEMICS"
	CategoryHostel         Category = "HOSTEL"
	CategoryCanteen        Category = "CANTEEN"
	CategoryTransport      Category = "TRANSPORT"
	CategorySafety         Category = "SAFETY"
	CategoryAdministration Category = "ADMINISTRATION"
	CategoryOther          Category = "OTHER"
)

// AllCategories lists every category.
var AllCategories = []Category{
	CategoryInfrastructure,
	CategoryAcademics,
	CategoryHostel,
	CategoryCanteen,
	CategoryTransport,
	CategorySafety,
	CategoryAdministration,
	CategoryOther,
}

// categoryBaseDays is the nominal number of days an issue of the category
// should take to resolve at MEDIUM urgency.
var categoryBaseDays = map[Category]int{
	CategoryInfrastructure: 7,
	CategoryAcademics:      14,
	CategoryHostel:         5,
	CategoryCanteen:        3,
	CategoryTransport:      5,
	CategorySafety:         2,
	CategoryAdministration: 10,
	CategoryOther:          7,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := categoryBaseDays[c]
	return ok
}

// BaseDays returns the resolution budget in days for the category.
func (c Category) BaseDays() int {
	if days, ok := categoryBaseDays[c]; ok {
		return days
	}
	return categoryBaseDays[CategoryOther]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
