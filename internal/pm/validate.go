package pm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"plantmate/internal/model"
)

// SpaceInput carries the fields of a space creation request.
type SpaceInput struct {
	Name          string          `validate:"required"`
	Type          model.SpaceType `validate:"required,oneof=balcony windowsill terrace"`
	Direction     model.Direction `validate:"required,oneof=N NE E SE S SW W NW"`
	SunlightHours float64         `validate:"gte=0,lte=12"`
	AreaSqM       float64         `validate:"gt=0"`
	Notes         string
}

// SpacePatch carries optional updates to an existing space. Nil fields are
// left unchanged; set fields are validated with the same rules as creation.
type SpacePatch struct {
	Name          *string
	Type          *model.SpaceType
	Direction     *model.Direction
	SunlightHours *float64
	AreaSqM       *float64
	Notes         *string
}

// PlantInput carries the fields of an add-plant request. Referential checks
// against the space and catalog happen in the service, not here.
type PlantInput struct {
	UserID    string `validate:"required"`
	SpaceID   string `validate:"required"`
	PlantSlug string `validate:"required"`
	Nickname  string
}

var validate = validator.New()

// checkStruct runs struct tag validation and converts the first violation
// into a *ValidationError so callers get a stable, typed failure.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := verrs[0]
	return &ValidationError{
		Field:   strings.ToLower(fe.Field()),
		Message: tagMessage(fe),
	}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be > %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// checkPatch validates only the fields a patch actually sets.
func checkPatch(p SpacePatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if p.Type != nil {
		switch *p.Type {
		case model.SpaceBalcony, model.SpaceWindowsill, model.SpaceTerrace:
		default:
			return &ValidationError{Field: "type", Message: "must be one of: balcony windowsill terrace"}
		}
	}
	if p.Direction != nil && !model.ValidDirection(*p.Direction) {
		return &ValidationError{Field: "direction", Message: "must be one of: N NE E SE S SW W NW"}
	}
	if p.SunlightHours != nil && (*p.SunlightHours < 0 || *p.SunlightHours > 12) {
		return &ValidationError{Field: "sunlighthours", Message: "must be between 0 and 12"}
	}
	if p.AreaSqM != nil && *p.AreaSqM <= 0 {
		return &ValidationError{Field: "areasqm", Message: "must be > 0"}
	}
	return nil
}
