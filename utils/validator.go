package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manishkiranshopifystore-creator/Pumpai-backend/models"

	"github.com/go-playground/validator/v10"
)

// ErrMissingRequiredFields is returned when project_name or ticker is empty.
var ErrMissingRequiredFields = errors.New("project_name and ticker are required")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateGenerationRequest 验证生成请求
// Only presence of project_name and ticker is enforced; vibe and optional_note are
// defaulted later, never rejected.
func ValidateGenerationRequest(req *models.GenerationRequest) error {
	if req == nil {
		return ErrMissingRequiredFields
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return fmt.Errorf("%w (missing: %s)", ErrMissingRequiredFields, strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}
