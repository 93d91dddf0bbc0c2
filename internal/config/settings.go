package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/tartampluch/birthday-ics/internal/apperr"
)

// Settings holds the values resolved from flags and environment for one run.
type Settings struct {
	ProductID string
	InFile    string
	OutFile   string
	Mode      string
}

// Validate checks that every required value is present and the mode is known.
// Failures are classified as apperr.ErrConfig.
func (s *Settings) Validate() error {
	// Empty mode means the flag was never set and no default reached us.
	if s.Mode == "" {
		s.Mode = DefaultMode
	}
	err := validation.ValidateStruct(s,
		validation.Field(&s.ProductID, validation.Required.Error(FlagProductID+" is required")),
		validation.Field(&s.InFile, validation.Required.Error(FlagInFile+" is required")),
		validation.Field(&s.OutFile, validation.Required.Error(FlagOutFile+" is required")),
		validation.Field(&s.Mode, validation.In(ModeExpanding, ModeSimple).Error(ErrModeUnsupport)),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", apperr.ErrConfig, ErrConfigInvalid, err)
	}
	return nil
}
