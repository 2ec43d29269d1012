package user

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// CreateDiscordUserInput holds parameters for registering a Discord user.
type CreateDiscordUserInput struct {
	DiscordID       int64
	DiscordUsername string
	Personalisation *string
	ContactName     *string
	ContactEmail    *string
	Timezone        *string
}

// Validate checks all fields and collects all errors.
func (i CreateDiscordUserInput) Validate(v *validator.Validate) error {
	var errs []domain.FieldError

	if i.DiscordID <= 0 {
		errs = append(errs, domain.FieldError{Field: "discord_id", Message: "must be positive"})
	}

	name := strings.TrimSpace(i.DiscordUsername)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "discord_username", Message: "required"})
	} else if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "discord_username", Message: "too long"})
	}

	if i.ContactEmail != nil {
		if err := v.Var(strings.TrimSpace(*i.ContactEmail), "required,email,max=320"); err != nil {
			errs = append(errs, domain.FieldError{Field: "contact_email", Message: "invalid email"})
		}
	}

	if i.Timezone != nil {
		if *i.Timezone == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "cannot be empty"})
		} else if len(*i.Timezone) > 64 {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "too long"})
		} else if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "invalid IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
