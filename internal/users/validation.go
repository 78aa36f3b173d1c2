package users

import (
	"fmt"
	"strings"

	"github.com/2beens/fitcoach/pkg"
)

const minPasswordLength = 6

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail accepts one '@' with a non-empty local part and a dotted domain.
func validEmail(email string) bool {
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(email, " \t\n")
}

func validateCredentials(email, name, password string) error {
	if !validEmail(email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func validateProfile(p Profile) error {
	if p.HeightCm < 0 || p.HeightCm > 300 {
		return fmt.Errorf("%w: height %.1f", ErrInvalidProfile, p.HeightCm)
	}
	if p.WeightKg < 0 || p.WeightKg > 500 {
		return fmt.Errorf("%w: weight %.1f", ErrInvalidProfile, p.WeightKg)
	}
	switch p.ExperienceLevel {
	case ExperienceNone, ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
	default:
		return fmt.Errorf("%w: experience level %q", ErrInvalidProfile, p.ExperienceLevel)
	}
	if p.BirthDate != "" {
		if _, err := pkg.ParseDate(p.BirthDate); err != nil {
			return fmt.Errorf("%w: birth date: %s", ErrInvalidProfile, err)
		}
	}
	return nil
}
