package crypto

import (
	"unicode/utf8"

	"github.com/MKhiriev/team-vault/models"
)

// ScoreStrength estimates password strength. One point each for: length ≥ 8,
// length ≥ 12, length ≥ 16, a lowercase letter, an uppercase letter, a digit,
// anything else. The result is advisory only and never blocks a save.
func ScoreStrength(password string) models.Strength {
	score := 0

	n := utf8.RuneCountInString(password)
	for _, min := range []int{8, 12, 16} {
		if n >= min {
			score++
		}
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	for _, has := range []bool{lower, upper, digit, other} {
		if has {
			score++
		}
	}

	switch {
	case score <= 2:
		return models.Strength{Level: models.StrengthWeak, Score: score, Label: "Weak"}
	case score <= 4:
		return models.Strength{Level: models.StrengthMedium, Score: score, Label: "Medium"}
	case score == 5:
		return models.Strength{Level: models.StrengthStrong, Score: score, Label: "Strong"}
	default:
		return models.Strength{Level: models.StrengthVeryStrong, Score: score, Label: "Very Strong"}
	}
}
