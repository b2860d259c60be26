package generator

import (
	"fmt"
	"math"

	"github.com/MKhiriev/go-mempass/models"
)

const (
	guessesPerSecond = 1e9
	secondsPerYear   = 365 * 24 * 3600
	weeksPerYear     = 365.0 / 7
)

// EstimateStrength scores a password by brute-force cost alone: the size of
// the alphabet suggested by the classes it uses, raised to its length, at a
// fixed rate of 1e9 guesses per second. The score is advisory.
func EstimateStrength(password string) models.Strength {
	charset := 0
	var lower, upper, digit, other bool
	length := 0
	for _, r := range password {
		length++
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
	if lower {
		charset += 26
	}
	if upper {
		charset += 26
	}
	if digit {
		charset += 10
	}
	if other {
		charset += 20
	}
	if charset == 0 {
		return models.Strength{Score: 0, ReadableTime: "0"}
	}

	combinations := math.Pow(float64(charset), float64(length))
	years := combinations / guessesPerSecond / secondsPerYear

	var score float64
	switch {
	case years > 1e9:
		score = 100
	case years > 1000:
		score = 80
	case years > 1:
		score = 60
	default:
		score = math.Min(math.Log10(years+1)*20, 40)
	}

	return models.Strength{
		Score:        int(math.Round(score)),
		ReadableTime: readableCrackTime(years),
	}
}

func readableCrackTime(years float64) string {
	switch {
	case years > 1e9:
		return "longer than the age of the universe"
	case years > 1e6:
		return fmt.Sprintf("%.1fM years", years/1e6)
	case years > 1000:
		return fmt.Sprintf("%.1fk years", years/1000)
	case years > 1:
		return fmt.Sprintf("%.1f years", years)
	}

	if weeks := years * weeksPerYear; weeks >= 1 {
		return fmt.Sprintf("%.0f weeks", weeks)
	}
	if days := years * 365; days >= 1 {
		return fmt.Sprintf("%.0f days", days)
	}
	if hours := years * 365 * 24; hours >= 1 {
		return fmt.Sprintf("%.0f hours", hours)
	}
	return "less than an hour"
}
