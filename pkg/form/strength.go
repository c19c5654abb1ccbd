package form

import "unicode"

// Tone classifies how a strength level should be presented.
type Tone string

const (
	ToneSecondary Tone = "secondary"
	ToneDanger    Tone = "danger"
	ToneWarning   Tone = "warning"
	ToneInfo      Tone = "info"
	ToneSuccess   Tone = "success"
)

// Strength is the password meter result: a 0..5 score, its label, a
// presentation tone, and what is still missing.
type Strength struct {
	Score   int
	Label   string
	Tone    Tone
	Missing []string
}

var strengthLevels = []struct {
	tone  Tone
	label string
}{
	{ToneDanger, "Very Weak"},
	{ToneWarning, "Weak"},
	{ToneInfo, "Fair"},
	{ToneSuccess, "Good"},
	{ToneSuccess, "Strong"},
	{ToneSuccess, "Very Strong"},
}

// CheckStrength scores a password against five checks: length of at least
// eight, lowercase, uppercase, digits, and special characters. Feedback is
// advisory and feeds the debounced strength meter, never a submit block.
func CheckStrength(password string) Strength {
	if password == "" {
		return Strength{Tone: ToneSecondary, Label: "Enter a password"}
	}

	score := 0
	var missing []string

	if len(password) >= 8 {
		score++
	} else {
		missing = append(missing, "at least 8 characters")
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	for _, check := range []struct {
		ok   bool
		need string
	}{
		{lower, "lowercase letters"},
		{upper, "uppercase letters"},
		{digit, "numbers"},
		{special, "special characters"},
	} {
		if check.ok {
			score++
		} else {
			missing = append(missing, check.need)
		}
	}

	level := strengthLevels[score]
	return Strength{Score: score, Label: level.label, Tone: level.tone, Missing: missing}
}
