package auth

import (
	"regexp"
	"strings"
	"unicode"

	"campus/backend/internal/model"
)

// ErrInvalidEmailDomain is a validation failure: it matches both errors.Is and
// errors.As(*model.ValidationError).
var ErrInvalidEmailDomain = &model.ValidationError{Reason: "Only IIIT email addresses are allowed"}

var iiitEmail = regexp.MustCompile(`^[a-z0-9._%+-]+@iiit[a-z]*\.ac\.in$`)

// NormalizeEmail lower-cases and trims an address before any comparison or storage.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func ValidateEmail(email string) error {
	if !iiitEmail.MatchString(NormalizeEmail(email)) {
		return ErrInvalidEmailDomain
	}
	return nil
}

// DisplayName turns "john.doe" into "John Doe".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(NormalizeEmail(email), "@")
	return titleCase(strings.ReplaceAll(local, ".", " "))
}

// titleCase upper-cases every letter that follows a non-letter, so digits
// start a new word: "cs21b001" becomes "Cs21B001".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && !prevCased:
			b.WriteRune(unicode.ToTitle(r))
		case cased:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevCased = cased
	}
	return b.String()
}

// IdentityFor derives the caller identity from an email. Only the designated
// admin address receives the admin role.
func IdentityFor(email, adminEmail string) (model.Identity, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return model.Identity{}, err
	}
	role := model.RoleStudent
	if email == NormalizeEmail(adminEmail) {
		role = model.RoleAdmin
	}
	return model.Identity{
		Email:       email,
		Role:        role,
		DisplayName: DisplayName(email),
	}, nil
}
