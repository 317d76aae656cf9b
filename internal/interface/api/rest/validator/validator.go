package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	domain "donations-api/internal/domain/user"
	"donations-api/internal/interface/api/rest/dto/auth"
	"donations-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen   = 8
	maxPasswordBytes = 72 // bcrypt rejects anything longer
)

var (
	e164Re = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)
	dniRe  = regexp.MustCompile(`^[0-9A-Za-z-]{5,20}$`)
	codeRe = regexp.MustCompile(`^[DB]-\d{4}$`)
)

func ValidatePage(page string) (int, error) {
	if page == "" {
		return 1, nil
	}

	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		return 0, errors.New("invalid page")
	}

	return n, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func IsCode(s string) bool { return codeRe.MatchString(s) }

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	names := strings.TrimSpace(r.Names)
	surnames := strings.TrimSpace(r.Surnames)
	dni := strings.TrimSpace(r.NationalID)
	phone := strings.TrimSpace(r.Phone)

	// correo (required + format)
	if email == "" {
		errs["correo"] = "correo is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["correo"] = "invalid correo format"
	}

	// nombres (required + length + allowed chars)
	if names == "" {
		errs["nombres"] = "nombres is required"
	} else if l := utf8.RuneCountInString(names); l < 2 || l > 64 {
		errs["nombres"] = "nombres length must be 2-64 characters"
	} else if !isHumanName(names) {
		errs["nombres"] = "allowed characters: letters, space, '-', '''"
	}

	// apellidos (required + length + allowed chars)
	if surnames == "" {
		errs["apellidos"] = "apellidos is required"
	} else if l := utf8.RuneCountInString(surnames); l < 2 || l > 64 {
		errs["apellidos"] = "apellidos length must be 2-64 characters"
	} else if !isHumanName(surnames) {
		errs["apellidos"] = "allowed characters: letters, space, '-', '''"
	}

	// dni (required + shape)
	if dni == "" {
		errs["dni"] = "dni is required"
	} else if !dniRe.MatchString(dni) {
		errs["dni"] = "dni must be 5-20 alphanumeric characters"
	}

	// telefono (optional + E.164 when present)
	if phone != "" && !e164Re.MatchString(phone) {
		errs["telefono"] = "must be in E.164 format (e.g., +528180000000)"
	}

	// rol (required + membership)
	if r.Role == "" {
		errs["rol"] = "rol is required"
	} else if !domain.ValidRole(r.Role) {
		errs["rol"] = "rol must be Donante or Beneficiario"
	}

	if msg, ok := checkPassword(r.Password); !ok {
		errs["password"] = msg
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func isHumanName(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

// ValidateUserUpdate checks the profile-edit body. All fields are optional
// on update, but those present must be well-formed.
func ValidateUserUpdate(r user.Request) map[string]string {
	errs := make(map[string]string)

	names := strings.TrimSpace(r.Names)
	surnames := strings.TrimSpace(r.Surnames)
	phone := strings.TrimSpace(r.Phone)

	if names == "" {
		errs["nombres"] = "nombres is required"
	} else if l := utf8.RuneCountInString(names); l < 2 || l > 64 {
		errs["nombres"] = "nombres length must be 2-64 characters"
	} else if !isHumanName(names) {
		errs["nombres"] = "allowed characters: letters, space, '-', '''"
	}

	if surnames == "" {
		errs["apellidos"] = "apellidos is required"
	} else if l := utf8.RuneCountInString(surnames); l < 2 || l > 64 {
		errs["apellidos"] = "apellidos length must be 2-64 characters"
	} else if !isHumanName(surnames) {
		errs["apellidos"] = "allowed characters: letters, space, '-', '''"
	}

	if phone != "" && !e164Re.MatchString(phone) {
		errs["telefono"] = "must be in E.164 format (e.g., +528180000000)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))

	// correo (required + format)
	if email == "" {
		errs["correo"] = "correo is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["correo"] = "invalid correo format"
	}

	if msg, ok := checkPassword(r.Password); !ok {
		errs["password"] = msg
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateResetPassword(r auth.ResetPasswordRequest) map[string]string {
	errs := make(map[string]string)

	if msg, ok := checkPassword(r.Password); !ok {
		errs["password"] = msg
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// checkPassword validates presence and length. The password itself is never
// trimmed. The lower bound counts runes; the upper bound counts bytes, since
// bcrypt caps its input at 72 bytes and multibyte runes reach it sooner.
func checkPassword(password string) (string, bool) {
	if strings.TrimSpace(password) == "" {
		return "password is required", false
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "password must be at least 8 characters", false
	}
	if len(password) > maxPasswordBytes {
		return "password must be at most 72 bytes", false
	}
	return "", true
}
