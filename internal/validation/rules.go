// Package validation provides custom validation rules for the application,
// including the Brazilian document formats used by the contact form.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/estudiomov/linkgate/internal/errors"
)

var (
	cepRegex   = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	phoneRegex = regexp.MustCompile(`^(\+55\s?)?(\(?\d{2}\)?\s?)?\d{4,5}-?\d{4}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// CEP validates a Brazilian postal code (8 digits, optional hyphen).
var CEP = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_cep_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if !cepRegex.MatchString(s) {
		return validation.NewError("validation_cep", "must be a valid CEP")
	}
	return nil
})

// BRPhone validates a Brazilian phone number with optional country code and
// area code (landline or mobile).
var BRPhone = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_phone_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	if !phoneRegex.MatchString(s) {
		return validation.NewError("validation_phone", "must be a valid Brazilian phone number")
	}
	return nil
})

// CPFOrCNPJ validates a Brazilian personal (CPF) or corporate (CNPJ) tax id,
// with or without punctuation, including the check digits.
var CPFOrCNPJ = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_document_type", "must be a string")
	}
	if s == "" {
		return nil
	}

	digits := stripNonDigits(s)
	switch len(digits) {
	case 11:
		if !validCPF(digits) {
			return validation.NewError("validation_cpf", "must be a valid CPF")
		}
	case 14:
		if !validCNPJ(digits) {
			return validation.NewError("validation_cnpj", "must be a valid CNPJ")
		}
	default:
		return validation.NewError("validation_document", "must be a valid CPF or CNPJ")
	}
	return nil
})

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSameDigit catches the classic degenerate documents (e.g. 111.111.111-11)
// that satisfy the check-digit arithmetic but are invalid.
func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func validCPF(digits string) bool {
	if allSameDigit(digits) {
		return false
	}

	for _, pos := range []int{9, 10} {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(digits[i]-'0') * (pos + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		if check != int(digits[pos]-'0') {
			return false
		}
	}
	return true
}

func validCNPJ(digits string) bool {
	if allSameDigit(digits) {
		return false
	}

	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, pos := range []int{12, 13} {
		sum := 0
		offset := len(weights) - pos
		for i := 0; i < pos; i++ {
			sum += int(digits[i]-'0') * weights[offset+i]
		}
		check := sum % 11
		if check < 2 {
			check = 0
		} else {
			check = 11 - check
		}
		if check != int(digits[pos]-'0') {
			return false
		}
	}
	return true
}
