// Package validation holds the field and step rules for an in-progress
// accommodation application. Everything here is pure: no I/O, no state.
package validation

import (
	"errors"
	"strings"
	"unicode"
)

// Field names shared with the form controller and the submission endpoint.
const (
	FieldYear          = "year"
	FieldIDNumber      = "id_number"
	FieldGender        = "gender"
	FieldEthnicity     = "ethnicity"
	FieldHomeLanguage  = "home_language"
	FieldFullNames     = "full_names"
	FieldStudentNumber = "student_number"
	FieldInstitution   = "institution"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldHomeAddress   = "home_address"

	FieldGuardianName         = "guardian_name"
	FieldGuardianRelationship = "guardian_relationship"
	FieldGuardianPhone        = "guardian_phone"
	FieldGuardianEmail        = "guardian_email"

	FilePhoto            = "photo"
	FileIDCard1          = "id_card_1"
	FileIDCard2          = "id_card_2"
	FileAcceptanceLetter = "acceptance_letter"
)

// Step is a named subset of the application's fields validated together
// before the form may advance.
type Step struct {
	Name   string
	Fields []string
	Files  []string
}

var Personal = Step{
	Name: "Personal Details",
	Fields: []string{
		FieldYear, FieldFullNames, FieldIDNumber, FieldStudentNumber,
		FieldInstitution, FieldEmail, FieldPhone, FieldHomeAddress,
		FieldGender, FieldEthnicity, FieldHomeLanguage,
	},
	Files: []string{FilePhoto, FileIDCard1, FileIDCard2},
}

var Guardian = Step{
	Name: "Guardian Info",
	Fields: []string{
		FieldGuardianName, FieldGuardianRelationship,
		FieldGuardianPhone, FieldGuardianEmail,
	},
}

// All is the union of every required field and file, re-checked at submit.
var All = Step{
	Name:   "All",
	Fields: append(append([]string{}, Personal.Fields...), Guardian.Fields...),
	Files:  append([]string{}, Personal.Files...),
}

// Field checks a single raw input value against the rule for the named
// field. A nil return means the value passes.
func Field(name, value string) error {
	switch name {
	case FieldIDNumber:
		if len(digits(value)) != 13 {
			return errors.New("ID number must be exactly 13 digits")
		}
	case FieldPhone, FieldGuardianPhone:
		d := digits(value)
		if len(d) != 10 || d[0] != '0' {
			return errors.New("phone number must be 10 digits starting with 0")
		}
	case FieldEmail, FieldGuardianEmail:
		if !emailShape(value) {
			return errors.New("enter a valid email address")
		}
	case FieldFullNames, FieldGuardianName:
		if !nameShape(value) {
			return errors.New("name may only contain letters and spaces")
		}
	case FieldStudentNumber:
		if !studentNumberShape(value) {
			return errors.New("student number must be 3-20 letters or digits")
		}
	default:
		if strings.TrimSpace(value) == "" {
			return errors.New("this field is required")
		}
	}
	return nil
}

// File checks presence of an uploaded document.
func File(name string, attached bool) error {
	if !attached {
		return errors.New("this document is required")
	}
	return nil
}

// Validate runs the step's field and file rules and returns the failing
// fields mapped to their reasons. An empty map means the step is valid.
func (s Step) Validate(values map[string]string, files map[string]bool) map[string]string {
	failed := make(map[string]string)
	for _, f := range s.Fields {
		if err := Field(f, values[f]); err != nil {
			failed[f] = err.Error()
		}
	}
	for _, f := range s.Files {
		if err := File(f, files[f]); err != nil {
			failed[f] = err.Error()
		}
	}
	return failed
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// emailShape accepts local@domain.tld: at least one @, at least one dot
// after it with characters on both sides, and no whitespace anywhere.
func emailShape(s string) bool {
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	at := strings.Index(s, "@")
	if at < 1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot >= 1 && dot < len(domain)-1
}

// nameShape strips everything but letters and spaces and requires the
// remainder to carry at least two characters of actual name.
func nameShape(s string) bool {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return len(strings.TrimSpace(b.String())) >= 2
}

func studentNumberShape(s string) bool {
	if len(s) < 3 || len(s) > 20 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
