package validation

import (
	"testing"
)

func TestFieldIDNumber(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"9202204720082", true},
		{"920220 472 0082", true}, // spaces stripped
		{"92-02-20-4720082", true},
		{"920220472008", false},   // 12 digits
		{"92022047200821", false}, // 14 digits
		{"abcdefghijklm", false},  // no digits at all
		{"", false},
		{"92022047200a2", false}, // 12 digits after stripping
	}
	for _, tt := range tests {
		err := Field(FieldIDNumber, tt.value)
		if (err == nil) != tt.ok {
			t.Errorf("Field(id_number, %q) = %v, want ok=%v", tt.value, err, tt.ok)
		}
	}
}

func TestFieldPhone(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"0823456789", true},
		{"082 345 6789", true},
		{"082-345-6789", true},
		{"1234567890", false}, // doesn't start with 0
		{"082345678", false},  // 9 digits
		{"08234567890", false},
		{"", false},
	}
	for _, field := range []string{FieldPhone, FieldGuardianPhone} {
		for _, tt := range tests {
			err := Field(field, tt.value)
			if (err == nil) != tt.ok {
				t.Errorf("Field(%s, %q) = %v, want ok=%v", field, tt.value, err, tt.ok)
			}
		}
	}
}

func TestFieldEmail(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"a@b.com", true},
		{"thabo.m@university.ac.za", true},
		{"a@b", false},    // no TLD
		{"a.com", false},  // no @
		{"@b.com", false}, // empty local part
		{"a@.com", false}, // empty domain label
		{"a@b.", false},   // empty TLD
		{"a b@c.com", false},
		{"", false},
	}
	for _, tt := range tests {
		err := Field(FieldEmail, tt.value)
		if (err == nil) != tt.ok {
			t.Errorf("Field(email, %q) = %v, want ok=%v", tt.value, err, tt.ok)
		}
	}
}

func TestFieldNames(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"Thabo Mokoena", true},
		{"Jo", true},
		{"J", false},
		{"  ", false},
		{"12345", false},
		{"Thabo123 Mokoena", true}, // digits stripped, letters remain
		{"", false},
	}
	for _, field := range []string{FieldFullNames, FieldGuardianName} {
		for _, tt := range tests {
			err := Field(field, tt.value)
			if (err == nil) != tt.ok {
				t.Errorf("Field(%s, %q) = %v, want ok=%v", field, tt.value, err, tt.ok)
			}
		}
	}
}

func TestFieldStudentNumber(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"ST12345", true},
		{"123", true},
		{"ab", false},
		{"ST 12345", false},              // space not allowed
		{"abcdefghijklmnopqrstu", false}, // 21 chars
		{"", false},
	}
	for _, tt := range tests {
		err := Field(FieldStudentNumber, tt.value)
		if (err == nil) != tt.ok {
			t.Errorf("Field(student_number, %q) = %v, want ok=%v", tt.value, err, tt.ok)
		}
	}
}

func TestFieldRequiredText(t *testing.T) {
	if err := Field(FieldInstitution, "University of Cape Town"); err != nil {
		t.Errorf("non-blank institution should pass, got %v", err)
	}
	if err := Field(FieldInstitution, "   "); err == nil {
		t.Error("whitespace-only institution should fail")
	}
	if err := Field(FieldHomeAddress, ""); err == nil {
		t.Error("empty home_address should fail")
	}
}

func validPersonalValues() map[string]string {
	return map[string]string{
		FieldYear:          "2026",
		FieldFullNames:     "Thabo Mokoena",
		FieldIDNumber:      "9202204720082",
		FieldStudentNumber: "ST12345",
		FieldInstitution:   "University of Cape Town",
		FieldEmail:         "thabo@example.com",
		FieldPhone:         "0823456789",
		FieldHomeAddress:   "12 Long Street, Cape Town",
		FieldGender:        "male",
		FieldEthnicity:     "African",
		FieldHomeLanguage:  "isiXhosa",
	}
}

func allFiles() map[string]bool {
	return map[string]bool{
		FilePhoto:   true,
		FileIDCard1: true,
		FileIDCard2: true,
	}
}

func TestPersonalStep(t *testing.T) {
	if failed := Personal.Validate(validPersonalValues(), allFiles()); len(failed) != 0 {
		t.Fatalf("valid personal step should pass, got %v", failed)
	}

	// Any single blank field fails exactly that field.
	for _, blank := range Personal.Fields {
		values := validPersonalValues()
		values[blank] = ""
		failed := Personal.Validate(values, allFiles())
		if len(failed) != 1 {
			t.Errorf("blank %s: want exactly 1 failure, got %v", blank, failed)
			continue
		}
		if _, ok := failed[blank]; !ok {
			t.Errorf("blank %s: failure map does not name it: %v", blank, failed)
		}
	}
}

func TestPersonalStepMissingFile(t *testing.T) {
	files := allFiles()
	delete(files, FileIDCard2)
	failed := Personal.Validate(validPersonalValues(), files)
	if len(failed) != 1 {
		t.Fatalf("want exactly 1 failure, got %v", failed)
	}
	if _, ok := failed[FileIDCard2]; !ok {
		t.Fatalf("want %s to fail, got %v", FileIDCard2, failed)
	}
}

func TestGuardianStep(t *testing.T) {
	values := map[string]string{
		FieldGuardianName:         "Nomsa Mokoena",
		FieldGuardianRelationship: "Mother",
		FieldGuardianPhone:        "0731234567",
		FieldGuardianEmail:        "nomsa@example.com",
	}
	if failed := Guardian.Validate(values, nil); len(failed) != 0 {
		t.Fatalf("valid guardian step should pass, got %v", failed)
	}

	values[FieldGuardianPhone] = "1234567890"
	failed := Guardian.Validate(values, nil)
	if len(failed) != 1 {
		t.Fatalf("want exactly 1 failure, got %v", failed)
	}
	if _, ok := failed[FieldGuardianPhone]; !ok {
		t.Fatalf("want guardian_phone to fail, got %v", failed)
	}
}

func TestAllStepCoversEverything(t *testing.T) {
	want := len(Personal.Fields) + len(Guardian.Fields)
	if len(All.Fields) != want {
		t.Errorf("All.Fields has %d entries, want %d", len(All.Fields), want)
	}
	if len(All.Files) != len(Personal.Files) {
		t.Errorf("All.Files has %d entries, want %d", len(All.Files), len(Personal.Files))
	}
}
