package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/models"
)

func validAppointmentRequest() models.CreateAppointmentRequest {
	return models.CreateAppointmentRequest{
		PatientName:     "John Doe",
		PatientEmail:    "john@x.com",
		PatientPhone:    "5551234567",
		DoctorName:      "Dr. Smith",
		AppointmentDate: "2024-03-15",
		AppointmentTime: "14:30",
		AppointmentType: "Checkup",
	}
}

func TestValidateAppointmentValid(t *testing.T) {
	errs := ValidateAppointment(validAppointmentRequest())
	assert.Empty(t, errs)
}

func TestValidateAppointmentFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateAppointmentRequest)
		field  string
	}{
		{"missing patient_name", func(r *models.CreateAppointmentRequest) { r.PatientName = "" }, "patient_name"},
		{"short patient_name", func(r *models.CreateAppointmentRequest) { r.PatientName = "J" }, "patient_name"},
		{"long patient_name", func(r *models.CreateAppointmentRequest) { r.PatientName = strings.Repeat("a", 101) }, "patient_name"},
		{"bad patient_email", func(r *models.CreateAppointmentRequest) { r.PatientEmail = "bad" }, "patient_email"},
		{"email without domain dot", func(r *models.CreateAppointmentRequest) { r.PatientEmail = "john@nodot" }, "patient_email"},
		{"short patient_phone", func(r *models.CreateAppointmentRequest) { r.PatientPhone = "555123" }, "patient_phone"},
		{"long patient_phone", func(r *models.CreateAppointmentRequest) { r.PatientPhone = "5551234567890123" }, "patient_phone"},
		{"missing doctor_name", func(r *models.CreateAppointmentRequest) { r.DoctorName = "" }, "doctor_name"},
		{"bad appointment_date", func(r *models.CreateAppointmentRequest) { r.AppointmentDate = "15-03-2024" }, "appointment_date"},
		{"bad appointment_time", func(r *models.CreateAppointmentRequest) { r.AppointmentTime = "2pm" }, "appointment_time"},
		{"out of range hour", func(r *models.CreateAppointmentRequest) { r.AppointmentTime = "25:00" }, "appointment_time"},
		{"duration below minimum", func(r *models.CreateAppointmentRequest) { r.DurationMinutes = 10 }, "duration_minutes"},
		{"duration above maximum", func(r *models.CreateAppointmentRequest) { r.DurationMinutes = 241 }, "duration_minutes"},
		{"short appointment_type", func(r *models.CreateAppointmentRequest) { r.AppointmentType = "ab" }, "appointment_type"},
		{"long notes", func(r *models.CreateAppointmentRequest) { r.Notes = strings.Repeat("n", 501) }, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAppointmentRequest()
			tt.mutate(&req)
			errs := ValidateAppointment(req)
			require.NotEmpty(t, errs)
			assert.Contains(t, strings.Join(errs, "; "), tt.field)
		})
	}
}

func TestValidateAppointmentReportsAllViolatedFields(t *testing.T) {
	req := validAppointmentRequest()
	req.PatientName = "J"
	req.PatientEmail = "bad@"
	req.AppointmentTime = "noon"

	errs := ValidateAppointment(req)
	require.Len(t, errs, 3)
	joined := strings.Join(errs, "; ")
	assert.Contains(t, joined, "patient_name")
	assert.Contains(t, joined, "patient_email")
	assert.Contains(t, joined, "appointment_time")
}

func TestValidateAppointmentBoundsInclusive(t *testing.T) {
	req := validAppointmentRequest()
	req.PatientName = "Jo" // exactly 2
	req.DurationMinutes = 15
	assert.Empty(t, ValidateAppointment(req))

	req.PatientName = strings.Repeat("a", 100)
	req.DurationMinutes = 240
	assert.Empty(t, ValidateAppointment(req))
}

func TestDatePatternIsLiteralNotCalendar(t *testing.T) {
	// Pattern match only: syntactically valid but calendar-impossible
	// dates pass.
	req := validAppointmentRequest()
	req.AppointmentDate = "2024-02-30"
	assert.Empty(t, ValidateAppointment(req))

	assert.True(t, IsValidDate("2024-02-30"))
	assert.False(t, IsValidDate("2024-2-30"))
	assert.False(t, IsValidDate("20240230"))
	assert.False(t, IsValidDate(""))
}

func validPetRequest() models.CreatePetRequest {
	return models.CreatePetRequest{
		Name:       "Rex",
		Species:    "dog",
		Age:        3,
		OwnerName:  "Jane Roe",
		OwnerEmail: "jane@x.com",
		OwnerPhone: "5559876543",
	}
}

func TestValidatePetValid(t *testing.T) {
	assert.Empty(t, ValidatePet(validPetRequest()))
}

func TestValidatePetFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreatePetRequest)
		field  string
	}{
		{"missing name", func(r *models.CreatePetRequest) { r.Name = "" }, "name"},
		{"long name", func(r *models.CreatePetRequest) { r.Name = strings.Repeat("a", 101) }, "name"},
		{"missing species", func(r *models.CreatePetRequest) { r.Species = "" }, "species"},
		{"missing age", func(r *models.CreatePetRequest) { r.Age = 0 }, "age"},
		{"negative age", func(r *models.CreatePetRequest) { r.Age = -2 }, "age"},
		{"negative weight", func(r *models.CreatePetRequest) { r.Weight = -1.5 }, "weight"},
		{"missing owner_name", func(r *models.CreatePetRequest) { r.OwnerName = "" }, "owner_name"},
		{"bad owner_email", func(r *models.CreatePetRequest) { r.OwnerEmail = "nope" }, "owner_email"},
		{"missing owner_phone", func(r *models.CreatePetRequest) { r.OwnerPhone = "" }, "owner_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPetRequest()
			tt.mutate(&req)
			errs := ValidatePet(req)
			require.NotEmpty(t, errs)
			assert.Contains(t, strings.Join(errs, "; "), tt.field)
		})
	}
}

func TestIsSimpleEmail(t *testing.T) {
	assert.True(t, IsSimpleEmail("a@b.com"))
	assert.True(t, IsSimpleEmail("john.doe@clinic.example.org"))
	assert.False(t, IsSimpleEmail("bad"))
	assert.False(t, IsSimpleEmail("@b.com"))
	assert.False(t, IsSimpleEmail("a@nodot"))
	assert.False(t, IsSimpleEmail(""))
}
