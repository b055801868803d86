package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppointmentDefaults(t *testing.T) {
	appt := NewAppointment(CreateAppointmentRequest{
		PatientName:     "John Doe",
		PatientEmail:    "john@x.com",
		PatientPhone:    "5551234567",
		DoctorName:      "Dr. Smith",
		AppointmentDate: "2024-03-15",
		AppointmentTime: "14:30",
		AppointmentType: "Checkup",
	})

	assert.Equal(t, StatusScheduled, appt.Status)
	assert.Equal(t, 30, appt.DurationMinutes)
	assert.Empty(t, appt.ID, "id is assigned by the store adapter")
	assert.Empty(t, appt.CreatedAt)
}

func TestNewAppointmentKeepsExplicitDuration(t *testing.T) {
	appt := NewAppointment(CreateAppointmentRequest{DurationMinutes: 45})
	assert.Equal(t, 45, appt.DurationMinutes)
}

func TestNewPetCopiesFields(t *testing.T) {
	pet := NewPet(CreatePetRequest{
		Name:       "Rex",
		Species:    "dog",
		Breed:      "labrador",
		Age:        3,
		Weight:     24.5,
		OwnerName:  "Jane Roe",
		OwnerEmail: "jane@x.com",
		OwnerPhone: "5559876543",
	})

	assert.Equal(t, "Rex", pet.Name)
	assert.Equal(t, "dog", pet.Species)
	assert.Equal(t, 24.5, pet.Weight)
	assert.Empty(t, pet.ID)
}
