package models

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment is the stored appointment record. AppointmentDate doubles as
// the partition key, so single-record lookups always carry it alongside ID.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	PatientName     string            `bson:"patient_name" json:"patient_name"`
	PatientEmail    string            `bson:"patient_email" json:"patient_email"`
	PatientPhone    string            `bson:"patient_phone" json:"patient_phone"`
	DoctorName      string            `bson:"doctor_name" json:"doctor_name"`
	AppointmentDate string            `bson:"appointment_date" json:"appointment_date"` // "YYYY-MM-DD"
	AppointmentTime string            `bson:"appointment_time" json:"appointment_time"` // "HH:MM", 24-hour
	DurationMinutes int               `bson:"duration_minutes" json:"duration_minutes"`
	AppointmentType string            `bson:"appointment_type" json:"appointment_type"`
	Status          AppointmentStatus `bson:"status" json:"status"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       string            `bson:"created_at" json:"created_at"`
	UpdatedAt       string            `bson:"updated_at" json:"updated_at"`
}

// CreateAppointmentRequest is the inbound payload for POST /api/appointments.
// Bounds are inclusive; date and time are checked as literal patterns only.
type CreateAppointmentRequest struct {
	PatientName     string `json:"patient_name" validate:"required,min=2,max=100"`
	PatientEmail    string `json:"patient_email" validate:"required,min=5,max=100,simpleemail"`
	PatientPhone    string `json:"patient_phone" validate:"required,min=10,max=15"`
	DoctorName      string `json:"doctor_name" validate:"required,min=2,max=100"`
	AppointmentDate string `json:"appointment_date" validate:"required,dateformat"`
	AppointmentTime string `json:"appointment_time" validate:"required,timeformat"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=15,max=240"`
	AppointmentType string `json:"appointment_type" validate:"required,min=3,max=50"`
	Notes           string `json:"notes" validate:"omitempty,max=500"`
}

// NewAppointment builds the normalized record from a validated request.
// Defaults: duration 30 minutes, status "scheduled". The id and both
// timestamps are assigned by the store adapter at creation.
func NewAppointment(req CreateAppointmentRequest) Appointment {
	duration := req.DurationMinutes
	if duration == 0 {
		duration = 30
	}
	return Appointment{
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		PatientPhone:    req.PatientPhone,
		DoctorName:      req.DoctorName,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		DurationMinutes: duration,
		AppointmentType: req.AppointmentType,
		Status:          StatusScheduled,
		Notes:           req.Notes,
	}
}
