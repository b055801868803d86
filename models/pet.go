package models

// Pet is the stored pet record. Each pet lives as a single JSON object in
// the blob store, keyed by "<id>.json".
type Pet struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Species      string  `json:"species"`
	Breed        string  `json:"breed,omitempty"`
	Age          int     `json:"age"`
	Color        string  `json:"color,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
	OwnerName    string  `json:"owner_name"`
	OwnerEmail   string  `json:"owner_email"`
	OwnerPhone   string  `json:"owner_phone"`
	MedicalNotes string  `json:"medical_notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// CreatePetRequest is the inbound payload for POST /api/pets.
type CreatePetRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Species      string  `json:"species" validate:"required"`
	Breed        string  `json:"breed"`
	Age          int     `json:"age" validate:"required,gt=0"`
	Color        string  `json:"color"`
	Weight       float64 `json:"weight" validate:"omitempty,gt=0"`
	OwnerName    string  `json:"owner_name" validate:"required"`
	OwnerEmail   string  `json:"owner_email" validate:"required,simpleemail"`
	OwnerPhone   string  `json:"owner_phone" validate:"required"`
	MedicalNotes string  `json:"medical_notes"`
}

// NewPet builds the normalized record from a validated request. The id and
// both timestamps are assigned by the store adapter at creation.
func NewPet(req CreatePetRequest) Pet {
	return Pet{
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		Age:          req.Age,
		Color:        req.Color,
		Weight:       req.Weight,
		OwnerName:    req.OwnerName,
		OwnerEmail:   req.OwnerEmail,
		OwnerPhone:   req.OwnerPhone,
		MedicalNotes: req.MedicalNotes,
	}
}
