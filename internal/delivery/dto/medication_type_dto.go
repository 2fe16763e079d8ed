package dto

type CreateMedicationTypeRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Category     string `json:"category" validate:"omitempty,max=50"`
	Description  string `json:"description"`
	CommonDosage string `json:"common_dosage" validate:"omitempty,max=100"`
	SideEffects  string `json:"side_effects"`
	Precautions  string `json:"precautions"`
}

type MedicationTypeResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	Description  string `json:"description,omitempty"`
	CommonDosage string `json:"common_dosage,omitempty"`
	SideEffects  string `json:"side_effects,omitempty"`
	Precautions  string `json:"precautions,omitempty"`
}

// MedicationTypeResultResponse reports whether the name already existed
type MedicationTypeResultResponse struct {
	MedicationType MedicationTypeResponse `json:"medication_type"`
	Created        bool                   `json:"created"`
}
