package models

// Patient defines the structure for patient records.
type Patient struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name" gorm:"index"`
	Age            *int    `json:"age"`    // Optional field
	Gender         *string `json:"gender"` // male, female or other
	Department     *string `json:"department"`
	BedNumber      *string `json:"bed_number"`
	MedicalHistory *string `json:"medical_history"`
	Diagnosis      *string `json:"diagnosis"`
	AdmissionDate  string  `json:"admission_date"`
	CreateTime     string  `json:"create_time"`
	UpdateTime     string  `json:"update_time"`
}

// PatientUpdate enumerates the fields that may be changed on an existing
// patient. Nil fields are left untouched; the ID is never updatable.
type PatientUpdate struct {
	Name           *string `json:"name"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender" binding:"omitempty,oneof=male female other"`
	Department     *string `json:"department"`
	BedNumber      *string `json:"bed_number"`
	MedicalHistory *string `json:"medical_history"`
	Diagnosis      *string `json:"diagnosis"`
	AdmissionDate  *string `json:"admission_date"`
}

// Apply merges the update into p field by field.
func (u PatientUpdate) Apply(p *Patient) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = u.Age
	}
	if u.Gender != nil {
		p.Gender = u.Gender
	}
	if u.Department != nil {
		p.Department = u.Department
	}
	if u.BedNumber != nil {
		p.BedNumber = u.BedNumber
	}
	if u.MedicalHistory != nil {
		p.MedicalHistory = u.MedicalHistory
	}
	if u.Diagnosis != nil {
		p.Diagnosis = u.Diagnosis
	}
	if u.AdmissionDate != nil {
		p.AdmissionDate = *u.AdmissionDate
	}
}
