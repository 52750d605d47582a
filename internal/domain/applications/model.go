package applications

import (
	"strings"
	"time"
)

// Status de una solicitud. pending es el único estado no terminal.
// @Enum pending, approved, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, true
	}
	return "", false
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Applicant son los datos del formulario de adopción.
// El dominio los trata como texto opaco; solo valida presencia y formato de contacto.
type Applicant struct {
	FullName      string
	Email         string
	Phone         string
	Address       string
	Birthdate     string
	Occupation    string
	Company       string
	SocialMedia   string
	MaritalStatus string

	AlternateContactName         string
	AlternateContactRelationship string
	AlternateContactPhone        string
	AlternateContactEmail        string

	HasAdoptedBefore bool
	HouseholdMembers string
	ChildrenAges     string
	HomeType         string
	HasYard          bool
	YardFenced       bool
	HoursAlone       string
	HasOtherPets     bool
	OtherPetsInfo    string
	HasVet           bool
	VetInfo          string

	PetExperience string
	PetActivities string
	WhyAdopt      string
	Agreement     bool
}

// Application es una solicitud de adopción para una mascota.
type Application struct {
	ID    string
	PetID string

	// PetName se copia al enviar para poder mostrar solicitudes de mascotas ya borradas.
	PetName string

	Applicant Applicant

	Status          Status
	ApplicationDate time.Time
	ReviewedDate    *time.Time
}

// Input es lo que manda el usuario al enviar el formulario.
type Input struct {
	PetID     string
	Applicant Applicant
}

// New arma una solicitud pending. El input ya debe estar validado.
func New(id, petName string, in Input, now time.Time) Application {
	return Application{
		ID:              id,
		PetID:           strings.TrimSpace(in.PetID),
		PetName:         petName,
		Applicant:       in.Applicant.trimmed(),
		Status:          StatusPending,
		ApplicationDate: now,
	}
}

// Review devuelve una copia con el status terminal y ReviewedDate = now.
func (a Application) Review(to Status, now time.Time) Application {
	a.Status = to
	a.ReviewedDate = &now
	return a
}

func (a Applicant) trimmed() Applicant {
	for _, f := range []*string{
		&a.FullName, &a.Email, &a.Phone, &a.Address, &a.Birthdate, &a.Occupation,
		&a.Company, &a.SocialMedia, &a.MaritalStatus,
		&a.AlternateContactName, &a.AlternateContactRelationship,
		&a.AlternateContactPhone, &a.AlternateContactEmail,
		&a.HouseholdMembers, &a.ChildrenAges, &a.HomeType, &a.HoursAlone,
		&a.OtherPetsInfo, &a.VetInfo, &a.PetExperience, &a.PetActivities, &a.WhyAdopt,
	} {
		*f = strings.TrimSpace(*f)
	}
	return a
}
