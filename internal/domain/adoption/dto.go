package adoption

import (
	"time"

	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
)

type petRequest struct {
	Name        string   `json:"name"`
	Species     string   `json:"species"`
	Breed       string   `json:"breed"`
	Age         string   `json:"age"`
	Gender      string   `json:"gender"`
	Size        string   `json:"size"`
	Temperament []string `json:"temperament"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

func (r petRequest) input() pets.Input {
	return pets.Input{
		Name:        r.Name,
		Species:     r.Species,
		Breed:       r.Breed,
		Age:         r.Age,
		Gender:      r.Gender,
		Size:        r.Size,
		Temperament: r.Temperament,
		Description: r.Description,
		ImageRef:    r.ImageURL,
	}
}

// Punteros para PATCH real: nil = no tocar. status no se acepta.
type petPatchRequest struct {
	Name        *string   `json:"name"`
	Species     *string   `json:"species"`
	Breed       *string   `json:"breed"`
	Age         *string   `json:"age"`
	Gender      *string   `json:"gender"`
	Size        *string   `json:"size"`
	Temperament *[]string `json:"temperament"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
}

func (r petPatchRequest) patch() pets.Patch {
	return pets.Patch{
		Name:        r.Name,
		Species:     r.Species,
		Breed:       r.Breed,
		Age:         r.Age,
		Gender:      r.Gender,
		Size:        r.Size,
		Temperament: r.Temperament,
		Description: r.Description,
		ImageRef:    r.ImageURL,
	}
}

type petResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Species     string      `json:"species,omitempty"`
	Breed       string      `json:"breed"`
	Age         string      `json:"age"`
	Gender      string      `json:"gender"`
	Size        string      `json:"size,omitempty"`
	Temperament []string    `json:"temperament"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	Status      pets.Status `json:"status"`
	Saved       bool        `json:"saved"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func toPetResponse(p pets.Pet, saved bool) petResponse {
	temperament := p.Temperament
	if temperament == nil {
		temperament = []string{}
	}
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Age:         p.Age,
		Gender:      p.Gender,
		Size:        p.Size,
		Temperament: temperament,
		Description: p.Description,
		ImageURL:    p.ImageRef,
		Status:      p.Status,
		Saved:       saved,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// applicantBody es el formulario plano tal como lo manda la app.
type applicantBody struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Birthdate     string `json:"birthdate"`
	Occupation    string `json:"occupation"`
	Company       string `json:"company,omitempty"`
	SocialMedia   string `json:"socialMedia,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`

	AlternateContactName         string `json:"alternateContactName,omitempty"`
	AlternateContactRelationship string `json:"alternateContactRelationship,omitempty"`
	AlternateContactPhone        string `json:"alternateContactPhone,omitempty"`
	AlternateContactEmail        string `json:"alternateContactEmail,omitempty"`

	HasAdoptedBefore bool   `json:"hasAdoptedBefore"`
	HouseholdMembers string `json:"householdMembers"`
	ChildrenAges     string `json:"childrenAges,omitempty"`
	HomeType         string `json:"homeType"`
	HasYard          bool   `json:"hasYard"`
	YardFenced       bool   `json:"yardFenced"`
	HoursAlone       string `json:"hoursAlone"`
	HasOtherPets     bool   `json:"hasOtherPets"`
	OtherPetsInfo    string `json:"otherPetsInfo,omitempty"`
	HasVet           bool   `json:"hasVet"`
	VetInfo          string `json:"vetInfo,omitempty"`

	PetExperience string `json:"petExperience"`
	PetActivities string `json:"petActivities"`
	WhyAdopt      string `json:"whyAdopt"`
	Agreement     bool   `json:"agreement"`
}

func (b applicantBody) applicant() applications.Applicant {
	return applications.Applicant(b)
}

type applicationRequest struct {
	PetID string `json:"petId"`
	applicantBody
}

type applicationResponse struct {
	ID      string `json:"id"`
	PetID   string `json:"petId"`
	PetName string `json:"petName"`
	applicantBody

	Status          applications.Status `json:"status"`
	ApplicationDate time.Time           `json:"applicationDate"`
	ReviewedDate    *time.Time          `json:"reviewedDate,omitempty"`

	// Pet es null si la mascota fue borrada después de la solicitud.
	Pet *petResponse `json:"pet"`
}

func toApplicationResponse(a applications.Application, pet *petResponse) applicationResponse {
	return applicationResponse{
		ID:              a.ID,
		PetID:           a.PetID,
		PetName:         a.PetName,
		applicantBody:   applicantBody(a.Applicant),
		Status:          a.Status,
		ApplicationDate: a.ApplicationDate,
		ReviewedDate:    a.ReviewedDate,
		Pet:             pet,
	}
}

type toggleSavedResponse struct {
	PetID string `json:"petId"`
	Saved bool   `json:"saved"`
}

type browseResponse struct {
	Index     int          `json:"index"`
	Pet       *petResponse `json:"pet"`
	AllViewed bool         `json:"allViewed"`
}

type refreshResponse struct {
	Stats Stats  `json:"stats"`
	Error string `json:"error,omitempty"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
