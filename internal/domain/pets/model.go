package pets

import (
	"slices"
	"strings"
	"time"

	"pet-adoption/internal/domain/validation"
)

// Status es el estado de adopción de una mascota.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

// ParseStatus valida un status; ok == false si no es uno de los tres.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusAvailable, StatusPending, StatusAdopted:
		return st, true
	}
	return "", false
}

// Pet es una mascota publicada para adopción.
type Pet struct {
	ID string

	Name        string
	Species     string
	Breed       string
	Age         string // texto libre: "2 years", "6 meses"
	Gender      string
	Size        string
	Temperament []string
	Description string

	// ImageRef es una URI remota o un asset empaquetado ("asset:<nombre>").
	ImageRef string

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone copia los slices para que el snapshot del store no comparta memoria con el caller.
func (p Pet) Clone() Pet {
	p.Temperament = slices.Clone(p.Temperament)
	return p
}

// Input son los campos que carga el admin al publicar una mascota.
type Input struct {
	Name        string
	Species     string
	Breed       string
	Age         string
	Gender      string
	Size        string
	Temperament []string
	Description string
	ImageRef    string
}

func (in Input) Validate() error {
	var c validation.Collector
	c.Required("name", in.Name, "name is required")
	c.Required("breed", in.Breed, "breed is required")
	c.Required("age", in.Age, "age is required")
	c.Required("gender", in.Gender, "gender is required")
	c.Required("description", in.Description, "description is required")
	return c.Err()
}

// New arma una Pet disponible a partir del input ya validado.
func New(id string, in Input, now time.Time) Pet {
	return Pet{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         strings.TrimSpace(in.Age),
		Gender:      strings.TrimSpace(in.Gender),
		Size:        strings.TrimSpace(in.Size),
		Temperament: cleanList(in.Temperament),
		Description: strings.TrimSpace(in.Description),
		ImageRef:    strings.TrimSpace(in.ImageRef),
		Status:      StatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Patch es un update parcial: nil = no tocar.
// No incluye Status: el status lo mueve el flujo de solicitudes.
type Patch struct {
	Name        *string
	Species     *string
	Breed       *string
	Age         *string
	Gender      *string
	Size        *string
	Temperament *[]string
	Description *string
	ImageRef    *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Species == nil && p.Breed == nil && p.Age == nil &&
		p.Gender == nil && p.Size == nil && p.Temperament == nil &&
		p.Description == nil && p.ImageRef == nil
}

// Validate rechaza vaciar campos obligatorios.
func (p Patch) Validate() error {
	var c validation.Collector
	if p.Name != nil {
		c.Required("name", *p.Name, "name cannot be empty")
	}
	if p.Breed != nil {
		c.Required("breed", *p.Breed, "breed cannot be empty")
	}
	if p.Age != nil {
		c.Required("age", *p.Age, "age cannot be empty")
	}
	if p.Gender != nil {
		c.Required("gender", *p.Gender, "gender cannot be empty")
	}
	if p.Description != nil {
		c.Required("description", *p.Description, "description cannot be empty")
	}
	return c.Err()
}

// Apply devuelve una copia de pet con el patch aplicado y UpdatedAt = now.
func (p Patch) Apply(pet Pet, now time.Time) Pet {
	out := pet.Clone()
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&out.Name, p.Name)
	set(&out.Species, p.Species)
	set(&out.Breed, p.Breed)
	set(&out.Age, p.Age)
	set(&out.Gender, p.Gender)
	set(&out.Size, p.Size)
	set(&out.Description, p.Description)
	set(&out.ImageRef, p.ImageRef)
	if p.Temperament != nil {
		out.Temperament = cleanList(*p.Temperament)
	}
	out.UpdatedAt = now
	return out
}

func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
