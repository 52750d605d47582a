package applications

import (
	"encoding/json"
	"fmt"
	"time"

	"pet-adoption/internal/domain/wire"
)

// record es la forma persistida bajo la key "applications" (plana, como el formulario).
type record struct {
	ID      string `json:"id"`
	PetID   string `json:"petId"`
	PetName string `json:"petName"`

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

	Status          Status  `json:"status"`
	ApplicationDate string  `json:"applicationDate"`
	ReviewedDate    *string `json:"reviewedDate,omitempty"`
}

func Decode(raw []byte) ([]Application, error) {
	return DecodeAt(raw, time.Now())
}

// DecodeAt tolera versiones viejas del blob:
// - createdAt en lugar de applicationDate, reviewedAt en lugar de reviewedDate
// - booleanos como "yes"/"no"
// Status inválido => pending. applicationDate faltante => now.
func DecodeAt(raw []byte, now time.Time) ([]Application, error) {
	recs, _, err := wire.Records(raw)
	if err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}

	out := make([]Application, 0, len(recs))
	for _, r := range recs {
		id := r.String("id")
		if id == "" {
			continue
		}
		status, ok := ParseStatus(r.String("status"))
		if !ok {
			status = StatusPending
		}

		applied, ok := r.Time("applicationDate")
		if !ok {
			applied = r.TimeOr("createdAt", now)
		}
		reviewed, ok := r.Time("reviewedDate")
		if !ok {
			reviewed, ok = r.Time("reviewedAt")
		}
		var reviewedPtr *time.Time
		if ok {
			reviewedPtr = &reviewed
		}

		out = append(out, Application{
			ID:      id,
			PetID:   r.String("petId"),
			PetName: r.String("petName"),
			Applicant: Applicant{
				FullName:      r.String("fullName"),
				Email:         r.String("email"),
				Phone:         r.String("phone"),
				Address:       r.String("address"),
				Birthdate:     r.String("birthdate"),
				Occupation:    r.String("occupation"),
				Company:       r.String("company"),
				SocialMedia:   r.String("socialMedia"),
				MaritalStatus: r.String("maritalStatus"),

				AlternateContactName:         r.String("alternateContactName"),
				AlternateContactRelationship: r.String("alternateContactRelationship"),
				AlternateContactPhone:        r.String("alternateContactPhone"),
				AlternateContactEmail:        r.String("alternateContactEmail"),

				HasAdoptedBefore: r.Bool("hasAdoptedBefore"),
				HouseholdMembers: r.String("householdMembers"),
				ChildrenAges:     r.String("childrenAges"),
				HomeType:         r.String("homeType"),
				HasYard:          r.Bool("hasYard"),
				YardFenced:       r.Bool("yardFenced"),
				HoursAlone:       r.String("hoursAlone"),
				HasOtherPets:     r.Bool("hasOtherPets"),
				OtherPetsInfo:    r.String("otherPetsInfo"),
				HasVet:           r.Bool("hasVet"),
				VetInfo:          r.String("vetInfo"),

				PetExperience: r.String("petExperience"),
				PetActivities: r.String("petActivities"),
				WhyAdopt:      r.String("whyAdopt"),
				Agreement:     r.Bool("agreement"),
			},
			Status:          status,
			ApplicationDate: applied,
			ReviewedDate:    reviewedPtr,
		})
	}
	return out, nil
}

func Encode(list []Application) ([]byte, error) {
	recs := make([]record, 0, len(list))
	for _, a := range list {
		p := a.Applicant
		rec := record{
			ID:      a.ID,
			PetID:   a.PetID,
			PetName: a.PetName,

			FullName:      p.FullName,
			Email:         p.Email,
			Phone:         p.Phone,
			Address:       p.Address,
			Birthdate:     p.Birthdate,
			Occupation:    p.Occupation,
			Company:       p.Company,
			SocialMedia:   p.SocialMedia,
			MaritalStatus: p.MaritalStatus,

			AlternateContactName:         p.AlternateContactName,
			AlternateContactRelationship: p.AlternateContactRelationship,
			AlternateContactPhone:        p.AlternateContactPhone,
			AlternateContactEmail:        p.AlternateContactEmail,

			HasAdoptedBefore: p.HasAdoptedBefore,
			HouseholdMembers: p.HouseholdMembers,
			ChildrenAges:     p.ChildrenAges,
			HomeType:         p.HomeType,
			HasYard:          p.HasYard,
			YardFenced:       p.YardFenced,
			HoursAlone:       p.HoursAlone,
			HasOtherPets:     p.HasOtherPets,
			OtherPetsInfo:    p.OtherPetsInfo,
			HasVet:           p.HasVet,
			VetInfo:          p.VetInfo,

			PetExperience: p.PetExperience,
			PetActivities: p.PetActivities,
			WhyAdopt:      p.WhyAdopt,
			Agreement:     p.Agreement,

			Status:          a.Status,
			ApplicationDate: wire.FormatTime(a.ApplicationDate),
		}
		if a.ReviewedDate != nil {
			s := wire.FormatTime(*a.ReviewedDate)
			rec.ReviewedDate = &s
		}
		recs = append(recs, rec)
	}
	b, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("encode applications: %w", err)
	}
	return b, nil
}
