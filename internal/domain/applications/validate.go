package applications

import (
	"regexp"
	"strings"

	"pet-adoption/internal/domain/validation"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\+]?[(]?[0-9]{3}[)]?[-\s\.]?[0-9]{3}[-\s\.]?[0-9]{4,6}$`)
)

func ValidEmail(s string) bool { return emailRe.MatchString(strings.TrimSpace(s)) }
func ValidPhone(s string) bool { return phoneRe.MatchString(strings.TrimSpace(s)) }

// Validate revisa el formulario antes de tocar el store.
// Devuelve *validation.Error con un mensaje por campo.
func (in Input) Validate() error {
	var c validation.Collector
	a := in.Applicant

	c.Required("petId", in.PetID, "pet is required")
	c.Required("fullName", a.FullName, "Full name is required")
	c.Required("address", a.Address, "Address is required")
	if c.Required("phone", a.Phone, "Phone number is required") && !ValidPhone(a.Phone) {
		c.Add("phone", "Invalid phone number")
	}
	if c.Required("email", a.Email, "Email is required") && !ValidEmail(a.Email) {
		c.Add("email", "Invalid email")
	}
	c.Required("birthdate", a.Birthdate, "Birthdate is required")
	c.Required("occupation", a.Occupation, "Occupation is required")
	c.Required("householdMembers", a.HouseholdMembers, "Please describe household members")
	c.Required("homeType", a.HomeType, "Please specify your home type")
	c.Required("hoursAlone", a.HoursAlone, "Please specify hours pet would be alone")
	c.Required("petExperience", a.PetExperience, "Please describe your pet experience")
	c.Required("whyAdopt", a.WhyAdopt, "Please explain why you want to adopt")

	if v := strings.TrimSpace(a.AlternateContactEmail); v != "" && !ValidEmail(v) {
		c.Add("alternateContactEmail", "Invalid email")
	}
	if v := strings.TrimSpace(a.AlternateContactPhone); v != "" && !ValidPhone(v) {
		c.Add("alternateContactPhone", "Invalid phone number")
	}
	if !a.Agreement {
		c.Add("agreement", "You must agree to the terms")
	}
	return c.Err()
}
