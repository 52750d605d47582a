package adoption

import (
	"fmt"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"pet-adoption/internal/domain/pets"
)

const maxCachedFilters = 128

// searchCache guarda programas compilados por texto de filtro.
// Al llenarse se vacía entero; los filtros de la app son pocos y repetidos.
type searchCache struct {
	mu       sync.Mutex
	programs map[string]*vm.Program
}

func (c *searchCache) get(filter string) (*vm.Program, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.programs[filter]; ok {
		return p, nil
	}
	program, err := expr.Compile(filter, expr.Env(petEnv(pets.Pet{})), expr.AsBool())
	if err != nil {
		return nil, err
	}
	if c.programs == nil || len(c.programs) >= maxCachedFilters {
		c.programs = make(map[string]*vm.Program)
	}
	c.programs[filter] = program
	return program, nil
}

// petEnv son las variables disponibles en un filtro, p.ej.
//
//	species == "cat" && status == "available"
//	"playful" in temperament || name startsWith "S"
func petEnv(p pets.Pet) map[string]any {
	temperament := p.Temperament
	if temperament == nil {
		temperament = []string{}
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"species":     strings.ToLower(p.Species),
		"breed":       p.Breed,
		"age":         p.Age,
		"gender":      strings.ToLower(p.Gender),
		"size":        strings.ToLower(p.Size),
		"temperament": temperament,
		"description": p.Description,
		"status":      string(p.Status),
	}
}

// SearchPets devuelve las mascotas para las que filter evalúa true.
// Filtro vacío => todas. Expresión inválida o no booleana => ErrInvalidInput.
func (s *Store) SearchPets(filter string) ([]pets.Pet, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return s.Pets(), nil
	}

	program, err := s.search.get(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: filter: %v", ErrInvalidInput, err)
	}

	var out []pets.Pet
	for _, p := range s.snapshot().pets {
		res, err := expr.Run(program, petEnv(p))
		if err != nil {
			return nil, fmt.Errorf("%w: filter on pet %q: %v", ErrInvalidInput, p.ID, err)
		}
		if match, _ := res.(bool); match {
			out = append(out, p.Clone())
		}
	}
	if out == nil {
		out = []pets.Pet{}
	}
	return out, nil
}
