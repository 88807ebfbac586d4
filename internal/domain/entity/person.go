package entity

import (
	"strconv"
	"strings"
)

// Person is a team member that can be assigned to a shift.
type Person struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	ShortCode string `json:"short" yaml:"short"`
}

// Team is the ordered list of people taking part in the rotation.
// Declaration order drives both the rotation index and the evening order.
type Team []Person

func (t Team) ByID(id int) (Person, bool) {
	for _, p := range t {
		if p.ID == id {
			return p, true
		}
	}
	return Person{}, false
}

func (t Team) ByShortCode(code string) (Person, bool) {
	for _, p := range t {
		if strings.EqualFold(p.ShortCode, code) {
			return p, true
		}
	}
	return Person{}, false
}

// Lookup resolves free text typed by a user: a numeric id, a short code,
// or an unambiguous case-insensitive name prefix.
func (t Team) Lookup(ref string) (Person, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Person{}, false
	}

	if id, err := strconv.Atoi(ref); err == nil {
		return t.ByID(id)
	}

	if p, ok := t.ByShortCode(ref); ok {
		return p, true
	}

	var match Person
	found := 0
	lower := strings.ToLower(ref)
	for _, p := range t {
		if strings.HasPrefix(strings.ToLower(p.Name), lower) {
			match = p
			found++
		}
	}
	if found != 1 {
		return Person{}, false
	}
	return match, true
}

// Without returns the team minus the given person, keeping declaration order.
func (t Team) Without(id int) []Person {
	out := make([]Person, 0, len(t))
	for _, p := range t {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
