package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

var firstNames = []string{
	"Marcus", "Priya", "James", "Olivia", "Chen", "Sofia", "Daniel",
	"Rachel", "Andre", "Megan", "Kevin", "Laura", "Tyler", "Aisha",
	"Brandon", "Nicole", "Ryan", "Emily", "Jason", "Hannah", "David",
	"Sarah", "Mike", "Jen", "Alex", "Katie", "Chris", "Amy", "Matt",
	"Brooke", "Nathan", "Tara", "Derek", "Leah", "Greg", "Vanessa",
	"Carlos", "Heather", "Patrick", "Lisa", "Tony", "Samantha", "Eric",
	"Courtney", "Brian", "Angela", "Corey", "Dana", "Phil", "Steph",
}

var lastNames = []string{
	"Thornton", "Kapoor", "Mitchell", "Park", "Wei", "Reyes", "Carter",
	"Donovan", "Williams", "Okafor", "Singh", "Hernandez", "Foster",
	"Nakamura", "Brooks", "Kim", "Adams", "Rivera", "Cooper", "Sullivan",
	"Patel", "Johnson", "Liu", "Torres", "Bell", "Hayes", "Murphy",
	"Reed", "Coleman", "Stewart", "Phillips", "Long", "Ross", "Price",
	"Bennett", "Wood", "Barnes", "Howard", "Gray", "Watson", "Campbell",
	"Sanders", "Perry", "Powell", "Russell", "Flores", "Butler", "Ward",
}

var emailDomains = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"hotmail.com",
	"icloud.com",
	"protonmail.com",
}

const (
	emailSuffixMin = 1
	emailSuffixMax = 99
)

// Identity is a generated reviewer.
type Identity struct {
	First string
	Last  string
	Email string
}

func (i Identity) FullName() string {
	return i.First + " " + i.Last
}

type identityGenerator struct {
	rng *rand.Rand
}

// pickName draws first and last names independently.
func (g identityGenerator) pickName() (string, string) {
	return pick(g.rng, firstNames), pick(g.rng, lastNames)
}

func (g identityGenerator) deriveEmail(first, last string) string {
	n := intBetween(g.rng, emailSuffixMin, emailSuffixMax)
	return fmt.Sprintf("%s%s%d@%s", strings.ToLower(first), strings.ToLower(last), n, pick(g.rng, emailDomains))
}

func (g identityGenerator) next() Identity {
	first, last := g.pickName()
	return Identity{
		First: first,
		Last:  last,
		Email: g.deriveEmail(first, last),
	}
}

func pick[T any](rng *rand.Rand, s []T) T {
	return s[rng.IntN(len(s))]
}

// intBetween returns a uniform integer in [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
