package usercode

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"donations-api/internal/domain/user"
)

var ErrUnknownRole = errors.New("unknown role")

// Generator produces the short human-facing codes printed on donation
// paperwork: "D-1234" for donors, "B-1234" for beneficiaries. The 4-digit
// part is drawn uniformly from [1000, 9999] and is NOT checked for
// collisions against the store; with ~9000 values per role that is an
// accepted risk at this platform's scale.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New builds a Generator from the given source so tests can seed it.
func New(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

func (g *Generator) Generate(role string) (string, error) {
	var prefix string
	switch role {
	case user.RoleDonor:
		prefix = "D"
	case user.RoleBeneficiary:
		prefix = "B"
	default:
		return "", ErrUnknownRole
	}

	// rand.Rand is not safe for concurrent use
	g.mu.Lock()
	n := 1000 + g.rnd.Intn(9000)
	g.mu.Unlock()

	return fmt.Sprintf("%s-%d", prefix, n), nil
}
