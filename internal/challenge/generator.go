package challenge

import (
	"math/rand"
	"time"

	"github.com/delbyte/codeolympics/internal/models"
)

// Generator draws challenges, one part from each catalog, each chosen
// independently and uniformly at random.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *Generator) Generate() models.Challenge {
	return models.Challenge{
		Constraint: CoreConstraints[g.rnd.Intn(len(CoreConstraints))],
		Budget:     LineBudgets[g.rnd.Intn(len(LineBudgets))],
		Domain:     ProjectDomains[g.rnd.Intn(len(ProjectDomains))],
	}
}
