package garden

import (
	"strings"

	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/ledger"
	"github.com/julianstephens/petgarden/internal/models"
)

func (g *Garden) AddStudent(name string) (models.Student, error) {
	if err := g.requireActive(); err != nil {
		return models.Student{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Student{}, errs.ErrEmptyName
	}
	s := g.ledger.AddStudent(name)
	return s, g.persist(constants.KeyStudents)
}

func (g *Garden) RenameStudent(id, name string) (models.Student, error) {
	if err := g.requireActive(); err != nil {
		return models.Student{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Student{}, errs.ErrEmptyName
	}
	s, err := g.ledger.RenameStudent(id, name)
	if err != nil {
		return models.Student{}, err
	}
	return s, g.persist(constants.KeyStudents)
}

func (g *Garden) Student(id string) (models.Student, error) {
	if err := g.requireActive(); err != nil {
		return models.Student{}, err
	}
	return g.ledger.Roster().Get(id)
}

// Students lists the roster, filtered by query when it is not empty.
func (g *Garden) Students(query string) ([]models.Student, error) {
	if err := g.requireActive(); err != nil {
		return nil, err
	}
	return g.ledger.Search(query), nil
}

func (g *Garden) Award(studentID, ruleID string) (ledger.AwardResult, error) {
	if err := g.requireActive(); err != nil {
		return ledger.AwardResult{}, err
	}
	res, err := g.ledger.Award(studentID, ruleID)
	if err != nil {
		return ledger.AwardResult{}, err
	}
	return res, g.persist(constants.KeyStudents, constants.KeyRecords)
}

func (g *Garden) Adopt(req ledger.AdoptRequest) (models.Student, error) {
	if err := g.requireActive(); err != nil {
		return models.Student{}, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.Student{}, errs.ErrEmptyName
	}
	s, err := g.ledger.Adopt(req)
	if err != nil {
		return models.Student{}, err
	}
	return s, g.persist(constants.KeyStudents, constants.KeyRecords)
}

func (g *Garden) HonorRoll() ([]ledger.Standing, error) {
	if err := g.requireActive(); err != nil {
		return nil, err
	}
	return g.ledger.HonorRoll(), nil
}
