package guardian

import "errors"

var ErrNotFound = errors.New("guardian not found")

type (
	Repository interface {
		CreateGuardian(g Guardian) (Guardian, error)
		QueryAllGuardians() ([]Guardian, error)
		GetGuardianByID(id int) (Guardian, error)
		UpdateGuardian(g Guardian) (Guardian, error)
		DeleteGuardian(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ng NewGuardian) (Guardian, error) {
	return svc.repo.CreateGuardian(Guardian{
		Name:  ng.Name,
		Email: ng.Email,
		Phone: ng.Phone,
	})
}

func (svc *Service) QueryAll() ([]Guardian, error) {
	return svc.repo.QueryAllGuardians()
}

func (svc *Service) GetByID(id int) (Guardian, error) {
	return svc.repo.GetGuardianByID(id)
}

func (svc *Service) Update(id int, ug UpdateGuardian) (Guardian, error) {
	return svc.repo.UpdateGuardian(Guardian{
		ID:    id,
		Name:  ug.Name,
		Email: ug.Email,
		Phone: ug.Phone,
	})
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteGuardian(id)
}
