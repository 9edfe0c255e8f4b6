package student

import "errors"

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		UpdateStudent(s Student) (Student, error)
		DeleteStudent(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	return svc.repo.CreateStudent(Student{
		Name:       ns.Name,
		Class:      ns.Class,
		GuardianID: ns.GuardianID,
	})
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) Update(id int, us UpdateStudent) (Student, error) {
	return svc.repo.UpdateStudent(Student{
		ID:         id,
		Name:       us.Name,
		Class:      us.Class,
		GuardianID: us.GuardianID,
	})
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteStudent(id)
}
