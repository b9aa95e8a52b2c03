package ops

import "github.com/jacksmith/todo/internal/model"

// Store is the task storage the operations run against.
// storage.Memory implements it.
type Store interface {
	List() []model.Task
	Get(id string) (model.Task, error)
	Insert(t model.Task) error
	Update(id string, fn func(*model.Task) error) (model.Task, error)
	Delete(id string) int
}
