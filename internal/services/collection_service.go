package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

var (
	ErrCustomerNotFound = errors.New("customer not found in collections queue")
	ErrTaskNotFound     = errors.New("collection task not found")
)

// CollectionService tracks collections follow-up work spun off the
// receivables queue.
type CollectionService struct {
	container *state.Container
}

func NewCollectionService(container *state.Container) *CollectionService {
	return &CollectionService{container: container}
}

// Queue returns the overdue customers with suggested actions.
func (s *CollectionService) Queue() []catalog.CollectionItem {
	return catalog.CollectionsQueue
}

// Tasks returns the follow-up tasks created so far.
func (s *CollectionService) Tasks() []state.CollectionTask {
	return s.container.Snapshot().CollectionTasks
}

// CreateTask spins a follow-up task off a collections queue entry.
func (s *CollectionService) CreateTask(customerID string) (state.CollectionTask, error) {
	var source *catalog.CollectionItem
	for i := range catalog.CollectionsQueue {
		if catalog.CollectionsQueue[i].ID == customerID {
			source = &catalog.CollectionsQueue[i]
			break
		}
	}
	if source == nil {
		return state.CollectionTask{}, ErrCustomerNotFound
	}

	task := state.CollectionTask{
		ID:           "task-" + uuid.NewString(),
		CustomerID:   source.ID,
		CustomerName: source.CustomerName,
		Amount:       source.Amount,
		DaysOverdue:  source.DaysOverdue,
		Priority:     priorityFor(source.RiskLevel),
		NextAction:   source.SuggestedAction,
		DueDate:      source.PredictedPayDate,
		Status:       "pending",
		Notes:        []string{},
	}

	err := s.container.Update(func(snap *state.Snapshot) error {
		snap.CollectionTasks = append(snap.CollectionTasks, task)
		return nil
	})
	if err != nil {
		return state.CollectionTask{}, err
	}
	return task, nil
}

// UpdateTask sets a task's status and optionally appends a note.
func (s *CollectionService) UpdateTask(taskID, status, note string) (state.CollectionTask, error) {
	var result state.CollectionTask
	err := s.container.Update(func(snap *state.Snapshot) error {
		for i := range snap.CollectionTasks {
			if snap.CollectionTasks[i].ID != taskID {
				continue
			}
			if status != "" {
				snap.CollectionTasks[i].Status = status
			}
			if note != "" {
				snap.CollectionTasks[i].Notes = append(snap.CollectionTasks[i].Notes, note)
			}
			result = snap.CollectionTasks[i]
			return nil
		}
		return ErrTaskNotFound
	})
	if err != nil {
		return state.CollectionTask{}, err
	}
	return result, nil
}

func priorityFor(risk catalog.RiskLevel) string {
	switch risk {
	case catalog.RiskHigh:
		return "high"
	case catalog.RiskMedium:
		return "medium"
	default:
		return "low"
	}
}
