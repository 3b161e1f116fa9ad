package domain

import "time"

type LeadStatus string

const (
	LeadPending   LeadStatus = "pending"
	LeadContacted LeadStatus = "contacted"
	LeadCompleted LeadStatus = "completed"
)

var LeadStatuses = []LeadStatus{LeadPending, LeadContacted, LeadCompleted}

func (s LeadStatus) Valid() bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Lead - заявка посетителя на просмотр объекта.
type Lead struct {
	ID         string
	PropertyID string
	Name       string
	Phone      string
	Message    string
	Status     LeadStatus
	CreatedAt  time.Time
}

// LeadAction - действие над заявкой, доступное администратору.
type LeadAction struct {
	Label  string
	Target LeadStatus
}

var (
	ActionMarkContacted = LeadAction{Label: "Mark Contacted", Target: LeadContacted}
	ActionMarkCompleted = LeadAction{Label: "Mark Completed", Target: LeadCompleted}
)

// AvailableActions возвращает действия, которые имеет смысл предложить для заявки.
// Направление переходов протоколом не ограничено: скрывается только переход в текущий статус.
func (l *Lead) AvailableActions() []LeadAction {
	var actions []LeadAction
	if l.Status != LeadContacted {
		actions = append(actions, ActionMarkContacted)
	}
	if l.Status != LeadCompleted {
		actions = append(actions, ActionMarkCompleted)
	}
	return actions
}

// NewLead - входные данные для заявки на просмотр.
type NewLead struct {
	PropertyID string
	Name       string
	Phone      string
	Message    string
}
