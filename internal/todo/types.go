package todo

// Filter 列表筛选条件 / Filter selects todos by completion status
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// Task 单条待办 / Task is a single todo item.
// ID and CreatedAt are immutable after creation; UpdatedAt is refreshed on
// every successful mutation and never decreases within a task's lifetime.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   bool     `json:"completed"`
	CreatedAt   int64    `json:"createdAt"` // milliseconds since epoch
	UpdatedAt   int64    `json:"updatedAt"` // milliseconds since epoch
	Tags        []string `json:"tags,omitempty"`
}

// Matches reports whether the task passes the filter.
func (t Task) Matches(f Filter) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}
