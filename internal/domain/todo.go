package domain

// Task rows are soft-deleted: Show=false hides them everywhere.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type TodoList struct {
	Name string `json:"name"`
}
