package model

import "time"

// Todo mirrors a todo item of the remote API.
type Todo struct {
	ID        int64     `json:"id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
	CreatedBy int64     `json:"createdBy"`
	UpdatedBy int64     `json:"updatedBy"`
	Done      bool      `json:"done"`
}

// TodoList is the body of GET /api/v1/todos.
type TodoList struct {
	Count  int    `json:"count"`
	Result []Todo `json:"result"`
}

// NewTodo is the body of POST /api/v1/todos.
type NewTodo struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy int64  `json:"createdBy"`
	Done      bool   `json:"done"`
}

// TodoPatch carries the fields of a partial update. Nil fields are left out.
type TodoPatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Done    *bool   `json:"done,omitempty"`
}

// Envelope is the status reply the remote API sends for failures and for
// delete/patch acknowledgements.
type Envelope struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message"`
}

// Failed reports whether the envelope explicitly carries success=false.
func (e Envelope) Failed() bool {
	return e.Success != nil && !*e.Success
}
