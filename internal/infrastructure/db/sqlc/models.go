package sqlc

import "database/sql"

type Task struct {
	ID          int64
	Title       string
	Description sql.NullString
	Status      string
	Deadline    string
	CreatedAt   string
}
