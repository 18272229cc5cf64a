package user

// JoinRow is one row of a User LEFT JOIN ToDoItem result.
// TodoID is nil when the user has no matching to-do row.
type JoinRow struct {
	User
	TodoID        *int64
	TodoTitle     string
	TodoCompleted bool
}

// GroupJoinRows folds join rows into users with nested todos.
//
// Users are returned in the order their id first appears; todos keep row
// order within their user. A user whose rows carry no todo id gets an
// empty, non-nil Todos slice. A todo id seen twice for the same user is
// kept once.
func GroupJoinRows(rows []JoinRow) []WithTodos {
	out := make([]WithTodos, 0)
	index := make(map[int64]int)
	seen := make(map[int64]map[int64]struct{})

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(out)
			index[row.ID] = i
			seen[row.ID] = make(map[int64]struct{})
			out = append(out, WithTodos{User: row.User, Todos: []Todo{}})
		}

		if row.TodoID == nil {
			continue
		}
		if _, dup := seen[row.ID][*row.TodoID]; dup {
			continue
		}
		seen[row.ID][*row.TodoID] = struct{}{}

		out[i].Todos = append(out[i].Todos, Todo{
			ID:        *row.TodoID,
			Title:     row.TodoTitle,
			Completed: row.TodoCompleted,
		})
	}

	return out
}
