package dashboard

import (
	"slices"
	"time"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

// DefaultUpcomingLimit is used when UpcomingTasks is called with a
// non-positive limit.
const DefaultUpcomingLimit = 5

// UpcomingTask is an open task annotated relative to the reference date.
type UpcomingTask struct {
	record.Task
	Overdue bool
}

// UpcomingTasks returns open tasks ordered by due date, at most limit of them.
// Tasks due on the same date keep their input order. Overdue tasks are
// included and flagged.
func UpcomingTasks(tasks []record.Task, ref time.Time, limit int) []UpcomingTask {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	open := make([]record.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != record.TaskCompleted {
			open = append(open, t)
		}
	}

	slices.SortStableFunc(open, func(a, b record.Task) int {
		return a.DueDate.Compare(b.DueDate)
	})

	if len(open) > limit {
		open = open[:limit]
	}

	today := record.CivilDay(ref, time.UTC)

	out := make([]UpcomingTask, len(open))
	for i, t := range open {
		out[i] = UpcomingTask{
			Task:    t,
			Overdue: record.CivilDay(t.DueDate, time.UTC).Before(today),
		}
	}

	return out
}

// CategoryGroup holds the tasks sharing one category label.
type CategoryGroup struct {
	Category string
	Tasks    []record.Task
}

// TasksByCategory partitions tasks by category. Groups appear in order of
// first occurrence and each group keeps input order.
func TasksByCategory(tasks []record.Task) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)

	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, CategoryGroup{Category: t.Category})
		}

		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	return groups
}

// ActiveTaskCount counts tasks that are not Completed.
func ActiveTaskCount(tasks []record.Task) int {
	return countTasks(tasks, func(t record.Task) bool { return t.Status != record.TaskCompleted })
}

// PriorityTaskCount counts High and Urgent tasks regardless of status.
func PriorityTaskCount(tasks []record.Task) int {
	return countTasks(tasks, func(t record.Task) bool { return t.Priority.Elevated() })
}

func InProgressTaskCount(tasks []record.Task) int {
	return countTasks(tasks, func(t record.Task) bool { return t.Status == record.TaskInProgress })
}

// DueWithin counts open tasks due in [ref, ref+days) by calendar day.
func DueWithin(tasks []record.Task, ref time.Time, days int) int {
	from := record.CivilDay(ref, time.UTC)
	to := from.AddDate(0, 0, days)

	return countTasks(tasks, func(t record.Task) bool {
		if t.Status == record.TaskCompleted {
			return false
		}

		due := record.CivilDay(t.DueDate, time.UTC)

		return !due.Before(from) && due.Before(to)
	})
}

func countTasks(tasks []record.Task, match func(record.Task) bool) int {
	n := 0

	for _, t := range tasks {
		if match(t) {
			n++
		}
	}

	return n
}
