package dashboard_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

func task(title string, status record.TaskStatus, due time.Time, category string) record.Task {
	return record.Task{
		ID:       uuid.New(),
		Title:    title,
		Priority: record.PriorityMedium,
		Status:   status,
		DueDate:  due,
		Category: category,
	}
}

func titles(tasks []dashboard.UpcomingTask) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}

	return out
}

func TestUpcomingTasks_Scenario(t *testing.T) {
	tasks := []record.Task{
		task("prune", record.TaskPending, day(2025, 11, 10), "Maintenance"),
		task("soil", record.TaskCompleted, day(2025, 11, 5), "Analysis"),
		task("plant", record.TaskInProgress, day(2025, 11, 5), "Planting"),
	}

	got := dashboard.UpcomingTasks(tasks, day(2025, 11, 3), 5)

	assert.Equal(t, []string{"plant", "prune"}, titles(got))
}

func TestUpcomingTasks(t *testing.T) {
	type args struct {
		tasks []record.Task
		ref   time.Time
		limit int
	}

	type testCase struct {
		name string
		args args
		want []string
	}

	many := make([]record.Task, 0, 8)
	for i := range 8 {
		many = append(many, task(string(rune('a'+i)), record.TaskPending, day(2025, 11, 20-i), "Planning"))
	}

	tests := []testCase{
		{
			name: "Empty",
			args: args{ref: day(2025, 11, 3), limit: 5},
			want: []string{},
		},
		{
			name: "AllCompleted",
			args: args{
				tasks: []record.Task{task("x", record.TaskCompleted, day(2025, 11, 1), "A")},
				ref:   day(2025, 11, 3),
				limit: 5,
			},
			want: []string{},
		},
		{
			name: "StableOnEqualDueDates",
			args: args{
				tasks: []record.Task{
					task("first", record.TaskPending, day(2025, 11, 5), "A"),
					task("early", record.TaskPending, day(2025, 11, 4), "A"),
					task("second", record.TaskInProgress, day(2025, 11, 5), "B"),
					task("third", record.TaskPending, day(2025, 11, 5), "A"),
				},
				ref:   day(2025, 11, 3),
				limit: 5,
			},
			want: []string{"early", "first", "second", "third"},
		},
		{
			name: "TruncatesToLimit",
			args: args{tasks: many, ref: day(2025, 11, 1), limit: 3},
			want: []string{"h", "g", "f"},
		},
		{
			name: "NonPositiveLimitUsesDefault",
			args: args{tasks: many, ref: day(2025, 11, 1), limit: 0},
			want: []string{"h", "g", "f", "e", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dashboard.UpcomingTasks(tt.args.tasks, tt.args.ref, tt.args.limit)

			assert.Equal(t, tt.want, titles(got))

			for i, u := range got {
				assert.NotEqual(t, record.TaskCompleted, u.Status)

				if i > 0 {
					assert.False(t, u.DueDate.Before(got[i-1].DueDate), "not sorted at %d", i)
				}
			}
		})
	}
}

func TestUpcomingTasks_DoesNotMutateInput(t *testing.T) {
	tasks := []record.Task{
		task("late", record.TaskPending, day(2025, 11, 30), "A"),
		task("soon", record.TaskPending, day(2025, 11, 2), "A"),
	}

	_ = dashboard.UpcomingTasks(tasks, day(2025, 11, 1), 5)

	assert.Equal(t, "late", tasks[0].Title)
	assert.Equal(t, "soon", tasks[1].Title)
}

func TestUpcomingTasks_Overdue(t *testing.T) {
	tasks := []record.Task{
		task("overdue", record.TaskPending, day(2025, 10, 28), "A"),
		task("today", record.TaskPending, day(2025, 11, 3), "A"),
		task("later", record.TaskPending, day(2025, 11, 9), "A"),
	}

	got := dashboard.UpcomingTasks(tasks, time.Date(2025, 11, 3, 17, 45, 0, 0, time.UTC), 5)
	require.Len(t, got, 3)

	assert.True(t, got[0].Overdue)
	assert.False(t, got[1].Overdue)
	assert.False(t, got[2].Overdue)
}

func TestTasksByCategory(t *testing.T) {
	a1 := task("a1", record.TaskPending, day(2025, 11, 1), "Maintenance")
	b1 := task("b1", record.TaskCompleted, day(2025, 11, 2), "Planning")
	a2 := task("a2", record.TaskPending, day(2025, 11, 3), "Maintenance")
	c1 := task("c1", record.TaskInProgress, day(2025, 11, 4), "")
	b2 := task("b2", record.TaskPending, day(2025, 11, 5), "Planning")

	input := []record.Task{a1, b1, a2, c1, b2}
	got := dashboard.TasksByCategory(input)

	assert.Equal(t, []dashboard.CategoryGroup{
		{Category: "Maintenance", Tasks: []record.Task{a1, a2}},
		{Category: "Planning", Tasks: []record.Task{b1, b2}},
		{Category: "", Tasks: []record.Task{c1}},
	}, got)

	var flattened []record.Task
	for _, g := range got {
		flattened = append(flattened, g.Tasks...)
	}

	assert.ElementsMatch(t, input, flattened)
	assert.Len(t, flattened, len(input))
}

func TestTasksByCategory_Empty(t *testing.T) {
	assert.Empty(t, dashboard.TasksByCategory(nil))
}

func TestTaskCounts(t *testing.T) {
	ref := day(2025, 11, 3)

	urgent := task("urgent", record.TaskCompleted, day(2025, 11, 4), "A")
	urgent.Priority = record.PriorityUrgent

	high := task("high", record.TaskInProgress, day(2025, 11, 9), "A")
	high.Priority = record.PriorityHigh

	tasks := []record.Task{
		urgent,
		high,
		task("next week", record.TaskPending, day(2025, 11, 10), "A"),
		task("overdue", record.TaskPending, day(2025, 11, 2), "A"),
	}

	assert.Equal(t, 3, dashboard.ActiveTaskCount(tasks))
	assert.Equal(t, 2, dashboard.PriorityTaskCount(tasks))
	assert.Equal(t, 1, dashboard.InProgressTaskCount(tasks))
	assert.Equal(t, 1, dashboard.DueWithin(tasks, ref, 7))
}
