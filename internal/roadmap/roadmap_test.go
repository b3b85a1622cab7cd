package roadmap

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan(seed int64) *Plan {
	return Generate(rand.New(rand.NewSource(seed)), time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
}

func TestGenerate_SevenDays(t *testing.T) {
	plan := testPlan(1)

	require.Len(t, plan.Days, PlanDays)
	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.Day)
		assert.NotEmpty(t, day.Theme)
		assert.NotEmpty(t, day.Date)
	}
}

func TestGenerate_TaskWindows(t *testing.T) {
	plan := testPlan(1)

	// Days overlap by one task; the final day gets a single task
	for i := 0; i < PlanDays-1; i++ {
		require.Len(t, plan.Days[i].Tasks, 2, "day %d", i+1)
		assert.Equal(t, plan.Days[i].Tasks[1].Title, plan.Days[i+1].Tasks[0].Title)
	}
	assert.Len(t, plan.Days[PlanDays-1].Tasks, 1)
}

func TestGenerate_TaskInvariants(t *testing.T) {
	plan := testPlan(3)

	ids := map[string]bool{}
	for _, day := range plan.Days {
		totalMinutes := 0
		completed := 0
		for _, task := range day.Tasks {
			assert.NotEmpty(t, task.ID)
			assert.False(t, ids[task.ID], "task IDs must be unique")
			ids[task.ID] = true

			assert.NotEmpty(t, task.Resource.URL)
			assert.Greater(t, task.Duration, 0)

			totalMinutes += task.Duration
			if task.Completed {
				completed++
			}
		}
		assert.Equal(t, totalMinutes, day.TotalMinutes)
		assert.Equal(t, completed, day.CompletedTasks)
	}
}

func TestGenerate_SeededDeterminism(t *testing.T) {
	first := testPlan(42)
	second := testPlan(42)

	for i := range first.Days {
		for j := range first.Days[i].Tasks {
			assert.Equal(t,
				first.Days[i].Tasks[j].Completed,
				second.Days[i].Tasks[j].Completed)
		}
	}
}

func TestRegenerate_DiscardsPriorState(t *testing.T) {
	plan := testPlan(1)
	taskID := plan.Days[0].Tasks[0].ID
	require.NoError(t, plan.ToggleTask(taskID))

	fresh := testPlan(2)
	err := fresh.ToggleTask(taskID)

	var notFound *ErrTaskNotFound
	assert.ErrorAs(t, err, &notFound, "regenerated plans carry all-new task IDs")
}

func TestToggleTask_FlipsAndRecounts(t *testing.T) {
	plan := testPlan(1)
	task := plan.Days[0].Tasks[0]
	before := plan.Days[0].CompletedTasks

	require.NoError(t, plan.ToggleTask(task.ID))
	if task.Completed {
		assert.Equal(t, before-1, plan.Days[0].CompletedTasks)
	} else {
		assert.Equal(t, before+1, plan.Days[0].CompletedTasks)
	}

	require.NoError(t, plan.ToggleTask(task.ID))
	assert.Equal(t, before, plan.Days[0].CompletedTasks)
}

func TestToggleTask_UnknownID(t *testing.T) {
	plan := testPlan(1)
	err := plan.ToggleTask("not-a-task")

	var notFound *ErrTaskNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestProgress_Bounds(t *testing.T) {
	plan := testPlan(5)
	progress := plan.Progress()
	assert.GreaterOrEqual(t, progress, 0.0)
	assert.LessOrEqual(t, progress, 100.0)

	empty := &Plan{}
	assert.Equal(t, 0.0, empty.Progress())
}

func TestProgress_AllComplete(t *testing.T) {
	plan := testPlan(1)
	for _, day := range plan.Days {
		for _, task := range day.Tasks {
			if !task.Completed {
				require.NoError(t, plan.ToggleTask(task.ID))
			}
		}
	}
	assert.Equal(t, 100.0, plan.Progress())

	completed, total := plan.Totals()
	assert.Equal(t, total, completed)
}
