package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env testEnv) createEmployee(t *testing.T, name string) string {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/employees", map[string]string{
		"name":  name,
		"email": name + "@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)["id"].(string)
}

func (env testEnv) createTask(t *testing.T, title string, priority int, dueEpoch int64) string {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":     title,
		"priority":  priority,
		"due_epoch": dueEpoch,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)["id"].(string)
}

func TestCreateTask_NoDueDateIsNull(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":    "Fix bug",
		"priority": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "OPEN", body["status"])
	assert.Nil(t, body["due_epoch"])
}

func TestCreateTask_InvalidPriority(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":    "Fix bug",
		"priority": 9,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", decodeBody(t, w)["code"])
}

func TestListTasks_SchedulerOrder(t *testing.T) {
	env := setupTestEnv(t)

	fixBug := env.createTask(t, "Fix bug", 3, 0)
	deploy := env.createTask(t, "Deploy", 5, 1700000000)

	w := env.do(t, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	tasks := decodeBody(t, w)["tasks"].([]interface{})
	require.Len(t, tasks, 2)
	assert.Equal(t, deploy, tasks[0].(map[string]interface{})["id"])
	assert.Equal(t, fixBug, tasks[1].(map[string]interface{})["id"])
}

func TestAssignAndCompleteTask(t *testing.T) {
	env := setupTestEnv(t)

	alice := env.createEmployee(t, "Alice")
	task := env.createTask(t, "Fix bug", 3, 0)

	w := env.do(t, http.MethodPost, "/api/tasks/"+task+"/assign", map[string]string{
		"employee_id": alice,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{task}, env.workspace.AssignedTasks(alice))

	w = env.do(t, http.MethodPost, "/api/tasks/"+task+"/complete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.workspace.AssignedTasks(alice))

	w = env.do(t, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks := decodeBody(t, w)["tasks"].([]interface{})
	require.Len(t, tasks, 1)
	assert.Equal(t, "COMPLETED", tasks[0].(map[string]interface{})["status"])
}

func TestAssignTask_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	alice := env.createEmployee(t, "Alice")

	w := env.do(t, http.MethodPost, "/api/tasks/missing/assign", map[string]string{
		"employee_id": alice,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])
}

func TestCompleteTask_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/tasks/missing/complete", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])
}

func TestShowHistory(t *testing.T) {
	env := setupTestEnv(t)

	env.createEmployee(t, "Alice")
	env.createTask(t, "Fix bug", 3, 0)

	w := env.do(t, http.MethodGet, "/api/history?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	entries := decodeBody(t, w)["history"].([]interface{})
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].(map[string]interface{})["description"], "Created task")
}

func TestShowHistory_InvalidLimit(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/history?limit=zero", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResync(t *testing.T) {
	env := setupTestEnv(t)

	env.createTask(t, "Fix bug", 3, 0)

	w := env.do(t, http.MethodPost, "/api/admin/resync", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/tasks", nil)
	tasks := decodeBody(t, w)["tasks"].([]interface{})
	assert.Len(t, tasks, 1)
}
