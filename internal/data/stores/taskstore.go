package stores

import (
	"encoding/json"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"blocpad/internal/core/task"
)

// taskFile is the root JSON structure for the daily-task widget. The stored
// last-reset date drives the once-per-day completion reset.
type taskFile struct {
	Tasks     []task.Task `json:"tasks"`
	LastReset string      `json:"lastReset"`
}

// TaskStore persists the daily-task list.
type TaskStore struct {
	path string
	mu   sync.Mutex
}

// NewTaskStore creates a task store rooted in dataDir.
func NewTaskStore(dataDir string) *TaskStore {
	return &TaskStore{path: filepath.Join(dataDir, TasksFile)}
}

// Load returns the task list with the daily reset applied. When a reset
// happens the cleared state is written back immediately.
func (s *TaskStore) Load(now time.Time) []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := s.read()
	tasks, reset := task.ResetForDay(file.Tasks, file.LastReset, now)
	if reset {
		file.Tasks = tasks
		file.LastReset = task.DateStamp(now)
		if err := writeJSON(s.path, file); err != nil {
			log.Warn().Err(err).Msg("persist daily task reset")
		}
	}
	return tasks
}

// Save overwrites the stored task list, stamping today as the reset marker.
func (s *TaskStore) Save(tasks []task.Task, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tasks == nil {
		tasks = []task.Task{}
	}
	return writeJSON(s.path, taskFile{Tasks: tasks, LastReset: task.DateStamp(now)})
}

func (s *TaskStore) read() taskFile {
	data, err := readFile(s.path)
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("read tasks file")
		return taskFile{}
	}
	if len(data) == 0 {
		return taskFile{}
	}

	var file taskFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("malformed tasks file, starting empty")
		return taskFile{}
	}
	return file
}
