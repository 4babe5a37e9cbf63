package tasks

import (
	"sync"

	"google.golang.org/genproto/googleapis/type/dayofweek"
)

// Status of a task. Declared as a list of members.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusStarted    Status = "STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Priority of a task. Declared as a name to value mapping.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// Color tags a task on the board. Color_name has the shape of generated enum
// code and is declared as a foreign enum.
type Color int32

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
)

var Color_name = map[Color]string{
	0: "RED",
	1: "GREEN",
	2: "BLUE",
}

type Task struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Status   Status              `json:"status"`
	Priority Priority            `json:"priority"`
	Color    Color               `json:"color"`
	Due      dayofweek.DayOfWeek `json:"due"`
	Labels   []string            `json:"labels"`
}

// Server is an in-memory task store used by the resolvers.
type Server struct {
	mu    sync.RWMutex
	tasks []*Task
}

// NewServer creates a Server with seed data.
func NewServer() *Server {
	return &Server{
		tasks: []*Task{
			{
				ID:       "t1",
				Title:    "Write release notes",
				Status:   StatusOpen,
				Priority: PriorityHigh,
				Color:    ColorRed,
				Due:      dayofweek.DayOfWeek_FRIDAY,
				Labels:   []string{"docs"},
			},
			{
				ID:       "t2",
				Title:    "Fix flaky login test",
				Status:   StatusStarted,
				Priority: PriorityMedium,
				Color:    ColorGreen,
				Due:      dayofweek.DayOfWeek_MONDAY,
				Labels:   []string{"bug", "ci"},
			},
			{
				ID:       "t3",
				Title:    "Clean up old branches",
				Status:   StatusDone,
				Priority: PriorityLow,
				Color:    ColorBlue,
				Due:      dayofweek.DayOfWeek_DAY_OF_WEEK_UNSPECIFIED,
				Labels:   []string{"chore"},
			},
		},
	}
}

func (s *Server) list(filter func(*Task) bool) []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Server) find(id string) *Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Server) setStatus(id string, status Status) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			t.Status = status
			return t
		}
	}
	return nil
}
