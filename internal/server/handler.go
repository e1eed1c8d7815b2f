package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/ui"
)

// connectionModel wraps ui.Model so a dropped connection cannot leave a
// recording open on the shared capture manager
type connectionModel struct {
	connID      string
	mu          sync.Mutex
	model       *ui.Model
	once        sync.Once
	startTime   time.Time
	unsubscribe func()
}

func (c *connectionModel) Init() tea.Cmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model.Init()
}

func (c *connectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		c.teardown()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, cmd := c.model.Update(msg)
	return c, cmd
}

func (c *connectionModel) View() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model.View()
}

// teardown cancels an open capture and drops the outcome subscription.
// Safe to call more than once.
func (c *connectionModel) teardown() {
	c.once.Do(func() {
		c.mu.Lock()
		c.model.Teardown(context.Background())
		c.mu.Unlock()

		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		logging.Logger.Info("SSH session ended",
			"conn_id", c.connID,
			"duration", time.Since(c.startTime).String())
	})
}

// teaHandler creates a Bubbletea model for each SSH connection. Every
// connection edits the same shortcuts through the shared capture manager.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	connID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"conn_id", connID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	outcomes, unsubscribe := s.hub.Subscribe()
	model := ui.NewModel(s.manager, outcomes, false)
	if s.listener != nil {
		model.SetListenerStatus(s.listener)
	}
	conn := &connectionModel{
		connID:      connID,
		model:       model,
		startTime:   time.Now(),
		unsubscribe: unsubscribe,
	}

	go func() {
		<-sess.Context().Done()
		conn.teardown()
	}()

	return conn, []tea.ProgramOption{tea.WithAltScreen()}
}
