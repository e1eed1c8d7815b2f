package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renato0307/keycap/internal/adapters/listener"
)

// ListenerCmd controls the global hotkey listener marker
type ListenerCmd struct {
	Resume  ListenerResumeCmd  `cmd:"resume" help:"Resume global hotkey handling"`
	Status  ListenerStatusCmd  `cmd:"status" help:"Show whether the listener is suspended" default:"1"`
	Suspend ListenerSuspendCmd `cmd:"suspend" help:"Suspend global hotkey handling"`
	Watch   ListenerWatchCmd   `cmd:"watch" help:"Print listener state changes until interrupted"`
}

// ListenerStatusCmd shows the listener state
type ListenerStatusCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the status command
func (l *ListenerStatusCmd) Run(cli *CLI) error {
	status, err := cli.Container.Listener.Status()
	if err != nil {
		return fmt.Errorf("failed to read listener state: %w", err)
	}

	if l.Format == "json" {
		output := map[string]any{
			"marker":    cli.Container.Listener.Path(),
			"suspended": status.Suspended,
		}
		if status.Suspended {
			output["pid"] = status.PID
			output["suspended_at"] = status.Since
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(describeStatus(status))
	fmt.Printf("Marker: %s\n", cli.Container.Listener.Path())
	return nil
}

// ListenerSuspendCmd suspends the listener
type ListenerSuspendCmd struct{}

// Run executes the suspend command
func (l *ListenerSuspendCmd) Run(cli *CLI) error {
	if suspended, err := cli.Container.Listener.IsSuspended(); err == nil && suspended {
		fmt.Println("Listener already suspended")
		return nil
	}
	if err := cli.Container.Listener.Suspend(context.Background()); err != nil {
		return err
	}
	fmt.Println("Listener suspended")
	return nil
}

// ListenerResumeCmd resumes the listener
type ListenerResumeCmd struct{}

// Run executes the resume command
func (l *ListenerResumeCmd) Run(cli *CLI) error {
	if suspended, err := cli.Container.Listener.IsSuspended(); err == nil && !suspended {
		fmt.Println("Listener already running")
		return nil
	}
	if err := cli.Container.Listener.Resume(context.Background()); err != nil {
		return err
	}
	fmt.Println("Listener running")
	return nil
}

// ListenerWatchCmd prints state changes
type ListenerWatchCmd struct{}

// Run executes the watch command
func (l *ListenerWatchCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Container.Listener.Watch(ctx, func(status listener.Status) {
		fmt.Printf("%s  %s\n", time.Now().Format("15:04:05"), describeStatus(status))
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to watch listener: %w", err)
	}
	return nil
}

func describeStatus(status listener.Status) string {
	if !status.Suspended {
		return "Listener running"
	}
	return fmt.Sprintf("Listener suspended by pid %d since %s", status.PID, status.Since.Format(time.RFC3339))
}
