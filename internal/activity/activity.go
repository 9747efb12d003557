package activity

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Logger receives human-readable scene activity, tagged with an icon name
// the UI can use for the log pane.
type Logger interface {
	Log(message, icon string)
}

// StdLogger writes activity lines through the standard logger
type StdLogger struct {
	Out *log.Logger
}

// NewStdLogger creates a logger writing to stderr with the standard flags
func NewStdLogger() *StdLogger {
	return &StdLogger{Out: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *StdLogger) Log(message, icon string) {
	out := l.Out
	if out == nil {
		out = log.Default()
	}
	if icon == "" {
		out.Printf("[*] %s", message)
		return
	}
	out.Printf("[*] [%s] %s", icon, message)
}

// Entry is one recorded activity line
type Entry struct {
	Time    time.Time
	Message string
	Icon    string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s [%s] %s", e.Time.Format("15:04:05"), e.Icon, e.Message)
}

// Recorder keeps activity in memory and optionally forwards it
type Recorder struct {
	Entries []Entry
	Next    Logger
}

func (r *Recorder) Log(message, icon string) {
	r.Entries = append(r.Entries, Entry{Time: time.Now(), Message: message, Icon: icon})
	if r.Next != nil {
		r.Next.Log(message, icon)
	}
}

// Messages returns the recorded messages in order
func (r *Recorder) Messages() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Message
	}
	return out
}

// Discard drops every line
type Discard struct{}

func (Discard) Log(string, string) {}
