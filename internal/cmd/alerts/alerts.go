// Package alerts prints the human-readable status lines of a reconcile run.
package alerts

import (
	"fmt"
	"strconv"

	"github.com/agentstation/pricemap/internal/cmd/emoji"
)

// Level is the kind of status line.
type Level int

const (
	LevelSuccess Level = iota
	LevelInfo
	LevelWarning
)

var levels = [...]struct {
	name, icon, color string
}{
	LevelSuccess: {"success", emoji.Success, "\033[32m"},
	LevelInfo:    {"info", emoji.Info, "\033[36m"},
	LevelWarning: {"warning", emoji.Warning, "\033[33m"},
}

const resetColor = "\033[0m"

func (l Level) valid() bool { return l >= 0 && int(l) < len(levels) }

func (l Level) String() string {
	if !l.valid() {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	return levels[l].name
}

// Icon is printed at the start of the line.
func (l Level) Icon() string {
	if !l.valid() {
		return emoji.Info
	}
	return levels[l].icon
}

// Color is the ANSI escape used on terminals.
func (l Level) Color() string {
	if !l.valid() {
		return resetColor
	}
	return levels[l].color
}

// Alert is one status line with optional indented details.
type Alert struct {
	Level   Level
	Message string
	Details []string
}

func NewSuccess(msg string) *Alert { return &Alert{Level: LevelSuccess, Message: msg} }
func NewInfo(msg string) *Alert    { return &Alert{Level: LevelInfo, Message: msg} }
func NewWarning(msg string) *Alert { return &Alert{Level: LevelWarning, Message: msg} }

// Infof formats an info message.
func Infof(format string, args ...any) *Alert { return NewInfo(fmt.Sprintf(format, args...)) }

// WithDetails appends lines printed under the message.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

func (a *Alert) String() string {
	return a.Level.Icon() + " " + a.Message
}
