package domain

import (
	"encoding/json"
	"fmt"
)

// HookEventBase contains fields common to all hook events from Claude Code.
// None of them are required by the hooks in this module.
type HookEventBase struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	Cwd            string `json:"cwd"`
	PermissionMode string `json:"permission_mode"`
	HookEventName  string `json:"hook_event_name"`
}

// HookEvent is the payload sent to PreToolUse and PostToolUse hooks.
type HookEvent struct {
	HookEventBase
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
}

// ParseHookEvent parses raw JSON into a HookEvent.
func ParseHookEvent(data []byte) (*HookEvent, error) {
	var event HookEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to parse hook event: %w", err)
	}
	return &event, nil
}

// Command returns tool_input.command (Bash tool).
func (e *HookEvent) Command() string {
	return e.inputString("command")
}

// FilePath returns tool_input.file_path (Edit/Write tools).
func (e *HookEvent) FilePath() string {
	return e.inputString("file_path")
}

// inputString reads a string field of tool_input. Missing fields, non-string
// values and non-object inputs all read as "".
func (e *HookEvent) inputString(key string) string {
	if len(e.ToolInput) == 0 {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(e.ToolInput, &m); err != nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
