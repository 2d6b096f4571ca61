package domain

import (
	"fmt"
	"time"
)

// UnknownTool is recorded when the event carries no tool_name.
const UnknownTool = "Unknown"

const recordTimeLayout = "2006-01-02 15:04:05"

// EditRecord is one line of the edit audit log.
type EditRecord struct {
	Time     time.Time
	ToolName string
	FilePath string
}

// NewEditRecord builds a record stamped at t in local time.
func NewEditRecord(t time.Time, toolName, filePath string) EditRecord {
	if toolName == "" {
		toolName = UnknownTool
	}
	return EditRecord{Time: t.Local(), ToolName: toolName, FilePath: filePath}
}

// Line renders the record as a newline-terminated log line:
//
//	[2006-01-02 15:04:05] Edit: /path/to/File.swift
func (r EditRecord) Line() string {
	return fmt.Sprintf("[%s] %s: %s\n", r.Time.Format(recordTimeLayout), r.ToolName, r.FilePath)
}
