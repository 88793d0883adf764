package domain

import "time"

type LogEntry struct {
	ID        string
	GoalID    string
	Type      LogType
	Reason    string
	CreatedAt time.Time
}

func NewLogEntry(goalID string, logType LogType, reason string, now time.Time) LogEntry {
	return LogEntry{
		ID:        NewID(),
		GoalID:    goalID,
		Type:      logType,
		Reason:    reason,
		CreatedAt: now.UTC(),
	}
}

func (l *LogEntry) IsFailure() bool {
	return l.Type == LogFailure
}
