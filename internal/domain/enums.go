package domain

import (
	"fmt"
	"strings"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	// GoalFailed is part of the persisted model but no command produces it.
	GoalFailed GoalStatus = "failed"
)

type NoteType string

const (
	NoteReflection NoteType = "Reflection"
	NoteIdea       NoteType = "Idea"
	NoteProblem    NoteType = "Problem"
	NoteLesson     NoteType = "Lesson Learned"
)

// ValidNoteTypes lists the accepted note types in display order.
var ValidNoteTypes = []NoteType{NoteReflection, NoteIdea, NoteProblem, NoteLesson}

type NoteImpact string

const (
	ImpactPositive NoteImpact = "Positive"
	ImpactNeutral  NoteImpact = "Neutral"
	ImpactNegative NoteImpact = "Negative"
)

// ValidNoteImpacts lists the accepted note impacts in display order.
var ValidNoteImpacts = []NoteImpact{ImpactPositive, ImpactNeutral, ImpactNegative}

type LogType string

const (
	LogFailure LogType = "failure"
	LogSuccess LogType = "success"
	LogInfo    LogType = "info"
)

// ValidLogTypes lists the accepted log entry types.
var ValidLogTypes = []LogType{LogFailure, LogSuccess, LogInfo}

// ParseNoteType matches s case-insensitively against the known note types.
// An empty string yields the default, Reflection.
func ParseNoteType(s string) (NoteType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoteReflection, nil
	}
	for _, t := range ValidNoteTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	// "lesson" is accepted as shorthand for "Lesson Learned".
	if strings.EqualFold(s, "lesson") {
		return NoteLesson, nil
	}
	return "", &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown note type %q", s)}
}

// ParseNoteImpact matches s case-insensitively against the known impacts.
// An empty string yields the default, Neutral.
func ParseNoteImpact(s string) (NoteImpact, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ImpactNeutral, nil
	}
	for _, i := range ValidNoteImpacts {
		if strings.EqualFold(string(i), s) {
			return i, nil
		}
	}
	return "", &ValidationError{Field: "impact", Reason: fmt.Sprintf("unknown note impact %q", s)}
}

// ParseLogType matches s case-insensitively against the known log types.
func ParseLogType(s string) (LogType, error) {
	s = strings.TrimSpace(s)
	for _, t := range ValidLogTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown log type %q", s)}
}
