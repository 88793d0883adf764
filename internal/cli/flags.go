package cli

import (
	"strings"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/spf13/pflag"
)

// noteTypeFlag, noteImpactFlag and logTypeFlag reject unknown values at
// flag parse time so a typo never reaches the service.

type noteTypeFlag struct{ v domain.NoteType }

var _ pflag.Value = (*noteTypeFlag)(nil)

func (f *noteTypeFlag) String() string { return string(f.v) }
func (f *noteTypeFlag) Type() string   { return "type" }

func (f *noteTypeFlag) Set(s string) error {
	t, err := domain.ParseNoteType(s)
	if err != nil {
		return err
	}
	f.v = t
	return nil
}

type noteImpactFlag struct{ v domain.NoteImpact }

var _ pflag.Value = (*noteImpactFlag)(nil)

func (f *noteImpactFlag) String() string { return string(f.v) }
func (f *noteImpactFlag) Type() string   { return "impact" }

func (f *noteImpactFlag) Set(s string) error {
	i, err := domain.ParseNoteImpact(s)
	if err != nil {
		return err
	}
	f.v = i
	return nil
}

type logTypeFlag struct{ v domain.LogType }

var _ pflag.Value = (*logTypeFlag)(nil)

func (f *logTypeFlag) String() string { return string(f.v) }
func (f *logTypeFlag) Type() string   { return "type" }

func (f *logTypeFlag) Set(s string) error {
	t, err := domain.ParseLogType(s)
	if err != nil {
		return err
	}
	f.v = t
	return nil
}

func noteTypeChoices() string {
	names := make([]string, len(domain.ValidNoteTypes))
	for i, t := range domain.ValidNoteTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}

func noteImpactChoices() string {
	names := make([]string, len(domain.ValidNoteImpacts))
	for i, t := range domain.ValidNoteImpacts {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}

func logTypeChoices() string {
	names := make([]string, len(domain.ValidLogTypes))
	for i, t := range domain.ValidLogTypes {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}
