package filestore

import (
	"fmt"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
)

const timeLayout = time.RFC3339Nano

// goalsDocument is the on-disk shape of the durable slot.
type goalsDocument struct {
	Version int          `yaml:"version" json:"version"`
	Goals   []goalRecord `yaml:"goals" json:"goals"`
}

type goalRecord struct {
	ID             string            `yaml:"id" json:"id"`
	UserID         string            `yaml:"user_id,omitempty" json:"userId,omitempty"`
	Title          string            `yaml:"title" json:"title"`
	Description    string            `yaml:"description,omitempty" json:"description,omitempty"`
	Deadline       string            `yaml:"deadline,omitempty" json:"deadline,omitempty"`
	CreatedAt      string            `yaml:"created_at" json:"createdAt"`
	EstimatedHours float64           `yaml:"estimated_hours" json:"estimatedHours"`
	ActualHours    float64           `yaml:"actual_hours" json:"actualHours"`
	Status         string            `yaml:"status" json:"status"`
	Reflection     *reflectionRecord `yaml:"completion_reflection,omitempty" json:"completionReflection,omitempty"`
	CompletedAt    string            `yaml:"completed_at,omitempty" json:"completedAt,omitempty"`
	Milestones     []milestoneRecord `yaml:"milestones,omitempty" json:"milestones,omitempty"`
	Notes          []noteRecord      `yaml:"notes,omitempty" json:"notes,omitempty"`
	Logs           []logRecord       `yaml:"logs,omitempty" json:"logs,omitempty"`
	Comments       []commentRecord   `yaml:"comments,omitempty" json:"comments,omitempty"`
	Tags           []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
}

type reflectionRecord struct {
	Worked      string `yaml:"worked" json:"worked"`
	DidntWork   string `yaml:"didnt_work" json:"didntWork"`
	Differently string `yaml:"differently" json:"differently"`
}

type milestoneRecord struct {
	ID           string `yaml:"id" json:"id"`
	Title        string `yaml:"title" json:"title"`
	Description  string `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalLink string `yaml:"external_link,omitempty" json:"externalLink,omitempty"`
	IsCompleted  bool   `yaml:"is_completed" json:"isCompleted"`
	CompletedAt  string `yaml:"completed_at,omitempty" json:"completedAt,omitempty"`
}

type noteRecord struct {
	ID          string             `yaml:"id" json:"id"`
	Content     string             `yaml:"content" json:"content"`
	Type        string             `yaml:"type" json:"type"`
	Impact      string             `yaml:"impact" json:"impact"`
	CreatedAt   string             `yaml:"created_at" json:"createdAt"`
	Attachments []attachmentRecord `yaml:"attachments,omitempty" json:"attachments,omitempty"`
}

type attachmentRecord struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	MimeType  string `yaml:"mime_type" json:"type"`
	Size      string `yaml:"size" json:"size"`
	CreatedAt string `yaml:"created_at" json:"createdAt"`
}

type logRecord struct {
	ID        string `yaml:"id" json:"id"`
	Type      string `yaml:"type" json:"type"`
	Reason    string `yaml:"reason" json:"reason"`
	CreatedAt string `yaml:"created_at" json:"createdAt"`
}

type commentRecord struct {
	ID        string `yaml:"id" json:"id"`
	UserName  string `yaml:"user_name" json:"userName"`
	Content   string `yaml:"content" json:"content"`
	CreatedAt string `yaml:"created_at" json:"createdAt"`
}

type userRecord struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Bio      string `yaml:"bio,omitempty" json:"bio,omitempty"`
	Avatar   string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	JoinedAt string `yaml:"joined_at" json:"joinedAt"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatOptTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTime(s, field string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return t, nil
}

func parseOptTime(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseTime(s, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toGoalRecord(g *domain.Goal) goalRecord {
	rec := goalRecord{
		ID:             g.ID,
		UserID:         g.UserID,
		Title:          g.Title,
		Description:    g.Description,
		CreatedAt:      formatTime(g.CreatedAt),
		EstimatedHours: g.EstimatedHours,
		ActualHours:    g.ActualHours,
		Status:         string(g.Status),
		CompletedAt:    formatOptTime(g.CompletedAt),
		Tags:           g.Tags,
	}
	if !g.Deadline.IsZero() {
		rec.Deadline = g.Deadline.Format(domain.DateLayout)
	}
	if g.Reflection != nil {
		rec.Reflection = &reflectionRecord{
			Worked:      g.Reflection.Worked,
			DidntWork:   g.Reflection.DidntWork,
			Differently: g.Reflection.Differently,
		}
	}
	for _, m := range g.Milestones {
		rec.Milestones = append(rec.Milestones, milestoneRecord{
			ID:           m.ID,
			Title:        m.Title,
			Description:  m.Description,
			ExternalLink: m.ExternalLink,
			IsCompleted:  m.IsCompleted,
			CompletedAt:  formatOptTime(m.CompletedAt),
		})
	}
	for _, n := range g.Notes {
		nr := noteRecord{
			ID:        n.ID,
			Content:   n.Content,
			Type:      string(n.Type),
			Impact:    string(n.Impact),
			CreatedAt: formatTime(n.CreatedAt),
		}
		for _, a := range n.Attachments {
			nr.Attachments = append(nr.Attachments, attachmentRecord{
				ID:        a.ID,
				Name:      a.Name,
				MimeType:  a.MimeType,
				Size:      a.SizeDisplay,
				CreatedAt: formatTime(a.CreatedAt),
			})
		}
		rec.Notes = append(rec.Notes, nr)
	}
	for _, l := range g.Logs {
		rec.Logs = append(rec.Logs, logRecord{
			ID:        l.ID,
			Type:      string(l.Type),
			Reason:    l.Reason,
			CreatedAt: formatTime(l.CreatedAt),
		})
	}
	for _, c := range g.Comments {
		rec.Comments = append(rec.Comments, commentRecord{
			ID:        c.ID,
			UserName:  c.UserName,
			Content:   c.Content,
			CreatedAt: formatTime(c.CreatedAt),
		})
	}
	return rec
}

// fromGoalRecord rebuilds a goal. Child goalId back-references are not
// stored; they are restored from the parent.
func fromGoalRecord(rec goalRecord) (*domain.Goal, error) {
	g := &domain.Goal{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Title:          rec.Title,
		Description:    rec.Description,
		EstimatedHours: rec.EstimatedHours,
		ActualHours:    rec.ActualHours,
		Status:         domain.GoalStatus(rec.Status),
	}
	if len(rec.Tags) > 0 {
		g.Tags = append([]string(nil), rec.Tags...)
	}
	var err error
	if g.CreatedAt, err = parseTime(rec.CreatedAt, "goal created_at"); err != nil {
		return nil, err
	}
	if g.CompletedAt, err = parseOptTime(rec.CompletedAt, "goal completed_at"); err != nil {
		return nil, err
	}
	if rec.Deadline != "" {
		if g.Deadline, err = domain.ParseDate(rec.Deadline); err != nil {
			return nil, fmt.Errorf("goal %s: %w", rec.ID, err)
		}
	}
	if rec.Reflection != nil {
		g.Reflection = &domain.Reflection{
			Worked:      rec.Reflection.Worked,
			DidntWork:   rec.Reflection.DidntWork,
			Differently: rec.Reflection.Differently,
		}
	}
	for _, mr := range rec.Milestones {
		m := domain.Milestone{
			ID:           mr.ID,
			GoalID:       g.ID,
			Title:        mr.Title,
			Description:  mr.Description,
			ExternalLink: mr.ExternalLink,
			IsCompleted:  mr.IsCompleted,
		}
		if m.CompletedAt, err = parseOptTime(mr.CompletedAt, "milestone completed_at"); err != nil {
			return nil, err
		}
		g.Milestones = append(g.Milestones, m)
	}
	for _, nr := range rec.Notes {
		n := domain.Note{
			ID:      nr.ID,
			GoalID:  g.ID,
			Content: nr.Content,
			Type:    domain.NoteType(nr.Type),
			Impact:  domain.NoteImpact(nr.Impact),
		}
		if n.CreatedAt, err = parseTime(nr.CreatedAt, "note created_at"); err != nil {
			return nil, err
		}
		for _, ar := range nr.Attachments {
			a := domain.AttachmentRef{ID: ar.ID, Name: ar.Name, MimeType: ar.MimeType, SizeDisplay: ar.Size}
			if a.CreatedAt, err = parseTime(ar.CreatedAt, "attachment created_at"); err != nil {
				return nil, err
			}
			n.Attachments = append(n.Attachments, a)
		}
		g.Notes = append(g.Notes, n)
	}
	for _, lr := range rec.Logs {
		l := domain.LogEntry{ID: lr.ID, GoalID: g.ID, Type: domain.LogType(lr.Type), Reason: lr.Reason}
		if l.CreatedAt, err = parseTime(lr.CreatedAt, "log created_at"); err != nil {
			return nil, err
		}
		g.Logs = append(g.Logs, l)
	}
	for _, cr := range rec.Comments {
		c := domain.Comment{ID: cr.ID, GoalID: g.ID, UserName: cr.UserName, Content: cr.Content}
		if c.CreatedAt, err = parseTime(cr.CreatedAt, "comment created_at"); err != nil {
			return nil, err
		}
		g.Comments = append(g.Comments, c)
	}
	return g, nil
}
