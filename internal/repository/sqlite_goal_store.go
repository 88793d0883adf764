package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
)

const dateLayout = domain.DateLayout

// SQLiteGoalStore implements GoalStore on the normalized goal tables.
// Child rows carry a position column so list order survives a round trip.
type SQLiteGoalStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLiteGoalStore(conn *sql.DB) *SQLiteGoalStore {
	return &SQLiteGoalStore{db: conn, uow: db.NewSQLiteUnitOfWork(conn)}
}

// NewSQLiteGoalStoreWithUoW lets tests inject a failing unit of work.
func NewSQLiteGoalStoreWithUoW(conn db.DBTX, uow db.UnitOfWork) *SQLiteGoalStore {
	return &SQLiteGoalStore{db: conn, uow: uow}
}

func (s *SQLiteGoalStore) LoadGoals(ctx context.Context) ([]*domain.Goal, error) {
	goals, byID, err := s.loadGoalRows(ctx)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, nil
	}
	if err := s.loadMilestones(ctx, byID); err != nil {
		return nil, err
	}
	if err := s.loadNotes(ctx, byID); err != nil {
		return nil, err
	}
	if err := s.loadLogs(ctx, byID); err != nil {
		return nil, err
	}
	if err := s.loadComments(ctx, byID); err != nil {
		return nil, err
	}
	if err := s.loadTags(ctx, byID); err != nil {
		return nil, err
	}
	return goals, nil
}

// SaveGoals replaces every stored goal with the given sequence in one
// transaction.
func (s *SQLiteGoalStore) SaveGoals(ctx context.Context, goals []*domain.Goal) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, table := range []string{"note_attachments", "notes", "milestones", "goal_logs", "comments", "goal_tags", "goals"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
		for pos, g := range goals {
			if err := insertGoal(ctx, tx, pos, g); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertGoal(ctx context.Context, tx db.DBTX, pos int, g *domain.Goal) error {
	var worked, didnt, diff interface{}
	if g.Reflection != nil {
		worked, didnt, diff = g.Reflection.Worked, g.Reflection.DidntWork, g.Reflection.Differently
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO goals (id, position, user_id, title, description, deadline,
		created_at, estimated_hours, actual_hours, status, reflection_worked, reflection_didnt_work,
		reflection_different, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID,
		pos,
		g.UserID,
		g.Title,
		g.Description,
		dateToValue(g.Deadline),
		g.CreatedAt.UTC().Format(timeLayout),
		g.EstimatedHours,
		g.ActualHours,
		string(g.Status),
		worked,
		didnt,
		diff,
		nullableTimeToString(g.CompletedAt, timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting goal %s: %w", g.ID, err)
	}

	for i, m := range g.Milestones {
		_, err := tx.ExecContext(ctx, `INSERT INTO milestones (id, goal_id, position, title, description,
			external_link, is_completed, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, g.ID, i, m.Title, m.Description, m.ExternalLink, boolToInt(m.IsCompleted),
			nullableTimeToString(m.CompletedAt, timeLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting milestone %s: %w", m.ID, err)
		}
	}

	for i, n := range g.Notes {
		_, err := tx.ExecContext(ctx, `INSERT INTO notes (id, goal_id, position, content, type, impact, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.ID, g.ID, i, n.Content, string(n.Type), string(n.Impact), n.CreatedAt.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting note %s: %w", n.ID, err)
		}
		for j, a := range n.Attachments {
			_, err := tx.ExecContext(ctx, `INSERT INTO note_attachments (note_id, position, id, name, mime_type,
				size_display, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				n.ID, j, a.ID, a.Name, a.MimeType, a.SizeDisplay, a.CreatedAt.UTC().Format(timeLayout),
			)
			if err != nil {
				return fmt.Errorf("inserting attachment %s: %w", a.ID, err)
			}
		}
	}

	for i, l := range g.Logs {
		_, err := tx.ExecContext(ctx, `INSERT INTO goal_logs (id, goal_id, position, type, reason, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			l.ID, g.ID, i, string(l.Type), l.Reason, l.CreatedAt.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting log %s: %w", l.ID, err)
		}
	}

	for i, c := range g.Comments {
		_, err := tx.ExecContext(ctx, `INSERT INTO comments (id, goal_id, position, user_name, content, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, g.ID, i, c.UserName, c.Content, c.CreatedAt.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting comment %s: %w", c.ID, err)
		}
	}

	for _, tag := range g.Tags {
		if _, err := tx.ExecContext(ctx, `INSERT INTO goal_tags (goal_id, tag) VALUES (?, ?)`, g.ID, tag); err != nil {
			return fmt.Errorf("inserting tag %q: %w", tag, err)
		}
	}
	return nil
}

func (s *SQLiteGoalStore) loadGoalRows(ctx context.Context) ([]*domain.Goal, map[string]*domain.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, user_id, title, description, deadline, created_at,
		estimated_hours, actual_hours, status, reflection_worked, reflection_didnt_work,
		reflection_different, completed_at
		FROM goals ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	byID := make(map[string]*domain.Goal)
	for rows.Next() {
		var g domain.Goal
		var createdAt, status string
		var deadline, worked, didnt, diff, completedAt sql.NullString
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &deadline, &createdAt,
			&g.EstimatedHours, &g.ActualHours, &status, &worked, &didnt, &diff, &completedAt); err != nil {
			return nil, nil, fmt.Errorf("scanning goal: %w", err)
		}
		if g.CreatedAt, err = parseTime(createdAt, timeLayout, "goals.created_at"); err != nil {
			return nil, nil, err
		}
		if d := parseNullableTime(deadline, dateLayout); d != nil {
			g.Deadline = *d
		}
		g.Status = domain.GoalStatus(status)
		if worked.Valid {
			g.Reflection = &domain.Reflection{Worked: worked.String, DidntWork: didnt.String, Differently: diff.String}
		}
		g.CompletedAt = parseNullableTime(completedAt, timeLayout)
		goals = append(goals, &g)
		byID[g.ID] = &g
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, byID, nil
}

func (s *SQLiteGoalStore) loadMilestones(ctx context.Context, byID map[string]*domain.Goal) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, goal_id, title, description, external_link, is_completed, completed_at
		FROM milestones ORDER BY goal_id, position`)
	if err != nil {
		return fmt.Errorf("listing milestones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.Milestone
		var done int
		var completedAt sql.NullString
		if err := rows.Scan(&m.ID, &m.GoalID, &m.Title, &m.Description, &m.ExternalLink, &done, &completedAt); err != nil {
			return fmt.Errorf("scanning milestone: %w", err)
		}
		m.IsCompleted = intToBool(done)
		m.CompletedAt = parseNullableTime(completedAt, timeLayout)
		if g, ok := byID[m.GoalID]; ok {
			g.Milestones = append(g.Milestones, m)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating milestones: %w", err)
	}
	return nil
}

func (s *SQLiteGoalStore) loadNotes(ctx context.Context, byID map[string]*domain.Goal) error {
	attachments, err := s.loadAttachments(ctx)
	if err != nil {
		return err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, goal_id, content, type, impact, created_at
		FROM notes ORDER BY goal_id, position`)
	if err != nil {
		return fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n domain.Note
		var noteType, impact, createdAt string
		if err := rows.Scan(&n.ID, &n.GoalID, &n.Content, &noteType, &impact, &createdAt); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}
		n.Type = domain.NoteType(noteType)
		n.Impact = domain.NoteImpact(impact)
		if n.CreatedAt, err = parseTime(createdAt, timeLayout, "notes.created_at"); err != nil {
			return err
		}
		n.Attachments = attachments[n.ID]
		if g, ok := byID[n.GoalID]; ok {
			g.Notes = append(g.Notes, n)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating notes: %w", err)
	}
	return nil
}

func (s *SQLiteGoalStore) loadAttachments(ctx context.Context) (map[string][]domain.AttachmentRef, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT note_id, id, name, mime_type, size_display, created_at
		FROM note_attachments ORDER BY note_id, position`)
	if err != nil {
		return nil, fmt.Errorf("listing attachments: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.AttachmentRef)
	for rows.Next() {
		var noteID, createdAt string
		var a domain.AttachmentRef
		if err := rows.Scan(&noteID, &a.ID, &a.Name, &a.MimeType, &a.SizeDisplay, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning attachment: %w", err)
		}
		if a.CreatedAt, err = parseTime(createdAt, timeLayout, "note_attachments.created_at"); err != nil {
			return nil, err
		}
		out[noteID] = append(out[noteID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attachments: %w", err)
	}
	return out, nil
}

func (s *SQLiteGoalStore) loadLogs(ctx context.Context, byID map[string]*domain.Goal) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, goal_id, type, reason, created_at
		FROM goal_logs ORDER BY goal_id, position`)
	if err != nil {
		return fmt.Errorf("listing logs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.LogEntry
		var logType, createdAt string
		if err := rows.Scan(&l.ID, &l.GoalID, &logType, &l.Reason, &createdAt); err != nil {
			return fmt.Errorf("scanning log: %w", err)
		}
		l.Type = domain.LogType(logType)
		if l.CreatedAt, err = parseTime(createdAt, timeLayout, "goal_logs.created_at"); err != nil {
			return err
		}
		if g, ok := byID[l.GoalID]; ok {
			g.Logs = append(g.Logs, l)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating logs: %w", err)
	}
	return nil
}

func (s *SQLiteGoalStore) loadComments(ctx context.Context, byID map[string]*domain.Goal) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, goal_id, user_name, content, created_at
		FROM comments ORDER BY goal_id, position`)
	if err != nil {
		return fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.GoalID, &c.UserName, &c.Content, &createdAt); err != nil {
			return fmt.Errorf("scanning comment: %w", err)
		}
		if c.CreatedAt, err = parseTime(createdAt, timeLayout, "comments.created_at"); err != nil {
			return err
		}
		if g, ok := byID[c.GoalID]; ok {
			g.Comments = append(g.Comments, c)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating comments: %w", err)
	}
	return nil
}

func (s *SQLiteGoalStore) loadTags(ctx context.Context, byID map[string]*domain.Goal) error {
	rows, err := s.db.QueryContext(ctx, `SELECT goal_id, tag FROM goal_tags ORDER BY goal_id, tag`)
	if err != nil {
		return fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var goalID, tag string
		if err := rows.Scan(&goalID, &tag); err != nil {
			return fmt.Errorf("scanning tag: %w", err)
		}
		if g, ok := byID[goalID]; ok {
			g.Tags = append(g.Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating tags: %w", err)
	}
	return nil
}
