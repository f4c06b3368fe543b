package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const messagesTable = "messages"

var messageColumns = []string{
	"id", "pair_id", "user_id", "text", "is_user", "category", "question_type",
	"sentiment", "follow_up_questions", "is_follow_up", "sequence", "timestamp",
}

// topicLen is how many characters of an answer a recent topic keeps.
const topicLen = 50

type messageRepo struct {
	s *Store
}

func (r *messageRepo) Append(ctx context.Context, msgs ...*Message) error {
	if len(msgs) == 0 {
		return nil
	}
	// A question and its answer get adjacent sequence numbers.
	first, err := r.s.seq.Reserve(ctx, len(msgs))
	if err != nil {
		return err
	}
	for i, m := range msgs {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		m.Sequence = first + int64(i)
		m.CreatedAt = r.s.now()

		followUps, err := encodeStrings(m.FollowUpQuestions)
		if err != nil {
			return err
		}

		q, args := r.s.builder().Insert(messagesTable).
			Columns(messageColumns...).
			Values(m.ID, m.PairID, m.UserID, m.Text, m.IsUser, m.Category, m.QuestionType,
				m.Sentiment, followUps, m.IsFollowUp, m.Sequence, m.CreatedAt).
			Query()
		if _, err := r.s.db.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("save message: %w", err)
		}
	}
	return nil
}

func (r *messageRepo) List(ctx context.Context, filter MessageFilter) ([]Message, error) {
	b := r.s.builder()
	sel := b.Select(messageColumns...).From(b.Table(messagesTable))

	if filter.Subject != "" && filter.Subject != "all" {
		answered := b.Select("pair_id").From(b.Table(messagesTable)).
			Where(entsql.And(
				entsql.EQ("is_user", false),
				entsql.EQ("category", filter.Subject),
			))
		sel = sel.Where(entsql.In("pair_id", answered))
	}
	if filter.UserID != "" {
		sel = sel.Where(entsql.EQ("user_id", filter.UserID))
	}

	// The newest N are selected and then flipped back to oldest first.
	if filter.Limit > 0 {
		sel = sel.OrderBy(entsql.Desc("sequence")).Limit(filter.Limit)
	} else {
		sel = sel.OrderBy(entsql.Asc("sequence"))
	}

	q, args := sel.Query()
	rows, err := r.s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	msgs, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}

	if filter.Limit > 0 {
		for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
			msgs[i], msgs[j] = msgs[j], msgs[i]
		}
	}
	return msgs, nil
}

func (r *messageRepo) Stats(ctx context.Context, recent int) (*LearningStats, error) {
	b := r.s.builder()
	stats := &LearningStats{
		SubjectBreakdown: make(map[string]int),
		RecentTopics:     []string{},
	}

	q, args := b.Select("category", entsql.Count("*")).
		From(b.Table(messagesTable)).
		Where(entsql.EQ("is_user", false)).
		GroupBy("category").
		Query()
	rows, err := r.s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query subject breakdown: %w", err)
	}
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan subject breakdown: %w", err)
		}
		stats.SubjectBreakdown[category] = n
		stats.TotalMessages += n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("subject breakdown: %w", err)
	}

	if recent <= 0 {
		return stats, nil
	}

	q, args = b.Select("text").
		From(b.Table(messagesTable)).
		Where(entsql.EQ("is_user", false)).
		OrderBy(entsql.Desc("sequence")).
		Query()
	rows, err = r.s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}
	defer rows.Close()
	for len(stats.RecentTopics) < recent && rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan recent answer: %w", err)
		}
		if topic, ok := topicOf(text); ok {
			stats.RecentTopics = append(stats.RecentTopics, topic)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent answers: %w", err)
	}
	return stats, nil
}

// topicOf keeps answers longer than 20 characters and shortens them to a
// one-line summary.
func topicOf(text string) (string, bool) {
	runes := []rune(text)
	if len(runes) <= 20 {
		return "", false
	}
	if len(runes) > topicLen {
		runes = runes[:topicLen]
	}
	return string(runes) + "...", true
}

func (r *messageRepo) Clear(ctx context.Context) (int, error) {
	q, args := r.s.builder().Delete(messagesTable).Query()
	res, err := r.s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("clear messages: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear messages: %w", err)
	}
	return int(n), nil
}

func scanMessages(rows *sql.Rows) ([]Message, error) {
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var (
			m         Message
			followUps sql.NullString
		)
		err := rows.Scan(&m.ID, &m.PairID, &m.UserID, &m.Text, &m.IsUser, &m.Category,
			&m.QuestionType, &m.Sentiment, &followUps, &m.IsFollowUp, &m.Sequence, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if m.FollowUpQuestions, err = decodeStrings(followUps); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	return msgs, nil
}

// encodeStrings stores a string list as JSON. A nil list is stored as "[]".
func encodeStrings(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeStrings(v sql.NullString) ([]string, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(v.String), &list); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list, nil
}
