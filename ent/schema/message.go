package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message is one side of a chat exchange. A question and its answer share
// a pair_id; the answer row carries the classification.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("pair_id").
			Comment("Shared by a question and its answer"),
		field.String("user_id").
			Comment("Asker, anonymous when not given"),
		field.Text("text"),
		field.Bool("is_user").
			Comment("True for the learner's question, false for the tutor's answer"),
		field.String("category").
			Default("").
			Comment("Subject label on answers: math, science, history, general, error"),
		field.String("question_type").
			Default(""),
		field.String("sentiment").
			Default(""),
		field.Strings("follow_up_questions").
			Optional().
			Comment("Suggested next questions on answers"),
		field.Bool("is_follow_up").
			Default(false),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pair_id"),
		index.Fields("user_id"),
		index.Fields("category"),
	}
}

func (Message) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "messages"},
	}
}
