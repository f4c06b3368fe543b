package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	// Purpose restricts LLM request events to one purpose label.
	Purpose string
}

// Message is one stored side of a chat exchange.
type Message struct {
	ID                string    `json:"id"`
	PairID            string    `json:"pairId"`
	UserID            string    `json:"userId"`
	Text              string    `json:"text"`
	IsUser            bool      `json:"isUser"`
	Category          string    `json:"category,omitempty"`
	QuestionType      string    `json:"questionType,omitempty"`
	Sentiment         string    `json:"sentiment,omitempty"`
	FollowUpQuestions []string  `json:"followUpQuestions,omitempty"`
	IsFollowUp        bool      `json:"isFollowUp"`
	Sequence          int64     `json:"sequence"`
	CreatedAt         time.Time `json:"createdAt"`
}

// MessageFilter narrows a message listing.
type MessageFilter struct {
	// Subject keeps only exchanges whose answer has this category.
	// Empty or "all" keeps everything.
	Subject string
	// Limit keeps the most recent N messages (0 = unlimited).
	Limit int
	// UserID keeps only one asker's messages when set.
	UserID string
}

// LearningStats summarizes stored exchanges.
type LearningStats struct {
	TotalMessages    int            `json:"totalMessages"`
	SubjectBreakdown map[string]int `json:"subjectBreakdown"`
	RecentTopics     []string       `json:"recentTopics"`
}

// MessageRepo stores chat messages.
type MessageRepo interface {
	// Append stores messages in order. Empty IDs are filled with UUIDs;
	// sequence and creation time are always assigned by the store.
	Append(ctx context.Context, msgs ...*Message) error

	// List returns messages oldest first.
	List(ctx context.Context, filter MessageFilter) ([]Message, error)

	// Stats counts answered exchanges per subject and summarizes the
	// latest answers as topics.
	Stats(ctx context.Context, recent int) (*LearningStats, error)

	// Clear deletes every message and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// UserProfile is a learner's profile.
type UserProfile struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PreferredSubjects []string  `json:"preferredSubjects"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// UserRepo stores learner profiles.
type UserRepo interface {
	// Create stores a new profile, assigning an ID when empty.
	Create(ctx context.Context, p *UserProfile) error

	// Update replaces name, email and subjects. Returns ErrNotFound for
	// an unknown ID.
	Update(ctx context.Context, p *UserProfile) error

	// Get returns ErrNotFound for an unknown ID.
	Get(ctx context.Context, id string) (*UserProfile, error)

	// List returns every profile, oldest first.
	List(ctx context.Context) ([]UserProfile, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStat aggregates LLM calls for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns nil without error when the event does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
