// Package schema holds the ent schema definitions for the tutor's
// database. The store turns them into tables at startup.
package schema

import "entgo.io/ent"

// Tables lists the schemas the store migrates, in creation order.
func Tables() []ent.Interface {
	return []ent.Interface{
		Message{},
		UserProfile{},
		LLMRequestEvent{},
	}
}
