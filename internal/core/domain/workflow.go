package domain

import (
	"fmt"
	"time"
)

// Labors, Quests, and Fates are owned by the workflow engine. This service
// only reads and renders them, so they carry no mutation methods here.

// =============================================================================
// Labor
// =============================================================================

// Labor is a unit of work performed against a Host as part of a Quest.
type Labor struct {
	ID             int64      `json:"id"`
	QuestID        int64      `json:"questId"`
	HostID         int64      `json:"hostId"`
	CreationTime   time.Time  `json:"creationTime"`
	AckTime        *time.Time `json:"ackTime"`
	AckUser        string     `json:"ackUser"`
	CompletionTime *time.Time `json:"completionTime"`
}

// EntityID returns the numeric identity of the labor.
func (l Labor) EntityID() int64 { return l.ID }

// HRef returns the canonical link path for the labor.
func (l Labor) HRef(base string) string {
	return fmt.Sprintf("%s/labors/%d", base, l.ID)
}

// Document returns the full field-level representation of the labor.
func (l Labor) Document(base string) any {
	doc := laborDoc{
		ID:           l.ID,
		QuestID:      l.QuestID,
		HostID:       l.HostID,
		CreationTime: FormatTimestamp(l.CreationTime),
		AckUser:      l.AckUser,
		HRef:         l.HRef(base),
	}
	if l.AckTime != nil {
		doc.AckTime = FormatTimestamp(*l.AckTime)
	}
	if l.CompletionTime != nil {
		doc.CompletionTime = FormatTimestamp(*l.CompletionTime)
	}
	return doc
}

type laborDoc struct {
	ID             int64  `json:"id"`
	QuestID        int64  `json:"questId"`
	HostID         int64  `json:"hostId"`
	CreationTime   string `json:"creationTime"`
	AckTime        string `json:"ackTime,omitempty"`
	AckUser        string `json:"ackUser,omitempty"`
	CompletionTime string `json:"completionTime,omitempty"`
	HRef           string `json:"href"`
}

// =============================================================================
// Quest
// =============================================================================

// Quest is a named grouping of one or more Labors. Exactly one quest owns
// each labor.
type Quest struct {
	ID                 int64      `json:"id"`
	EmbarkationTime    time.Time  `json:"embarkationTime"`
	CompletionDeadline *time.Time `json:"completionDeadline"`
	Description        string     `json:"description"`
	Creator            string     `json:"creator"`
}

// EntityID returns the numeric identity of the quest.
func (q Quest) EntityID() int64 { return q.ID }

// HRef returns the canonical link path for the quest.
func (q Quest) HRef(base string) string {
	return fmt.Sprintf("%s/quests/%d", base, q.ID)
}

// Document returns the full field-level representation of the quest.
func (q Quest) Document(base string) any {
	doc := questDoc{
		ID:              q.ID,
		EmbarkationTime: FormatTimestamp(q.EmbarkationTime),
		Description:     q.Description,
		Creator:         q.Creator,
		HRef:            q.HRef(base),
	}
	if q.CompletionDeadline != nil {
		doc.CompletionDeadline = FormatTimestamp(*q.CompletionDeadline)
	}
	return doc
}

type questDoc struct {
	ID                 int64  `json:"id"`
	EmbarkationTime    string `json:"embarkationTime"`
	CompletionDeadline string `json:"completionDeadline,omitempty"`
	Description        string `json:"description"`
	Creator            string `json:"creator"`
	HRef               string `json:"href"`
}

// =============================================================================
// LaborQuest
// =============================================================================

// LaborQuest is a labor joined to its owning quest, as the host view renders
// them: one quest entry per labor, in labor order, even when labors share a
// quest.
type LaborQuest struct {
	Labor Labor
	Quest Quest
}

// =============================================================================
// Fate
// =============================================================================

// Fate is a follow-up action associated with an EventType. A fate is
// associated with a type when the type triggers it or completes it.
type Fate struct {
	ID               int64  `json:"id"`
	CreationTypeID   int64  `json:"creationTypeId"`
	CompletionTypeID *int64 `json:"completionTypeId"`
	Description      string `json:"description"`
}

// EntityID returns the numeric identity of the fate.
func (f Fate) EntityID() int64 { return f.ID }

// HRef returns the canonical link path for the fate.
func (f Fate) HRef(base string) string {
	return fmt.Sprintf("%s/fates/%d", base, f.ID)
}

// Document returns the full field-level representation of the fate.
func (f Fate) Document(base string) any {
	return fateDoc{
		ID:               f.ID,
		CreationTypeID:   f.CreationTypeID,
		CompletionTypeID: f.CompletionTypeID,
		Description:      f.Description,
		HRef:             f.HRef(base),
	}
}

type fateDoc struct {
	ID               int64  `json:"id"`
	CreationTypeID   int64  `json:"creationTypeId"`
	CompletionTypeID *int64 `json:"completionTypeId"`
	Description      string `json:"description"`
	HRef             string `json:"href"`
}
