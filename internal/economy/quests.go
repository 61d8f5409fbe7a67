package economy

import (
	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/models"
)

// RecordAction advances progress for every daily quest matching the given
// action. Progress is clamped to the goal and frozen once the quest has been
// claimed. Returns true if any quest advanced.
//
// Rollover guarantees the quest map never carries entries from a prior day.
func (l *Ledger) RecordAction(action catalog.ActionKind, amount int) bool {
	if amount <= 0 {
		return false
	}
	changed := false
	for _, quest := range l.cat.Quests {
		if quest.Action != action {
			continue
		}
		state, ok := l.profile.Quests[quest.ID]
		if !ok {
			state = &models.QuestState{}
			l.profile.Quests[quest.ID] = state
		}
		if state.CompletedAt != nil || state.Progress >= quest.Goal {
			continue
		}
		state.Progress += amount
		if state.Progress > quest.Goal {
			state.Progress = quest.Goal
		}
		changed = true
	}
	return changed
}

// ClaimQuest pays out a completed quest exactly once. The reward resolves
// through the same resolver as level and pass rewards; XP rewards may level
// the profile up, and any such level-ups are returned.
func (l *Ledger) ClaimQuest(questID string) ([]LevelUp, error) {
	quest, err := l.cat.Quest(questID)
	if err != nil {
		return nil, err
	}
	state, ok := l.profile.Quests[questID]
	if !ok || state.Progress < quest.Goal {
		return nil, ErrQuestIncomplete
	}
	if state.CompletedAt != nil {
		return nil, ErrAlreadyClaimed
	}
	muts, err := Resolve(l.cat, quest.Reward)
	if err != nil {
		return nil, err
	}
	ups := l.apply(muts)
	ts := l.now().UnixMilli()
	state.CompletedAt = &ts
	return ups, nil
}

// QuestView is the per-quest read model served to the client.
type QuestView struct {
	catalog.QuestTemplate
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
	Claimable bool `json:"claimable"`
}

// QuestViews joins the quest templates with the profile's progress.
func (l *Ledger) QuestViews() []QuestView {
	views := make([]QuestView, 0, len(l.cat.Quests))
	for _, quest := range l.cat.Quests {
		view := QuestView{QuestTemplate: quest}
		if state, ok := l.profile.Quests[quest.ID]; ok {
			view.Progress = state.Progress
			view.Completed = state.CompletedAt != nil
			view.Claimable = state.CompletedAt == nil && state.Progress >= quest.Goal
		}
		views = append(views, view)
	}
	return views
}
