package economy

import (
	"testing"

	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestRecordAction_ProgressClampedAtGoal(t *testing.T) {
	l, p := testLedger()

	l.RecordAction(catalog.ActionGenerateImage, 5) // goal is 1
	assert.Equal(t, 1, p.Quests["GENERATE_1_IMAGE"].Progress)

	l.RecordAction(catalog.ActionGenerateImage, 1)
	assert.Equal(t, 1, p.Quests["GENERATE_1_IMAGE"].Progress)
}

func TestRecordAction_MonotonicNonDecreasing(t *testing.T) {
	l, p := testLedger()

	last := 0
	for i := 0; i < 30; i++ {
		l.RecordAction(catalog.ActionSendMessage, 1)
		progress := p.Quests["SEND_5_MESSAGES"].Progress
		assert.GreaterOrEqual(t, progress, last)
		assert.LessOrEqual(t, progress, 5)
		last = progress
	}
	// The 20-message quest tracks the same action independently.
	assert.Equal(t, 20, p.Quests["SEND_20_MESSAGES"].Progress)
}

func TestRecordAction_IgnoresNonPositiveAmounts(t *testing.T) {
	l, p := testLedger()

	assert.False(t, l.RecordAction(catalog.ActionSendMessage, 0))
	assert.False(t, l.RecordAction(catalog.ActionSendMessage, -3))
	assert.Empty(t, p.Quests)
}

func TestClaimQuest_Gate(t *testing.T) {
	l, p := testLedger()

	l.RecordAction(catalog.ActionSendMessage, 3)
	_, err := l.ClaimQuest("SEND_5_MESSAGES")
	assert.ErrorIs(t, err, ErrQuestIncomplete)
	assert.Nil(t, p.Quests["SEND_5_MESSAGES"].CompletedAt)

	l.RecordAction(catalog.ActionSendMessage, 2)
	ups, err := l.ClaimQuest("SEND_5_MESSAGES")
	assert.NoError(t, err)
	assert.Empty(t, ups)
	assert.Equal(t, 25, p.XP) // quest reward is 25 XP
	assert.NotNil(t, p.Quests["SEND_5_MESSAGES"].CompletedAt)

	_, err = l.ClaimQuest("SEND_5_MESSAGES")
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Equal(t, 25, p.XP)
}

func TestClaimQuest_GemReward(t *testing.T) {
	l, p := testLedger()

	l.RecordAction(catalog.ActionSupportClick, 10)
	_, err := l.ClaimQuest("SUPPORT_10_CLICKS")
	assert.NoError(t, err)
	assert.Equal(t, 150, p.Gems) // 100 default + 50 reward
}

func TestClaimQuest_ProgressFrozenAfterClaim(t *testing.T) {
	l, p := testLedger()

	l.RecordAction(catalog.ActionGenerateImage, 1)
	_, err := l.ClaimQuest("GENERATE_1_IMAGE")
	assert.NoError(t, err)

	l.RecordAction(catalog.ActionGenerateImage, 1)
	assert.Equal(t, 1, p.Quests["GENERATE_1_IMAGE"].Progress)
}

func TestClaimQuest_UnknownQuest(t *testing.T) {
	l, _ := testLedger()

	var refErr *catalog.UnknownReferenceError
	_, err := l.ClaimQuest("NO_SUCH_QUEST")
	assert.ErrorAs(t, err, &refErr)
}

func TestQuestViews(t *testing.T) {
	l, _ := testLedger()

	l.RecordAction(catalog.ActionSendMessage, 5)
	views := l.QuestViews()
	assert.Len(t, views, 4)

	byID := map[string]QuestView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.True(t, byID["SEND_5_MESSAGES"].Claimable)
	assert.False(t, byID["SEND_5_MESSAGES"].Completed)
	assert.Equal(t, 5, byID["SEND_20_MESSAGES"].Progress)
	assert.False(t, byID["SEND_20_MESSAGES"].Claimable)
}
