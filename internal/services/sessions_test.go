package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/database"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/models"
	"github.com/pushp314/stenpan-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSessionsTest() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.AutoMigrate(&models.Snapshot{})
	logger.Init("test")
	Catalog = catalog.Default()
	DropSessions()
}

func TestResultIsDetachedFromSessionState(t *testing.T) {
	setupSessionsTest()

	first, err := WithLedger("s-detached", func(l *economy.Ledger) error {
		l.RecordAction(catalog.ActionSendMessage, 1)
		l.GrantXP(15)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Profile.Quests["SEND_5_MESSAGES"].Progress)
	assert.Equal(t, 15, first.Profile.TotalXP)

	_, err = WithLedger("s-detached", func(l *economy.Ledger) error {
		l.RecordAction(catalog.ActionSendMessage, 2)
		l.GrantXP(30)
		return nil
	})
	assert.NoError(t, err)

	// The first result is serialized by its handler after the session lock
	// is long gone; it must not see the later mutations.
	assert.Equal(t, 1, first.Profile.Quests["SEND_5_MESSAGES"].Progress)
	assert.Equal(t, 15, first.Profile.TotalXP)

	raw, err := json.Marshal(first.Profile)
	assert.NoError(t, err)
	var round models.Profile
	assert.NoError(t, json.Unmarshal(raw, &round))
	assert.Equal(t, 1, round.Quests["SEND_5_MESSAGES"].Progress)
}

func TestResultMutationDoesNotLeakIntoSession(t *testing.T) {
	setupSessionsTest()

	res, err := WithLedger("s-leak", func(l *economy.Ledger) error {
		return l.PurchaseItem("color-ice")
	})
	assert.NoError(t, err)

	res.Profile.Gems = 999999
	res.Profile.OwnedItems = append(res.Profile.OwnedItems, "accessory-crown")
	res.Profile.Quests["SEND_5_MESSAGES"] = &models.QuestState{Progress: 5}

	view, err := View("s-leak", func(l *economy.Ledger) {})
	assert.NoError(t, err)
	assert.Equal(t, 90, view.Profile.Gems)
	assert.False(t, view.Profile.Owns("accessory-crown"))
	assert.Nil(t, view.Profile.Quests["SEND_5_MESSAGES"])
}

func TestSnapshotsConvergeToLatestState(t *testing.T) {
	setupSessionsTest()

	// Rapid back-to-back mutations each queue a background save; the stored
	// snapshot must end up at the newest state, never a stale one.
	for i := 0; i < 5; i++ {
		_, err := WithLedger("s-converge", func(l *economy.Ledger) error {
			l.GrantXP(15)
			return nil
		})
		assert.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		raw, err := database.LoadSnapshot("profile:s-converge")
		if err != nil {
			return false
		}
		var p models.Profile
		if json.Unmarshal([]byte(raw), &p) != nil {
			return false
		}
		return p.TotalXP == 75
	}, 2*time.Second, 10*time.Millisecond)
}
