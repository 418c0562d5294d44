package service

import (
	"testing"
	"time"

	"github.com/diegoclair/game-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/game-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testChannelID = "C123"

var (
	testTeam = entity.TrackedTeam{ID: 26, Name: "Kings", MentionToken: "<@&935115932852977674>"}

	// Monday 2022-01-24 09:00 UTC
	testNow = time.Date(2022, 1, 24, 9, 0, 0, 0, time.UTC)
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockGameRepo     *mocks.MockGameRepo
	mockReminderRepo *mocks.MockReminderRepo
	mockFetcher      *mocks.MockGameFetcher
	mockJobs         *mocks.MockJobScheduler
	mockSender       *mocks.MockMessageSender
}

func newServiceTestMock(t *testing.T) (m allMocks, instance *Instance, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	gameRepo := mocks.NewMockGameRepo(ctrl)
	dm.EXPECT().Game().Return(gameRepo).AnyTimes()

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockGameRepo:     gameRepo,
		mockReminderRepo: reminderRepo,
		mockFetcher:      mocks.NewMockGameFetcher(ctrl),
		mockJobs:         mocks.NewMockJobScheduler(ctrl),
		mockSender:       mocks.NewMockMessageSender(ctrl),
	}

	instance = NewInstance(Options{
		Team:         testTeam,
		ChannelID:    testChannelID,
		SourceZone:   "America/New_York",
		Location:     time.UTC,
		StartupDelay: 5 * time.Second,
	}, dm, m.mockFetcher, m.mockJobs, m.mockSender)
	require.NotNil(t, instance)

	instance.Orchestrator.now = func() time.Time { return testNow }

	return
}
