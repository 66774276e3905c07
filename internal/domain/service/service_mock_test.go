package service

import (
	"testing"

	"github.com/diegoclair/raid-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockGymRepo         *mocks.MockGymRepo
	mockFactionResolver *mocks.MockFactionResolver
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	gymRepo := mocks.NewMockGymRepo(ctrl)
	dm.EXPECT().Gym().Return(gymRepo).AnyTimes()

	m = allMocks{
		mockDataManager:     dm,
		mockGymRepo:         gymRepo,
		mockFactionResolver: mocks.NewMockFactionResolver(ctrl),
	}

	// validate service creation
	raidService := newRaid(discardLogger(), dm, NewRegistry(discardLogger(), RegistryConfig{}))
	require.NotNil(t, raidService)

	return
}
