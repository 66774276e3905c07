package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testChannel = entity.Channel{Platform: domain.PlatformSlack, TeamID: "T1", ID: "C1"}

func newTestRaidService(t *testing.T, m allMocks) *raidService {
	t.Helper()

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	registry := newTestRegistry(t, &now)
	return newRaid(discardLogger(), m.mockDataManager, registry)
}

func Test_raidService_CreateRaid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		args        []string
		wantID      string
		wantEnd     string
		wantPayload map[string]string
		wantErr     error
	}{
		{
			name:   "Should create raid with lower-cased subject",
			args:   []string{"Mewtwo"},
			wantID: "mewtwo-0",
		},
		{
			name:    "Should join the remaining tokens as end time",
			args:    []string{"lugia", "3:45", "pm"},
			wantID:  "lugia-0",
			wantEnd: "3:45 pm",
		},
		{
			name:        "Should keep key=value tokens as payload",
			args:        []string{"level=5", "groudon", "weather=rain"},
			wantID:      "groudon-0",
			wantPayload: map[string]string{"level": "5", "weather": "rain"},
		},
		{
			name:    "Should require a subject",
			args:    []string{"level=5"},
			wantErr: domain.ErrMissingSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestRaidService(t, m)

			raid, err := s.CreateRaid(ctx, testChannel, ash, tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, s.List(ctx, testChannel))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, raid.ID)
			assert.Equal(t, tt.wantEnd, raid.EndTime)
			assert.Equal(t, tt.wantPayload, raid.Payload)
			assert.Len(t, s.List(ctx, testChannel), 1)
		})
	}
}

func Test_raidService_CreateRaidWarmsFactions(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestRaidService(t, m)
	s.RegisterFactionResolver(domain.PlatformSlack, m.mockFactionResolver)

	m.mockFactionResolver.EXPECT().
		ResolveFaction(gomock.Any(), "T1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, name string) (entity.Faction, error) {
			return entity.Faction{Name: name, MemberIDs: []string{ash.ID}}, nil
		}).Times(len(domain.Factions))

	_, err := s.CreateRaid(context.Background(), testChannel, ash, []string{"mewtwo"})
	require.NoError(t, err)

	assert.Len(t, s.Factions(context.Background(), testChannel), len(domain.Factions))
}

func Test_raidService_Join(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		args           []string
		wantAdditional int
		wantErr        error
	}{
		{
			name: "Should join the named raid",
			args: []string{"MEWTWO-0"},
		},
		{
			name:           "Should read a plus guest count",
			args:           []string{"+2", "mewtwo-0"},
			wantAdditional: 2,
		},
		{
			name:           "Should read a bare guest count",
			args:           []string{"mewtwo-0", "3"},
			wantAdditional: 3,
		},
		{
			name:    "Should fail when nothing resolves",
			args:    []string{"lugia-9"},
			wantErr: domain.ErrNoRaidForArgs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestRaidService(t, m)
			_, err := s.CreateRaid(ctx, testChannel, ash, []string{"mewtwo"})
			require.NoError(t, err)

			raid, err := s.Join(ctx, testChannel, misty, tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, raid.Attendees, 2)
			assert.Equal(t, misty.ID, raid.Attendees[1].User.ID)
			assert.Equal(t, tt.wantAdditional, raid.Attendees[1].Additional)
		})
	}
}

func Test_raidService_AttendeeCommands(t *testing.T) {
	ctx := context.Background()

	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestRaidService(t, m)
	created, err := s.CreateRaid(ctx, testChannel, ash, []string{"mewtwo"})
	require.NoError(t, err)

	_, err = s.Join(ctx, testChannel, ash, nil)
	require.ErrorIs(t, err, domain.ErrAlreadyJoined)

	_, err = s.Join(ctx, testChannel, misty, []string{created.ID})
	require.NoError(t, err)

	// misty's last raid is now mewtwo-0, so no id is needed
	raid, err := s.Arrive(ctx, testChannel, misty, nil)
	require.NoError(t, err)
	assert.True(t, raid.Attendees[1].Arrived)
	assert.False(t, raid.Attendees[0].Arrived)

	raid, err = s.Leave(ctx, testChannel, misty, nil)
	require.NoError(t, err)
	assert.Len(t, raid.Attendees, 1)

	_, err = s.Leave(ctx, testChannel, misty, nil)
	require.ErrorIs(t, err, domain.ErrNotAttending)

	raid, err = s.Info(ctx, testChannel, misty, []string{"Mewtwo-0"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, raid.ID)
}

func Test_raidService_SetTimes(t *testing.T) {
	ctx := context.Background()

	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestRaidService(t, m)
	created, err := s.CreateRaid(ctx, testChannel, ash, []string{"mewtwo"})
	require.NoError(t, err)

	raid, err := s.SetStart(ctx, testChannel, ash, []string{"4:10", created.ID, "pm"})
	require.NoError(t, err)
	assert.Equal(t, "4:10 pm", raid.StartTime)

	raid, err = s.SetEnd(ctx, testChannel, ash, []string{"5:00", "pm"})
	require.NoError(t, err)
	assert.Equal(t, "5:00 pm", raid.EndTime)

	_, err = s.SetStart(ctx, testChannel, ash, []string{created.ID})
	require.ErrorIs(t, err, domain.ErrMissingTime)
}

func Test_raidService_SetLocation(t *testing.T) {
	ctx := context.Background()
	townHall := &entity.Gym{ID: 1, Name: "Town Hall Fountain", Latitude: 1, Longitude: 2}

	tests := []struct {
		name      string
		args      []string
		buildMock func(m allMocks)
		wantGym   string
		wantErr   error
	}{
		{
			name: "Should use the exact match",
			args: []string{"mewtwo-0", "Town", "Hall", "Fountain"},
			buildMock: func(m allMocks) {
				m.mockGymRepo.EXPECT().
					GetByName("Town Hall Fountain").
					Return(townHall, nil).Times(1)
			},
			wantGym: "Town Hall Fountain",
		},
		{
			name: "Should fall back to search without a raid id",
			args: []string{"town", "hall"},
			buildMock: func(m allMocks) {
				gomock.InOrder(
					m.mockGymRepo.EXPECT().
						GetByName("town hall").
						Return(nil, nil).Times(1),
					m.mockGymRepo.EXPECT().
						Search("town hall", 1).
						Return([]*entity.Gym{townHall}, nil).Times(1),
				)
			},
			wantGym: "Town Hall Fountain",
		},
		{
			name: "Should report unknown gym",
			args: []string{"airport"},
			buildMock: func(m allMocks) {
				m.mockGymRepo.EXPECT().GetByName("airport").Return(nil, nil).Times(1)
				m.mockGymRepo.EXPECT().Search("airport", 1).Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrGymNotFound,
		},
		{
			name: "Should wrap repository errors",
			args: []string{"airport"},
			buildMock: func(m allMocks) {
				m.mockGymRepo.EXPECT().GetByName("airport").Return(nil, assert.AnError).Times(1)
			},
			wantErr: assert.AnError,
		},
		{
			name:    "Should require a gym name",
			args:    []string{"mewtwo-0"},
			wantErr: domain.ErrMissingGym,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestRaidService(t, m)
			_, err := s.CreateRaid(ctx, testChannel, ash, []string{"mewtwo"})
			require.NoError(t, err)

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			raid, err := s.SetLocation(ctx, testChannel, ash, tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, raid.Gym)
			assert.Equal(t, tt.wantGym, raid.Gym.Name)
		})
	}
}

func Test_raidService_AttachMessage(t *testing.T) {
	ctx := context.Background()

	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestRaidService(t, m)
	created, err := s.CreateRaid(ctx, testChannel, ash, []string{"mewtwo"})
	require.NoError(t, err)

	ref := entity.MessageRef{Platform: domain.PlatformSlack, ChannelID: "C1", MessageID: "1700000000.000100"}
	require.NoError(t, s.AttachMessage(testChannel, ash, created.ID, ref))

	raid, err := s.Info(ctx, testChannel, ash, nil)
	require.NoError(t, err)
	require.NotNil(t, raid.Message)
	assert.Equal(t, ref, *raid.Message)

	err = s.AttachMessage(testChannel, ash, "lugia-5", ref)
	require.ErrorIs(t, err, domain.ErrRaidNotFound)
}
