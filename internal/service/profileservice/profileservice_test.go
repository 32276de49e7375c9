package profileservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/brewpoints/internal/domain"
)

type mocks struct {
	profileRepo *MockProfileRepo
	userRepo    *MockUserRepo
	settings    *MockSettingsProvider
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		profileRepo: NewMockProfileRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		settings:    NewMockSettingsProvider(ctrl),
	}
	service := New(m.profileRepo, m.userRepo, m.settings)
	service.now = func() time.Time { return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC) }
	return service, m
}

func defaults() *domain.Settings {
	s := domain.DefaultSettings()
	return &s
}

func TestGet(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	silver := domain.RankSilver

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.ProfileView
		expectedError error
	}{
		{
			name: "Profile with rank info",
			prepareMock: func() {
				m.profileRepo.EXPECT().GetByUserID(gomock.Any(), userID).
					Return(&domain.Profile{UserID: userID, Points: 80, LifetimePoints: 100, Rank: domain.RankBronze}, nil)
				m.settings.EXPECT().Get(gomock.Any()).Return(defaults(), nil)
			},
			expected: &domain.ProfileView{
				Profile: domain.Profile{UserID: userID, Points: 80, LifetimePoints: 100, Rank: domain.RankBronze},
				RankInfo: domain.RankInfo{
					Rank:            domain.RankBronze,
					NextRank:        &silver,
					ProgressPercent: 50,
					PointsToNext:    100,
					DiscountPercent: 10,
				},
			},
		},
		{
			name: "Profile not found",
			prepareMock: func() {
				m.profileRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: domain.ErrProfileNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				m.profileRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name: "Settings error",
			prepareMock: func() {
				m.profileRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&domain.Profile{UserID: userID}, nil)
				m.settings.EXPECT().Get(gomock.Any()).Return(nil, errors.New("settings error"))
			},
			expectedError: errors.New("settings error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			view, err := service.Get(context.Background(), userID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, view)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, view)
		})
	}
}

func TestUpdateDetails(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	birthday := time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC)
	future := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	phone := " +1 555 0100 "
	trimmedPhone := "+1 555 0100"
	blank := "   "

	tests := []struct {
		name          string
		input         DetailsInput
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Trims name and phone",
			input: DetailsInput{FullName: "  Ana Lopez ", Phone: &phone, Birthday: &birthday},
			prepareMock: func() {
				m.profileRepo.EXPECT().UpdateDetails(gomock.Any(), userID, "Ana Lopez", &trimmedPhone, &birthday).
					Return(&domain.Profile{UserID: userID, FullName: "Ana Lopez"}, nil)
				m.settings.EXPECT().Get(gomock.Any()).Return(defaults(), nil)
			},
		},
		{
			name:  "Blank phone clears it",
			input: DetailsInput{FullName: "Ana", Phone: &blank},
			prepareMock: func() {
				m.profileRepo.EXPECT().UpdateDetails(gomock.Any(), userID, "Ana", nil, nil).
					Return(&domain.Profile{UserID: userID, FullName: "Ana"}, nil)
				m.settings.EXPECT().Get(gomock.Any()).Return(defaults(), nil)
			},
		},
		{
			name:          "Empty name",
			input:         DetailsInput{FullName: "  "},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidDetails,
		},
		{
			name:          "Birthday in the future",
			input:         DetailsInput{FullName: "Ana", Birthday: &future},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidDetails,
		},
		{
			name:  "Profile not found",
			input: DetailsInput{FullName: "Ana"},
			prepareMock: func() {
				m.profileRepo.EXPECT().UpdateDetails(gomock.Any(), userID, "Ana", nil, nil).Return(nil, nil)
			},
			expectedError: domain.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			view, err := service.UpdateDetails(context.Background(), userID, tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, userID, view.UserID)
		})
	}
}

func TestSearch(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		query         string
		limit         int
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Default limit",
			query: " ana ",
			prepareMock: func() {
				m.profileRepo.EXPECT().Search(gomock.Any(), "ana", defaultSearchLimit).Return([]domain.Profile{{FullName: "Ana"}}, nil)
			},
		},
		{
			name:  "Limit is capped",
			query: "ana",
			limit: 10000,
			prepareMock: func() {
				m.profileRepo.EXPECT().Search(gomock.Any(), "ana", maxSearchLimit).Return(nil, nil)
			},
		},
		{
			name:  "Repository error",
			query: "ana",
			limit: 5,
			prepareMock: func() {
				m.profileRepo.EXPECT().Search(gomock.Any(), "ana", 5).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.Search(context.Background(), tt.query, tt.limit)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSetRole(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()

	tests := []struct {
		name          string
		role          domain.Role
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Promote to admin",
			role: domain.RoleAdmin,
			prepareMock: func() {
				m.userRepo.EXPECT().SetRole(gomock.Any(), userID, domain.RoleAdmin).Return(true, nil)
			},
		},
		{
			name:          "Unknown role",
			role:          domain.Role("barista"),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidRole,
		},
		{
			name: "Unknown user",
			role: domain.RoleMember,
			prepareMock: func() {
				m.userRepo.EXPECT().SetRole(gomock.Any(), userID, domain.RoleMember).Return(false, nil)
			},
			expectedError: domain.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.SetRole(context.Background(), userID, tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRankInfo(t *testing.T) {
	service, m := NewMock(t)

	m.settings.EXPECT().Get(gomock.Any()).Return(defaults(), nil)
	info, err := service.RankInfo(context.Background(), 600)
	assert.NoError(t, err)
	assert.Equal(t, domain.RankGold, info.Rank)
	assert.Nil(t, info.NextRank)
	assert.Equal(t, 25, info.DiscountPercent)

	_, err = service.RankInfo(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
