// Package mock provides an in-memory implementation of database.DB for testing.
package mock

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/avasek/userdeck/internal/database"
)

// MockDB is a mock implementation of database.DB for testing.
type MockDB struct {
	mu sync.RWMutex

	users      map[uint]*database.User
	nextUserID uint

	profiles      map[uint]*database.Profile // keyed by user ID
	nextProfileID uint

	// Error simulation
	CreateUserError            error
	GetUserByIDError           error
	GetProfileByUserIDError    error
	UpdateProfileSettingsError error
	AppendProfileImageError    error

	// AppendProfileImageHook runs at the start of AppendProfileImage when
	// set, which lets tests interfere with the written file mid-operation.
	AppendProfileImageHook func(imagePath string)
}

var _ database.DB = (*MockDB)(nil)

// NewMockDB creates a new MockDB instance.
func NewMockDB() *MockDB {
	return &MockDB{
		users:         make(map[uint]*database.User),
		nextUserID:    1,
		profiles:      make(map[uint]*database.Profile),
		nextProfileID: 1,
	}
}

// Reset clears all data and errors from the mock database.
func (m *MockDB) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[uint]*database.User)
	m.nextUserID = 1
	m.profiles = make(map[uint]*database.Profile)
	m.nextProfileID = 1

	m.CreateUserError = nil
	m.GetUserByIDError = nil
	m.GetProfileByUserIDError = nil
	m.UpdateProfileSettingsError = nil
	m.AppendProfileImageError = nil
	m.AppendProfileImageHook = nil
}

func (m *MockDB) CreateUser(_ context.Context, user *database.User) error {
	if m.CreateUserError != nil {
		return m.CreateUserError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextUserID
	m.nextUserID++

	user.Profile.ID = m.nextProfileID
	m.nextProfileID++
	user.Profile.UserID = user.ID
	if user.Profile.Images == nil {
		user.Profile.Images = database.StringList{}
	}

	stored := *user
	m.users[user.ID] = &stored
	profile := user.Profile
	m.profiles[user.ID] = &profile
	return nil
}

func (m *MockDB) GetUserByID(_ context.Context, id uint) (*database.User, error) {
	if m.GetUserByIDError != nil {
		return nil, m.GetUserByIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockDB) GetProfileByUserID(_ context.Context, userID uint) (*database.Profile, error) {
	if m.GetProfileByUserIDError != nil {
		return nil, m.GetProfileByUserIDError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.profileCopy(userID)
}

func (m *MockDB) UpdateProfileSettings(_ context.Context, userID uint, darkTheme bool, activeImage string) (*database.Profile, error) {
	if m.UpdateProfileSettingsError != nil {
		return nil, m.UpdateProfileSettingsError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	profile.DarkTheme = darkTheme
	profile.ActiveImage = activeImage
	return m.profileCopy(userID)
}

func (m *MockDB) AppendProfileImage(_ context.Context, userID uint, imagePath string) (*database.Profile, error) {
	if m.AppendProfileImageHook != nil {
		m.AppendProfileImageHook(imagePath)
	}
	if m.AppendProfileImageError != nil {
		return nil, m.AppendProfileImageError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	profile.Images = append(profile.Images, imagePath)
	return m.profileCopy(userID)
}

func (m *MockDB) Close() error {
	return nil
}

// profileCopy returns a deep copy of the stored profile. Callers must hold
// at least the read lock.
func (m *MockDB) profileCopy(userID uint) (*database.Profile, error) {
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *profile
	copied.Images = append(database.StringList{}, profile.Images...)
	return &copied, nil
}
