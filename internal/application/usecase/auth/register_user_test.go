package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingoou/backend/internal/application/adapter"
	"github.com/pingoou/backend/internal/domain/entity"
	domainerror "github.com/pingoou/backend/internal/domain/error"
)

// fakeUserRepo keeps users in memory, keyed by email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

// fakeProfileRepo records the profiles created through it.
type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}}
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, domainerror.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *entity.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) IncrementDataResetCount(_ context.Context, userID uuid.UUID) error {
	if p, ok := f.profiles[userID]; ok {
		p.DataResetCount++
	}
	return nil
}

// fakePasswordService hashes by prefixing; weak means shorter than 8 runes.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

// fakeTokenService issues predictable tokens and tracks invalidations.
type fakeTokenService struct {
	invalidated map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{invalidated: map[string]bool{}}
}

func (f *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, _ string, _ bool) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{
		AccessToken:  "access-" + userID.String(),
		RefreshToken: "refresh-" + userID.String(),
	}, nil
}

func (f *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if f.invalidated[token] {
		return nil, errors.New("invalidated")
	}
	return &adapter.TokenClaims{ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	f.invalidated[token] = true
	return nil
}

func (f *fakeTokenService) InvalidateAllUserTokens(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !f.invalidated[token], nil
}

func TestRegisterUser_CreatesDefaultProfile(t *testing.T) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	uc := NewRegisterUserUseCase(users, profiles, fakePasswordService{}, newFakeTokenService())

	out, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:     "dona@acai.com",
		Name:      "Dona Maria",
		StoreName: "Açaí da Dona",
		Password:  "SuperSecret1",
	})
	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)

	profile, err := profiles.FindByUser(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Açaí da Dona", profile.StoreName)
	assert.True(t, profile.DeliveryFeeBRL.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, entity.DefaultMascotSleepSeconds, profile.MascotSleepSeconds)
	assert.True(t, profile.CardRateCredit.IsZero())
}

func TestRegisterUser_RejectsDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewRegisterUserUseCase(users, newFakeProfileRepo(), fakePasswordService{}, newFakeTokenService())

	input := RegisterUserInput{Email: "dona@acai.com", Name: "Dona Maria", Password: "SuperSecret1"}
	_, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), input)
	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerror.ErrCodeEmailExists, authErr.Code)
}

func TestRegisterUser_RejectsInvalidInput(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo(), newFakeProfileRepo(), fakePasswordService{}, newFakeTokenService())

	tests := []struct {
		name     string
		input    RegisterUserInput
		wantCode domainerror.AuthErrorCode
	}{
		{
			name:     "malformed email",
			input:    RegisterUserInput{Email: "not-an-email", Password: "SuperSecret1"},
			wantCode: domainerror.ErrCodeInvalidEmail,
		},
		{
			name:     "weak password",
			input:    RegisterUserInput{Email: "dona@acai.com", Password: "short"},
			wantCode: domainerror.ErrCodeWeakPassword,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var authErr *domainerror.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}

func TestLoginUser_WrongPasswordIsGeneric(t *testing.T) {
	users := newFakeUserRepo()
	register := NewRegisterUserUseCase(users, newFakeProfileRepo(), fakePasswordService{}, newFakeTokenService())
	_, err := register.Execute(context.Background(), RegisterUserInput{
		Email:    "dona@acai.com",
		Name:     "Dona Maria",
		Password: "SuperSecret1",
	})
	require.NoError(t, err)

	login := NewLoginUserUseCase(users, fakePasswordService{}, newFakeTokenService())

	_, err = login.Execute(context.Background(), LoginUserInput{Email: "dona@acai.com", Password: "WrongPassword1"})
	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authErr.Code)

	// An unknown email yields the same code so emails cannot be enumerated.
	_, err = login.Execute(context.Background(), LoginUserInput{Email: "ghost@acai.com", Password: "SuperSecret1"})
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authErr.Code)
}

func TestLoginUser_Success(t *testing.T) {
	users := newFakeUserRepo()
	register := NewRegisterUserUseCase(users, newFakeProfileRepo(), fakePasswordService{}, newFakeTokenService())
	_, err := register.Execute(context.Background(), RegisterUserInput{
		Email:    "dona@acai.com",
		Name:     "Dona Maria",
		Password: "SuperSecret1",
	})
	require.NoError(t, err)

	login := NewLoginUserUseCase(users, fakePasswordService{}, newFakeTokenService())
	out, err := login.Execute(context.Background(), LoginUserInput{
		Email:      "dona@acai.com",
		Password:   "SuperSecret1",
		RememberMe: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "dona@acai.com", out.User.Email)
	assert.NotEmpty(t, out.AccessToken)
}
