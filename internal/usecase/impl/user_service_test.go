package impl

import (
	"context"
	"testing"

	domainerrors "gemstore/internal/domain/errors"
	"gemstore/internal/domain/entity"
	"gemstore/internal/domain/repository"
	mockRepo "gemstore/internal/mocks/repository"
	mockService "gemstore/internal/mocks/service"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	runTx(fx.txManager, factory)

	fx.hasher.On("Hash", "Secret123!").Return("hashed-password", nil)
	txUserRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
	txUserRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.On("GenerateToken", mock.Anything, "alice@example.com").Return("session-token", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "Secret123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, entity.DefaultAvatar, output.User.Avatar)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	runTx(fx.txManager, factory)

	fx.hasher.On("Hash", "Secret123!").Return("hashed-password", nil)
	txUserRepo.On("FindByUsername", mock.Anything, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	// Nothing was persisted
	txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txUserRepo)
	runTx(fx.txManager, factory)

	fx.hasher.On("Hash", "Secret123!").Return("hashed-password", nil)
	txUserRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, repository.ErrUserNotFound)
	txUserRepo.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com"}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed-password",
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "Secret123!", "hashed-password").Return(true)
	fx.tokenService.On("GenerateToken", userID, "alice@example.com").Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Secret123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "hashed-password",
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed-password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Same error as a wrong password so account existence is not revealed
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
