package services

//go:generate mockgen -source=user_service.go -destination=mocks/user_service.go -package=mocks

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"blog-cms/models"
	"blog-cms/repositories"
)

type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID uint, req models.UpdateUserRequest) (*models.User, error)
	BuildUserResponse(user *models.User) (*models.UserResponse, error)
}

type userService struct {
	userRepo   repositories.UserRepository
	txManager  repositories.TransactionManager
	tokens     *TokenManager
	bcryptCost int
}

func NewUserService(userRepo repositories.UserRepository, txManager repositories.TransactionManager, tokens *TokenManager) UserService {
	return &userService{
		userRepo:   userRepo,
		txManager:  txManager,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		Image:    req.Image,
		Password: string(hashedPassword),
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureIdentityFree(ctx, 0, &req.Name, &req.Email); err != nil {
			return err
		}
		return s.userRepo.Create(ctx, user)
	})
	if isDuplicate(err) {
		return nil, identityTaken()
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if isNotFound(err) {
		return nil, models.ErrorUnprocessable{Message: "Credentials are not valid"}
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "Password not valid"}
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, models.NotFoundf("User with id:%d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, userID uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if isNotFound(err) {
		return nil, models.Unprocessablef("User with id:%d not found", userID)
	}
	if err != nil {
		return nil, err
	}

	if err := checkUpdateFields(req.Fields, userUpdatableFields, "provide fields to update user"); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	var newName, newEmail *string
	if req.Name != nil && *req.Name != user.Name {
		newName = req.Name
		fields["name"] = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		newEmail = req.Email
		fields["email"] = *req.Email
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hashedPassword)
	}

	if len(fields) == 0 {
		return user, nil
	}

	err = s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureIdentityFree(ctx, user.ID, newName, newEmail); err != nil {
			return err
		}
		return s.userRepo.Updates(ctx, user.ID, fields)
	})
	if isDuplicate(err) {
		return nil, identityTaken()
	}
	if err != nil {
		return nil, err
	}

	return s.GetUserByID(ctx, user.ID)
}

func (s *userService) BuildUserResponse(user *models.User) (*models.UserResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &models.UserResponse{
		User: models.UserWithToken{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Bio:   user.Bio,
			Image: user.Image,
			Token: token,
		},
	}, nil
}

// ensureIdentityFree checks that name and email (when non-nil) are not used by
// any user other than exceptID.
func (s *userService) ensureIdentityFree(ctx context.Context, exceptID uint, name, email *string) error {
	if name != nil {
		existing, err := s.userRepo.GetByName(ctx, *name)
		if err == nil && existing.ID != exceptID {
			return identityTaken()
		}
		if err != nil && !isNotFound(err) {
			return err
		}
	}

	if email != nil {
		existing, err := s.userRepo.GetByEmail(ctx, *email)
		if err == nil && existing.ID != exceptID {
			return identityTaken()
		}
		if err != nil && !isNotFound(err) {
			return err
		}
	}

	return nil
}

func identityTaken() error {
	return models.ErrorUnprocessable{Message: "Email or Name are taken"}
}
