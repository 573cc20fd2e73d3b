package service

import (
	"context"
	"strings"
	"time"

	"gastropos/internal/apierror"
	"gastropos/internal/config"
	"gastropos/internal/dto"
	"gastropos/internal/model"
	"gastropos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	CrearDesdeEmpleado(ctx context.Context, req dto.UsuarioDesdeEmpleadoRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo         repository.UsuarioRepository
	empleadoRepo repository.EmpleadoRepository
	cfg          *config.Config
	clock        Clock
}

func NewAuthService(repo repository.UsuarioRepository, empleadoRepo repository.EmpleadoRepository, cfg *config.Config, clock Clock) AuthService {
	return &authService{repo: repo, empleadoRepo: empleadoRepo, cfg: cfg, clock: clock}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, apierror.BadRequest(apierror.CodeMissingFields)
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if repository.IsNotFound(err) {
		return nil, apierror.Unauthorized(apierror.CodeBadCredentials)
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized(apierror.CodeBadCredentials)
	}

	ttl := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	token, err := s.generateToken(user, ttl)
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", user.ID.String()).Str("role", user.Role).Msg("user logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(ttl.Seconds()),
		User:      dto.UsuarioToResponse(user),
	}, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	email := strings.TrimSpace(req.Email)
	fullName := strings.TrimSpace(req.FullName)
	if email == "" || fullName == "" || req.Password == "" {
		return nil, apierror.BadRequest(apierror.CodeMissingFields)
	}
	empleadoID, err := parseOptionalID(req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if empleadoID != nil {
		if _, err := s.empleado(ctx, *empleadoID); err != nil {
			return nil, err
		}
	}
	return s.crear(ctx, email, fullName, req.Password, req.Role, empleadoID)
}

func (s *authService) CrearDesdeEmpleado(ctx context.Context, req dto.UsuarioDesdeEmpleadoRequest) (*dto.UsuarioResponse, error) {
	email := strings.TrimSpace(req.Email)
	if strings.TrimSpace(req.EmployeeID) == "" || email == "" || req.Password == "" {
		return nil, apierror.BadRequest(apierror.CodeMissingFields)
	}
	empleadoID, err := uuid.Parse(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return nil, apierror.BadRequest(apierror.CodeInvalidID)
	}
	emp, err := s.empleado(ctx, empleadoID)
	if err != nil {
		return nil, err
	}
	return s.crear(ctx, email, strings.TrimSpace(emp.NombreCompleto()), req.Password, req.Role, &empleadoID)
}

func (s *authService) crear(ctx context.Context, email, fullName, password, role string, empleadoID *uuid.UUID) (*dto.UsuarioResponse, error) {
	role = valorODefault(role, model.RolCajero)
	if !model.RolValido(role) {
		return nil, apierror.BadRequest(apierror.CodeInvalidRole)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	user := &model.Usuario{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		EmployeeID:   empleadoID,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err, "uq_users_email") {
			return nil, apierror.BadRequest(apierror.CodeEmailExists)
		}
		return nil, err
	}
	resp := dto.UsuarioToResponse(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = dto.UsuarioToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		if !model.RolValido(*req.Role) {
			return nil, apierror.BadRequest(apierror.CodeInvalidRole)
		}
		user.Role = *req.Role
	}
	if req.EmployeeID != nil {
		empleadoID, err := parseOptionalID(req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if empleadoID != nil {
			if _, err := s.empleado(ctx, *empleadoID); err != nil {
				return nil, err
			}
		}
		user.EmployeeID = empleadoID
		user.Employee = nil
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	user.UpdatedAt = s.clock.now()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.UsuarioToResponse(user)
	return &resp, nil
}

func (s *authService) DesactivarUsuario(ctx context.Context, id uuid.UUID) error {
	err := s.repo.SetActive(ctx, id, false)
	if repository.IsNotFound(err) {
		return apierror.NotFound(apierror.CodeUserNotFound)
	}
	return err
}

func (s *authService) empleado(ctx context.Context, id uuid.UUID) (*model.Empleado, error) {
	emp, err := s.empleadoRepo.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, apierror.NotFound(apierror.CodeEmployeeNotFound)
	}
	return emp, err
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
		"exp":       now.Add(duration).Unix(),
		"iat":       now.Unix(),
	}
	if user.EmployeeID != nil {
		claims["employee_id"] = user.EmployeeID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
