package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuthHandler(db *gorm.DB, secret string, ttl time.Duration) *AuthHandler {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthHandler{db: db, secret: []byte(secret), ttl: ttl}
}

// --------- Requests ---------

type RegisterAdminRequest struct {
	ProviderName     string `json:"providerName" binding:"required,max=100"`
	ProviderSlug     string `json:"providerSlug" binding:"required,max=100"`
	ProviderPhone    string `json:"providerPhone" binding:"omitempty,phone"`
	ProviderAddress  string `json:"providerAddress" binding:"max=255"`
	ProviderTimezone string `json:"providerTimezone"`

	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
}

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"omitempty,phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User     *models.User     `json:"user"`
	Provider *models.Provider `json:"provider,omitempty"`
	Token    string           `json:"token"`
}

// defaultWeek is the schedule a new provider starts with: Monday to Saturday
// 09:00-18:00, closed on Sunday.
func defaultWeek(providerID uint) []models.WorkingDay {
	days := make([]models.WorkingDay, 0, 7)
	for wd := 0; wd <= 6; wd++ {
		days = append(days, models.WorkingDay{
			ProviderID: providerID,
			Weekday:    wd,
			StartTime:  "09:00",
			EndTime:    "18:00",
			IsOpen:     wd != int(time.Sunday),
		})
	}
	return days
}

// --------- Handlers ---------

// RegisterAdmin creates a provider together with its first admin.
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	tz := req.ProviderTimezone
	if tz == "" {
		tz = timezone.Default()
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário.")
		return
	}

	provider := models.Provider{
		Name:     strings.TrimSpace(req.ProviderName),
		Slug:     strings.ToLower(strings.TrimSpace(req.ProviderSlug)),
		Phone:    validators.NormalizePhone(req.ProviderPhone),
		Address:  strings.TrimSpace(req.ProviderAddress),
		Timezone: tz,
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        validators.NormalizePhone(req.Phone),
		Role:         models.RoleAdmin,
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&provider).Error; err != nil {
			return err
		}

		user.ProviderID = &provider.ID
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		week := defaultWeek(provider.ID)
		return tx.Create(&week).Error
	})
	if repository.IsUniqueViolation(err) {
		httperr.BadRequest(c, "already_registered", "Slug ou e-mail já cadastrado.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_register", "Erro ao criar cadastro.")
		return
	}

	h.respondWithToken(c, http.StatusCreated, &user, &provider)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        validators.NormalizePhone(req.Phone),
		Role:         models.RoleCustomer,
	}

	err = h.db.WithContext(c.Request.Context()).Create(&user).Error
	if repository.IsUniqueViolation(err) {
		httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	h.respondWithToken(c, http.StatusCreated, &user, nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Provider").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro inesperado. Tente novamente.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	provider := user.Provider
	user.Provider = nil

	h.respondWithToken(c, http.StatusOK, &user, provider)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User, provider *models.Provider) {
	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(status, AuthResponse{
		User:     user,
		Provider: provider,
		Token:    token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(h.ttl).Unix(),
		"iat":  now.Unix(),
	}
	if user.ProviderID != nil {
		claims["providerId"] = *user.ProviderID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}
