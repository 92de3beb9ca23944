package server

import (
	"fmt"
	"strconv"
	"time"

	"tutegram/internal/models"
	"tutegram/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Signup handles POST /api/v1/auth/signup
// @Summary User signup
// @Description Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.SignupInput true "Signup request"
// @Success 201 {object} object{message=string,data=models.PublicUser}
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/signup [post]
func (s *Server) Signup(c *fiber.Ctx) error {
	var req validation.SignupInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ValidateSignup(req); len(errs) > 0 {
		return models.RespondWithError(c,
			models.NewFieldValidationError("Validation failed", errs))
	}

	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c,
			models.NewValidationError("User already exists"))
	}
	taken, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if taken != nil {
		return models.RespondWithError(c,
			models.NewNotFoundError("UserName not available"))
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Age:       req.Age,
		Gender:    req.Gender,
		Location:  req.Location,
		Bio:       req.Bio,
		Interests: req.Interests,
	}
	if req.Password != "" {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return models.RespondWithError(c, models.NewInternalError(hashErr))
		}
		user.Password = string(hashed)
	}

	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, createErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"data":    user.Public(),
	})
}

// Login handles POST /api/v1/auth/login
// @Summary User login
// @Description Authenticate with email or username and receive a token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{loginIdentifier=string,password=string} true "Login credentials"
// @Success 200 {object} object{message=string,data=models.PublicUser,accessToken=string,refreshToken=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		LoginIdentifier string `json:"loginIdentifier"`
		Password        string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if req.LoginIdentifier == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("All fields are required"))
	}

	user, err := s.userRepo.GetByEmailOrUsername(c.Context(), req.LoginIdentifier)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil || user.Password == "" {
		return models.RespondWithError(c,
			models.NewNotFoundError("Invalid Credentials"))
	}
	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c,
			models.NewNotFoundError("Invalid Credentials"))
	}

	accessToken, refreshToken, err := s.issueTokenPair(c, user)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Login successful",
		"data":         user.Public(),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Logout handles POST /api/v1/auth/logout
// @Summary User logout
// @Description Revoke the current access token and clear auth cookies
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	userID := currentUserID(c)

	// Revoke the current access token until its natural expiry.
	if jti, ok := c.Locals("jti").(string); ok && jti != "" && s.redis != nil {
		ttl := accessTokenTTL
		if exp, expOk := c.Locals("exp").(int64); expOk {
			if until := time.Until(time.Unix(exp, 0)); until > 0 {
				ttl = until
			}
		}
		s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl)
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err == nil {
		user.RefreshToken = ""
		_ = s.userRepo.Update(c.Context(), user)
	}

	s.clearAuthCookies(c)

	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}

// RefreshToken handles POST /api/v1/auth/refresh-token
// @Summary Refresh token pair
// @Description Exchange a valid refresh token for a new access/refresh pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} object{message=string,accessToken=string,refreshToken=string}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/refresh-token [post]
func (s *Server) RefreshToken(c *fiber.Ctx) error {
	tokenString := c.Cookies("refreshToken")
	if tokenString == "" {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.BodyParser(&req); err == nil {
			tokenString = req.RefreshToken
		}
	}
	if tokenString == "" {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Refresh token required"))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid or expired refresh token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid token claims"))
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid token type"))
	}
	if issuer, _ := claims["iss"].(string); issuer != tokenIssuer {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid token issuer"))
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid subject claim"))
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid user ID in token"))
	}

	user, err := s.userRepo.GetByID(c.Context(), uint(userID))
	if err != nil {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid refresh token"))
	}

	// Rotation: the presented token must be the one stored at last issuance.
	if user.RefreshToken == "" || user.RefreshToken != tokenString {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid refresh token"))
	}

	accessToken, refreshToken, err := s.issueTokenPair(c, user)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Token refreshed",
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// UsernameExists handles POST /api/v1/auth/username-exists
// @Summary Username availability probe
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{userName=string} true "Username to check"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/username-exists [post]
func (s *Server) UsernameExists(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"userName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if req.Username == "" {
		return models.RespondWithError(c,
			models.NewValidationError("UserName is required"))
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user != nil {
		return models.RespondWithError(c,
			models.NewNotFoundError("UserName not available"))
	}

	return c.JSON(fiber.Map{
		"message": "UserName available",
	})
}

// UserExists handles POST /api/v1/user/user-exists
// @Summary Account existence probe by email
// @Tags user
// @Accept json
// @Produce json
// @Param request body object{email=string} true "Email to check"
// @Success 200 {object} object{message=string,exists=bool}
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/user-exists [post]
func (s *Server) UserExists(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Email is required"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c,
			models.NewNotFoundError("User not found"))
	}

	return c.JSON(fiber.Map{
		"message": "User exists",
		"exists":  true,
	})
}

// issueTokenPair mints a fresh access/refresh pair, stores the refresh token
// on the user record and sets both httpOnly cookies.
func (s *Server) issueTokenPair(c *fiber.Ctx, user *models.User) (string, string, error) {
	accessToken, err := s.generateToken(user.ID, user.Username, tokenTypeAccess, accessTokenTTL)
	if err != nil {
		return "", "", models.NewInternalError(err)
	}
	refreshToken, err := s.generateToken(user.ID, user.Username, tokenTypeRefresh, refreshTokenTTL)
	if err != nil {
		return "", "", models.NewInternalError(err)
	}

	user.RefreshToken = refreshToken
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return "", "", err
	}

	secure := s.config.Env == "production" || s.config.Env == "prod"
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Expires:  time.Now().Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return accessToken, refreshToken, nil
}

func (s *Server) clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "accessToken", Value: "", Expires: expired, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refreshToken", Value: "", Expires: expired, HTTPOnly: true})
}

// generateToken creates a signed JWT of the given type for the user.
func (s *Server) generateToken(userID uint, username, typ string, ttl time.Duration) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"typ":      typ,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
