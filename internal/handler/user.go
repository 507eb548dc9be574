package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"zipabout/internal/domain"
	"zipabout/internal/service"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	registry *service.RentalRegistry
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(registry *service.RentalRegistry) *UserHandler {
	return &UserHandler{registry: registry}
}

// RegisterRequest is the HTTP request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // CUSTOMER or ADMIN
}

// LoginRequest is the HTTP request body for a credential check.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the HTTP response for user data.
type UserResponse struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	LoyaltyPoints    int    `json:"loyalty_points"`
	CompletedRentals int    `json:"completed_rentals"`
	VIP              bool   `json:"vip"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Name:             u.Name,
		Role:             string(u.Role),
		LoyaltyPoints:    u.LoyaltyPoints(),
		CompletedRentals: u.CompletedRentals(),
		VIP:              u.IsVIP(),
	}
}

// Register handles POST /v1/users
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" || req.Username == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name and username are required"})
		return
	}

	role := domain.Role(req.Role)
	if role != "" && role != domain.RoleCustomer && role != domain.RoleAdmin {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role must be CUSTOMER or ADMIN"})
		return
	}

	user, err := domain.NewUser(uuid.New().String(), req.Username, req.Name, req.Password, role)
	if err != nil {
		respondError(c, err)
		return
	}

	response := toUserResponse(user.Snapshot())
	if err := h.registry.RegisterUser(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, response)
}

// Login handles POST /v1/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.registry.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users := h.registry.Users()

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}

	c.JSON(http.StatusOK, response)
}

// GetUser handles GET /v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.registry.User(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// Remove handles DELETE /v1/users/:id
func (h *UserHandler) Remove(c *gin.Context) {
	if err := h.registry.RemoveUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Redeem handles POST /v1/users/:id/redeem
func (h *UserHandler) Redeem(c *gin.Context) {
	user, err := h.registry.RedeemFreeRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(user))
}

// Rentals handles GET /v1/users/:id/rentals?scope=active|past|all
func (h *UserHandler) Rentals(c *gin.Context) {
	userID := c.Param("id")
	if _, err := h.registry.User(userID); err != nil {
		respondError(c, err)
		return
	}

	var rentals []domain.Rental
	switch c.DefaultQuery("scope", "all") {
	case "active":
		rentals = h.registry.ActiveRentalsForUser(userID)
	case "past":
		rentals = h.registry.PastRentalsForUser(userID)
	case "all":
		rentals = h.registry.RentalsForUser(userID)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "scope must be active, past or all"})
		return
	}

	respondJSON(c, http.StatusOK, toRentalResponses(rentals))
}
