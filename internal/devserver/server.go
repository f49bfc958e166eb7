package devserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/releve-app/releve/internal/client/models"
	"github.com/releve-app/releve/internal/logging"
)

const userIDKey = "userID"

// Server is the in-memory RELEVÉ API used for development and testing.
type Server struct {
	store  *Store
	secret []byte
	log    logging.Logger
	engine *gin.Engine
}

// New builds a server around a seeded store. secret signs the issued tokens.
func New(secret []byte, log logging.Logger) *Server {
	s := &Server{
		store:  NewStore(),
		secret: secret,
		log:    log,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/auth/login", s.login)
	r.POST("/auth/register", s.register)

	authed := r.Group("/", s.requireAuth())
	authed.GET("/business", s.listBusinesses)
	authed.GET("/business/:id", s.getBusiness)
	authed.GET("/business/:id/slots", s.listSlots)
	authed.GET("/business-categories", s.listCategories)
	authed.GET("/wallet", s.getWallet)
	authed.GET("/cities", s.listCities)
	authed.GET("/user/influencer", s.influencerStatus)
	authed.PUT("/user/avatar", s.updateAvatar)
	authed.POST("/apply/creator", s.applyCreator)

	s.engine = r
	return s
}

// Handler exposes the router, for both ListenAndServe and httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info(context.Background(), "dev server listening", "addr", addr)
	return s.engine.Run(addr)
}

// requireAuth validates the bearer token and stashes the user id in the
// request context. Missing or invalid tokens end the request with 401.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, err := parseAccessToken(s.secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if _, ok := s.store.userByID(userID); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User   models.User      `json:"user"`
	Tokens models.TokenPair `json:"tokens"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	acc, err := s.store.authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
		return
	}

	tokens, err := issueTokens(s.secret, acc.user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}
	c.JSON(http.StatusOK, authResponse{User: acc.user, Tokens: tokens})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	acc, err := s.store.register(req.Name, req.Email, req.Password)
	if err != nil {
		if err == ErrEmailTaken {
			c.JSON(http.StatusConflict, gin.H{"error": ErrEmailTaken.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	tokens, err := issueTokens(s.secret, acc.user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
		return
	}
	c.JSON(http.StatusCreated, authResponse{User: acc.user, Tokens: tokens})
}

func (s *Server) listBusinesses(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.listBusinesses(c.Query("category"), c.Query("q")))
}

func (s *Server) getBusiness(c *gin.Context) {
	b, ok := s.store.business(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) listSlots(c *gin.Context) {
	slots, ok := s.store.businessSlots(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.listCategories())
}

func (s *Server) listCities(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.listCities())
}

func (s *Server) getWallet(c *gin.Context) {
	wallet, ok := s.store.wallet(c.GetString(userIDKey))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

func (s *Server) influencerStatus(c *gin.Context) {
	acc, ok := s.store.userByID(c.GetString(userIDKey))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"influencer_status": acc.user.InfluencerStatus})
}

type avatarRequest struct {
	AvatarURL string `json:"avatar_url" binding:"required"`
}

func (s *Server) updateAvatar(c *gin.Context) {
	var req avatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !s.store.setAvatar(c.GetString(userIDKey), req.AvatarURL) {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_url": req.AvatarURL})
}

type creatorRequest struct {
	CityID        string `json:"city_id"`
	InstagramLink string `json:"instagram_link"`
	TikTokLink    string `json:"tiktok_link"`
}

func (s *Server) applyCreator(c *gin.Context) {
	var req creatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.CityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A city is required"})
		return
	}
	if req.InstagramLink == "" && req.TikTokLink == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one social link is required"})
		return
	}

	status, ok := s.store.applyCreator(c.GetString(userIDKey))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": gin.H{"status": status}})
}
