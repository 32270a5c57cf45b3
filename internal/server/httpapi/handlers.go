package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"orbit/internal/server/projects"
	"orbit/internal/server/users"
)

// GET /
func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Orbit API", "docs": "/docs"})
}

// GET /health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// GET /health/db
func (s *Server) healthDB(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Error(c.Request.Context(), "db ping failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "disconnected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
}

// POST /auth/register
func (s *Server) register(c *gin.Context) {

	var req struct {
		Email    string  `json:"email"`
		Password string  `json:"password"`
		FullName *string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		s.abortServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// POST /auth/login
//
// Credentials arrive as form fields (username/password), the username
// being the email. The response carries a bearer token pair.
func (s *Server) login(c *gin.Context) {

	email := c.PostForm("username")
	plainPassword := c.PostForm("password")
	if email == "" || plainPassword == "" {
		abortWithError(c, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	pair, err := s.users.Login(c.Request.Context(), email, plainPassword)
	if err != nil {
		s.abortServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(pair))
}

// POST /auth/refresh
func (s *Server) refresh(c *gin.Context) {

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		abortWithChallenge(c, "Could not validate credentials")
		return
	}

	pair, err := s.users.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		s.abortServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(pair))
}

// GET /auth/me
func (s *Server) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, newUserResponse(currentUser(c)))
}

// PUT /auth/me
func (s *Server) updateProfile(c *gin.Context) {

	var req struct {
		FullName *string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, err := s.users.UpdateProfile(c.Request.Context(), currentUser(c).ID, users.ProfileUpdate{FullName: req.FullName})
	if err != nil {
		s.abortServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// DELETE /auth/me
func (s *Server) deleteAccount(c *gin.Context) {

	if err := s.users.DeleteAccount(c.Request.Context(), currentUser(c).ID); err != nil {
		s.abortServiceError(c, err, "User not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// projectID pulls the :id path parameter. A non-UUID value is treated
// the same as a missing project.
func projectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Project not found")
		return uuid.Nil, false
	}
	return id, true
}

// POST /projects
func (s *Server) createProject(c *gin.Context) {

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Status      string  `json:"status"`
		Color       *string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	project, err := s.projects.Create(c.Request.Context(), currentUser(c).ID, projects.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Color:       req.Color,
	})
	if err != nil {
		s.abortServiceError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusCreated, newProjectResponse(project))
}

// GET /projects
func (s *Server) listProjects(c *gin.Context) {

	list, err := s.projects.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.abortServiceError(c, err, "Project not found")
		return
	}

	result := make([]projectResponse, 0, len(list))
	for i := range list {
		result = append(result, newProjectResponse(&list[i]))
	}

	c.JSON(http.StatusOK, result)
}

// GET /projects/:id
func (s *Server) getProject(c *gin.Context) {

	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := s.projects.Get(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		s.abortServiceError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

// PUT /projects/:id
func (s *Server) updateProject(c *gin.Context) {

	id, ok := projectID(c)
	if !ok {
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		Color       *string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	project, err := s.projects.Update(c.Request.Context(), currentUser(c).ID, id, projects.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Color:       req.Color,
	})
	if err != nil {
		s.abortServiceError(c, err, "Project not found")
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(project))
}

// DELETE /projects/:id
func (s *Server) deleteProject(c *gin.Context) {

	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := s.projects.Delete(c.Request.Context(), currentUser(c).ID, id); err != nil {
		s.abortServiceError(c, err, "Project not found")
		return
	}

	c.Status(http.StatusNoContent)
}
