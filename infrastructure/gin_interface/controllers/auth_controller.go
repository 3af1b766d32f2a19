package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
	"github.com/JovialSquirrel/local-news-podcast/infrastructure/gin_interface/dto"
	"github.com/JovialSquirrel/local-news-podcast/middleware"
)

type AuthController interface {
	ShowLogin(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type authController struct {
	logger   outbound.LoggerPort
	verifier outbound.CredentialVerifierPort
	sessions middleware.SessionManager
}

func NewAuthController(
	logger outbound.LoggerPort,
	verifier outbound.CredentialVerifierPort,
	sessions middleware.SessionManager,
) AuthController {
	return &authController{
		logger:   logger,
		verifier: verifier,
		sessions: sessions,
	}
}

func (a *authController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"Flash": takeFlash(c)})
}

func (a *authController) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "Invalid credentials")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := a.verifier.Verify(form.Username, form.Password); err != nil {
		if !errors.Is(err, domain.ErrAuthFailure) {
			a.logger.Error(err, "credential verification failed")
		}
		setFlash(c, "Invalid credentials")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := a.sessions.Issue(form.Username)
	if err != nil {
		a.logger.Error(err, "failed to issue session token")
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, a.sessions.CookieMaxAge(), "/", "", false, true)
	c.Redirect(http.StatusFound, "/select-news")
}

func (a *authController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (a *authController) RegisterRoutes(g *gin.Engine) {
	g.GET("/login", a.ShowLogin)
	g.POST("/login", a.Login)
	g.GET("/logout", a.Logout)
}
