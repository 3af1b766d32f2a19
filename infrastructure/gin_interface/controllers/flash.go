package controllers

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookieName = "flash"

// setFlash stashes a one-shot message for the next page render. takeFlash
// clears it on read.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, url.QueryEscape(message), 60, "/", "", false, true)
}

func takeFlash(c *gin.Context) string {
	value, err := c.Cookie(flashCookieName)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	message, err := url.QueryUnescape(value)
	if err != nil {
		return ""
	}
	return message
}
