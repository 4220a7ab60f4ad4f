package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SeasonGate guards the public form routes with the recruiting-season
// flag. The flag is read once at startup and injected here; flipping it
// requires a restart. The two routes redirect to each other so a
// bookmarked URL always lands on the right page for the current season.
type SeasonGate struct {
	Open bool
}

func NewSeasonGate(open bool) *SeasonGate {
	return &SeasonGate{Open: open}
}

// FormPage is the GET / route the application form loads from.
func (g *SeasonGate) FormPage(c *gin.Context) {
	if !g.Open {
		c.Redirect(http.StatusTemporaryRedirect, "/closed-season")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":    "Modulo di Candidatura JESAP",
		"subtitle": "Unisciti al nostro team e fai la differenza",
		"schema":   "/api/v1/schema",
		"submit":   "/api/v1/submit",
	})
}

// ClosedSeason is the GET /closed-season notice.
func (g *SeasonGate) ClosedSeason(c *gin.Context) {
	if g.Open {
		c.Redirect(http.StatusTemporaryRedirect, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":   "Candidature chiuse",
		"message": "Il periodo di reclutamento è terminato. Torna a trovarci alla prossima stagione!",
	})
}
