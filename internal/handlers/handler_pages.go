package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerPageRoutes(r *gin.Engine) {
	r.GET("/", getIndexPage)
	r.GET("/summary", getSummaryPage)
}

// getIndexPage renders the transaction entry form.
func getIndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Expense Tracker"})
}

// getSummaryPage renders the transaction list and totals.
func getSummaryPage(c *gin.Context) {
	c.HTML(http.StatusOK, "summary.html", gin.H{"Title": "Expense Tracker - Summary"})
}
