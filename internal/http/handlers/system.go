package handlers

import (
	"net/http"
	"sort"

	"flicktickets/internal/repositories"
	"flicktickets/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "ts": utils.FormatISO(utils.NowUTC())})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	n, err := repositories.UserRepository{DB: currentDeps().DB}.CountUsers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database query failed.", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database connection OK.", "users_in_db": n})
}

// GET /api/routes
func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "Router is not ready.", "")
		return
	}

	routes := r.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path, "handler": rt.Handler})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "routes": out})
}
