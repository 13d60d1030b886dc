// Package web serves the embedded browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var assets embed.FS

// RegisterRoutes mounts the client pages and their assets on the engine.
func RegisterRoutes(r *gin.Engine) {
	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}

	r.GET("/", page(staticFS, "index.html"))
	r.GET("/login", page(staticFS, "login.html"))
	r.GET("/history", page(staticFS, "history.html"))
	r.StaticFS("/assets", http.FS(staticFS))
}

func page(staticFS fs.FS, name string) gin.HandlerFunc {
	data, err := fs.ReadFile(staticFS, name)
	if err != nil {
		panic(err)
	}
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
}
