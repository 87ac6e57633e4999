package dashboard

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Handler serves the dashboard's static files from dir. Unknown paths without
// a file extension fall back to index.html so client-side routes resolve.
func Handler(dir string) http.Handler {
	root := http.Dir(dir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := filepath.Clean("/" + r.URL.Path)
		if p != "/" && filepath.Ext(p) == "" {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p))); err != nil {
				http.ServeFile(w, r, filepath.Join(dir, "index.html"))
				return
			}
		}
		if strings.HasSuffix(p, "/index.html") {
			r.URL.Path = strings.TrimSuffix(p, "index.html")
		}
		files.ServeHTTP(w, r)
	})
}
