package testing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync"
	"testing"
)

// UpstreamFile is a model source served by the fake GitHub server.
// Dir is empty for files directly in the models directory.
type UpstreamFile struct {
	Dir    string
	Name   string
	Source string
}

type contentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

// UpstreamServer is a TLS test server mimicking the GitHub contents API for one repository.
type UpstreamServer struct {
	*httptest.Server

	mu            sync.Mutex
	requests      []string
	authorization map[string]string
}

// NewUpstreamServer serves files under /repos/<repository>/contents/<modelsPath>.
// Raw file bodies are served under /raw/. The server is closed on test cleanup.
func NewUpstreamServer(t *testing.T, repository, modelsPath string, files []UpstreamFile) *UpstreamServer {
	t.Helper()
	us := &UpstreamServer{authorization: map[string]string{}}
	listing := "/repos/" + repository + "/contents/" + modelsPath

	us.Server = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		us.mu.Lock()
		us.requests = append(us.requests, r.URL.Path)
		us.authorization[r.URL.Path] = r.Header.Get("Authorization")
		us.mu.Unlock()

		switch {
		case r.URL.Path == listing:
			writeJSON(w, us.entries(listing, "", files))
		case strings.HasPrefix(r.URL.Path, listing+"/"):
			dir := strings.TrimPrefix(r.URL.Path, listing+"/")
			writeJSON(w, us.entries(listing, dir, files))
		case strings.HasPrefix(r.URL.Path, "/raw/"):
			rel := strings.TrimPrefix(r.URL.Path, "/raw/")
			for _, f := range files {
				if path.Join(f.Dir, f.Name) == rel {
					_, _ = w.Write([]byte(f.Source))
					return
				}
			}
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`))
		}
	}))
	t.Cleanup(us.Close)
	return us
}

// Requests returns the path of every request received so far, in arrival order.
func (us *UpstreamServer) Requests() []string {
	us.mu.Lock()
	defer us.mu.Unlock()
	return append([]string(nil), us.requests...)
}

// Authorization returns the Authorization header sent with the last request for requestPath.
func (us *UpstreamServer) Authorization(requestPath string) string {
	us.mu.Lock()
	defer us.mu.Unlock()
	return us.authorization[requestPath]
}

// entries builds the listing of dir: its files, plus one "dir" entry per
// subdirectory when listing the top level. Order follows files.
func (us *UpstreamServer) entries(listing, dir string, files []UpstreamFile) []contentEntry {
	out := []contentEntry{}
	seenDirs := map[string]bool{}
	for _, f := range files {
		if f.Dir == dir {
			out = append(out, contentEntry{
				Name:        f.Name,
				Path:        path.Join(dir, f.Name),
				Type:        "file",
				DownloadURL: us.URL + "/raw/" + path.Join(f.Dir, f.Name),
			})
			continue
		}
		if dir == "" && !seenDirs[f.Dir] {
			seenDirs[f.Dir] = true
			out = append(out, contentEntry{
				Name: f.Dir,
				Path: f.Dir,
				Type: "dir",
				URL:  us.URL + listing + "/" + f.Dir,
			})
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
