// Package preview serves the visual editing workflow over HTTP: it
// lists the available fonts and templates and renders previews of
// marked-up text without going through a chat host.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/inkpress/inkpress"
)

// Server is the preview HTTP server. It renders through a shared
// Renderer, so repeated previews reuse the same font cache.
type Server struct {
	renderer *inkpress.Renderer
	srv      *http.Server
}

// New returns a Server listening on addr when Run is called.
func New(addr string, renderer *inkpress.Renderer) *Server {
	s := &Server{renderer: renderer}
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Handler returns the route table. Exposed separately so tests and
// embedding services can mount it without the listening socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /preview", s.handlePreview)
	mux.HandleFunc("GET /assets", s.handleAssets)
	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()
	inkpress.Logger().Info("preview server started", "addr", s.srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// previewRequest is the POST /preview body.
type previewRequest struct {
	Text    string           `json:"text"`
	Options inkpress.Options `json:"options"`
}

// handlePreview renders the posted text and answers with the encoded
// image bytes.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data, format, err := s.renderer.Generate(req.Text, req.Options)
	if err != nil {
		inkpress.Logger().Error("preview render failed", "err", err)
		writeError(w, http.StatusInternalServerError, "image generation failed")
		return
	}

	inkpress.Logger().Debug("preview rendered",
		"bytes", len(data), "format", format, "template", req.Options.TemplateName)
	w.Header().Set("Content-Type", "image/"+format)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// fontInfo is one entry of the /assets fonts listing.
type fontInfo struct {
	Name   string `json:"name"`
	Family string `json:"family,omitempty"`
}

// assetsResponse is the GET /assets body.
type assetsResponse struct {
	Templates []string   `json:"templates"`
	Fonts     []fontInfo `json:"fonts"`
}

// handleAssets lists the templates and fonts the renderer can use.
// Fonts are loaded through the shared cache to report their family
// names; a font that fails to parse is listed by file name alone.
func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	assets := s.renderer.Assets()

	templates, err := assets.Templates()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cannot list templates")
		return
	}
	fontNames, err := assets.Fonts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cannot list fonts")
		return
	}

	resp := assetsResponse{Templates: templates}
	for _, name := range fontNames {
		info := fontInfo{Name: name}
		if path, err := assets.FontPath(name); err == nil {
			if source, err := s.renderer.Fonts().Load(name, path); err == nil {
				info.Family = source.Family()
			}
		}
		resp.Fonts = append(resp.Fonts, info)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// writeError answers with a JSON error object.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
