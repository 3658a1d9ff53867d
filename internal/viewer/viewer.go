package viewer

import (
	"NetSyncDiff/internal/config"
	"NetSyncDiff/internal/model"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<img src="/plot.png" alt="{{.Title}}">
<form method="post" action="/dismiss"><button type="submit">Close</button></form>
</body>
</html>
`))

// Viewer serves a rendered plot until it is dismissed.
type Viewer struct {
	title     string
	image     []byte
	router    *mux.Router
	dismissed chan struct{}
	once      sync.Once
}

// New creates a viewer for a PNG image.
func New(title string, image []byte) *Viewer {
	v := &Viewer{
		title:     title,
		image:     image,
		router:    mux.NewRouter(),
		dismissed: make(chan struct{}),
	}
	v.router.HandleFunc("/", v.pageHandler).Methods("GET")
	v.router.HandleFunc("/plot.png", v.plotHandler).Methods("GET")
	v.router.HandleFunc("/dismiss", v.dismissHandler).Methods("POST")
	return v
}

// Handler returns the HTTP handler serving the plot.
func (v *Viewer) Handler() http.Handler {
	return v.router
}

// Dismissed is closed once the user closes the viewer.
func (v *Viewer) Dismissed() <-chan struct{} {
	return v.dismissed
}

func (v *Viewer) pageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, struct{ Title string }{v.title}); err != nil {
		log.Printf("Failed to render viewer page: %v", err)
	}
}

func (v *Viewer) plotHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(v.image)
}

func (v *Viewer) dismissHandler(w http.ResponseWriter, r *http.Request) {
	v.once.Do(func() { close(v.dismissed) })
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("viewer closed\n"))
}

// Serve serves the viewer on lis and blocks until it is dismissed or ctx is
// done, then shuts the server down.
func (v *Viewer) Serve(ctx context.Context, lis net.Listener) error {
	server := &http.Server{Handler: v.router}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-v.dismissed:
		log.Println("Viewer dismissed.")
	case <-ctx.Done():
		log.Println("Viewer interrupted.")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("viewer forced to shutdown: %w", err)
	}
	if serveErr != nil {
		return fmt.Errorf("viewer server failed: %w", serveErr)
	}
	return nil
}

// Show renders avg and blocks until the viewer is dismissed.
func Show(ctx context.Context, avg model.AverageSeries, cfg config.ViewerConfig) error {
	image, err := Render(avg, ChartOptions{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", cfg.ListenAddr, err)
	}
	log.Printf("Plot available at http://%s/ (close it there or press Ctrl-C)", lis.Addr())

	return New(cfg.Title, image).Serve(ctx, lis)
}
