package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	docs "github.com/snnyvrz/shelfshare/apps/books-mongo/internal/docs"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/handler"
	"github.com/snnyvrz/shelfshare/apps/books-mongo/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ShutdownFunc is called once the server has stopped accepting requests.
type ShutdownFunc func(ctx context.Context)

func NewRouter(store repository.BookRepository, startTime time.Time, version string) *gin.Engine {
	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Version = version

	healthHandler := handler.NewHealthHandler(store, startTime, version)
	healthHandler.RegisterRoutes(e)

	bookHandler := handler.NewBookHandler(store)
	bookHandler.RegisterRoutes(e.Group(""))

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}

// Run serves srv until ctx is done, then shuts it down gracefully within
// timeout and calls onShutdown. A listen failure is returned immediately.
func Run(ctx context.Context, srv *http.Server, timeout time.Duration, onShutdown ShutdownFunc) error {
	errCh := make(chan error, 1)

	go func() {
		log.Printf("Server is running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutdown server, waiting %v before killing", timeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)

	// The store is closed even when in-flight requests outlived the timeout,
	// with a fresh budget since shutdownCtx has expired by then.
	if onShutdown != nil {
		hookCtx := shutdownCtx
		if err != nil {
			var hookCancel context.CancelFunc
			hookCtx, hookCancel = context.WithTimeout(context.Background(), timeout)
			defer hookCancel()
		}
		onShutdown(hookCtx)
	}

	if err != nil {
		return errors.Wrap(err, "server shutdown")
	}

	log.Println("Server exiting")
	return nil
}
