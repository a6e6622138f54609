// Package server wires configuration, storage, services and the gRPC
// transport into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophnotes/internal/cryptox"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/config"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophnotes/internal/server/services"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/gophnotes/internal/server/grpc"
)

var (
	openPostgres = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
		return repomanager.OpenPostgres(ctx, dsn)
	}
	openMongo = func(ctx context.Context, uri, database string) (repomanager.RepositoryManager, error) {
		return repomanager.OpenMongo(ctx, uri, database)
	}
	newRedisClient = func(o *redis.Options) redis.UniversalClient {
		return redis.NewClient(o)
	}
	newObjectAPI = func(ctx context.Context, c notes.S3Config) (notes.ObjectAPI, error) {
		return notes.NewS3Client(ctx, c)
	}
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	authService *services.AuthService
	noteService *services.NoteService
}

// NewApp opens storage, applies migrations and builds the services.
// Any failure here is fatal: a bad signing key or unreachable database
// must stop startup.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	key, err := c.SigningKey()
	if err != nil {
		return nil, err
	}
	codec, err := auth.NewTokenCodec(key, c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration)
	if err != nil {
		return nil, err
	}
	hasher, err := cryptox.NewPasswordHasher(cryptox.Algorithm(c.PasswordHashAlgorithm), c.BcryptCost)
	if err != nil {
		return nil, err
	}

	repos, err := openRepositories(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return &App{
		config:      c,
		logger:      logger,
		repos:       repos,
		authService: services.NewAuthService(repos, hasher, codec, logger),
		noteService: services.NewNoteService(repos, logger),
	}, nil
}

func openRepositories(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	var (
		base repomanager.RepositoryManager
		err  error
	)
	switch c.StorageBackend {
	case config.BackendPostgres:
		base, err = openPostgres(ctx, c.DatabaseDSN)
	case config.BackendMongo:
		base, err = openMongo(ctx, c.MongoURI, c.MongoDatabase)
	case config.BackendMemory:
		base = repomanager.NewInMemoryRepositoryManager()
	default:
		err = fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if err != nil {
		return nil, err
	}

	var o repomanager.Overrides

	if c.RefreshTokenStore == config.StoreRedis {
		rdb := newRedisClient(&redis.Options{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			_ = base.Close(ctx)
			return nil, fmt.Errorf("redis: %w", err)
		}
		o.RefreshTokens = refreshtokens.NewRedisRepository(rdb, "")
		o.Closers = append(o.Closers, io.Closer(rdb))
	}

	if c.NotesStore == config.StoreS3 {
		api, err := newObjectAPI(ctx, notes.S3Config{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
		})
		if err != nil {
			for _, cl := range o.Closers {
				_ = cl.Close()
			}
			_ = base.Close(ctx)
			return nil, fmt.Errorf("s3: %w", err)
		}
		o.Notes = notes.NewS3Repository(api, c.S3Bucket)
	}

	return repomanager.WithOverrides(base, o), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives,
// then releases storage.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.StorageBackend)

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.noteService)
	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "grpc server failed", "error", runErr)
	}

	if err := app.repos.Close(context.WithoutCancel(ctx)); err != nil {
		app.logger.Error(ctx, "storage close failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
