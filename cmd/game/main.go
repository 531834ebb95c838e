package main

import (
	"context"
	"embed"
	"errors"
	"hash/maphash"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/watersort-server/internal/config"
	"github.com/vancomm/watersort-server/internal/database"
	"github.com/vancomm/watersort-server/internal/middleware"
	"github.com/vancomm/watersort-server/internal/repository"
	"github.com/vancomm/watersort-server/internal/watersort"
)

//go:embed migrations/*.sql
var migrations embed.FS

var log = logrus.New()

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func setupLogging() {
	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.InfoLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.WithError(err).Error("unable to set up file logging")
		} else {
			log.AddHook(hook)
		}
	}

	watersort.Log = log
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	setupLogging()

	db, err := database.ConnectAndMigrate(mainCtx, migrations)
	if err != nil {
		log.Fatal("unable to connect and migrate db: ", err)
	}
	defer db.Close()

	cookies, err := config.NewCookies()
	if err != nil {
		log.Fatal("unable to read cookies config: ", err)
	}

	jwt, err := config.NewJWT()
	if err != nil {
		log.Fatal("unable to read jwt config: ", err)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		log.Fatal("unable to read ws config: ", err)
	}

	app := &application{
		logger:  log,
		repo:    repository.New(db),
		cookies: cookies,
		jwt:     jwt,
		ws:      ws,
		rnd:     createRand(),
	}

	addr := config.Port()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			app.ServeMux(),
			middleware.Auth(log, cookies, jwt),
			middleware.Cors(),
			middleware.Logging(log),
		),
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("watersort server listening at %s", addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("exit reason: ", err)
	}
}
