package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/superfeelapi/goCheckin/business/worker"
	"github.com/superfeelapi/goCheckin/foundation/config"
	"github.com/superfeelapi/goCheckin/foundation/external/faceapi"
	"github.com/superfeelapi/goCheckin/foundation/external/speaker"
	"github.com/superfeelapi/goCheckin/foundation/external/speech"
	"github.com/superfeelapi/goCheckin/foundation/logger"
	"github.com/superfeelapi/goCheckin/foundation/redis"
)

var (
	version   string
	buildTime string
)

func main() {
	// =================================================================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Patient struct {
			ID string `conf:"default:walk-in"`
		}
		Session struct {
			DurationSeconds int `conf:"default:20"`
			FrameIntervalMs int `conf:"default:300"`
		}
		FaceAPI struct {
			Endpoint string `conf:"default:http://127.0.0.1:5100"`
			ApiKey   string `conf:"default:cp132465,noprint"`
		}
		Speech struct {
			Scheme string `conf:"default:ws"`
			Host   string `conf:"default:127.0.0.1:5200"`
			Path   string `conf:"default:/transcribe"`
			ApiKey string `conf:"default:cp132465,noprint"`
		}
		Speaker struct {
			Endpoint string `conf:"default:http://127.0.0.1:5300/speak"`
		}
		Redis struct {
			Address        string `conf:"default:127.0.0.1:6379"`
			Password       string `conf:"noprint"`
			SessionChannel string `conf:"default:checkin:sessions"`
		}
		Rules struct {
			ConfigFilePath string
		}
		Logger struct {
			LogDirectory string `conf:"default:/var/log/goCheckin/,noprint"`
		}
	}{
		Version: conf.Version{
			Build: version,
			Desc:  buildTime,
		},
	}

	// Configuration Parsing
	_, err := conf.Parse("CHECKIN", &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing configuration: %s\n", err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Version Checking Support

	displayVersion := flag.Bool("version", false, "Display version and exit")
	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		fmt.Printf("Build time:\t%s\n", buildTime)
		os.Exit(0)
	}

	// =================================================================================================================
	// Application Logger

	log, err := logger.New(cfg.Logger.LogDirectory, cfg.Patient.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "constructing logger: %s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// =================================================================================================================
	// Rule Tables

	rules, err := config.GetRules(cfg.Rules.ConfigFilePath)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Configuration Stringify

	out, err := conf.String(&cfg)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}
	log.Infow("startup", "config", out)

	// =================================================================================================================
	// Redis

	redisClient, err := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.SessionChannel, log)
	if err != nil {
		// Storage outages never degrade the check-in flow.
		log.Errorw("startup: redis", "ERROR", err)
	}

	// =================================================================================================================
	// Capture Collaborators

	detector := faceapi.New(cfg.FaceAPI.Endpoint, cfg.FaceAPI.ApiKey)

	stream, err := speech.Dial(cfg.Speech.Scheme, cfg.Speech.Host, cfg.Speech.Path, cfg.Speech.ApiKey)
	if err != nil {
		log.Errorw("startup: speech", "ERROR", err)
		os.Exit(1)
	}
	defer stream.Close()

	announcer := speaker.New(cfg.Speaker.Endpoint)

	// =================================================================================================================
	// Run Worker

	settings := worker.Settings{
		Config: worker.Config{
			SessionDuration: time.Duration(cfg.Session.DurationSeconds) * time.Second,
			FrameInterval:   time.Duration(cfg.Session.FrameIntervalMs) * time.Millisecond,
		},
		Logger:    log,
		Detector:  detector,
		Speech:    stream,
		Announcer: announcer,
		Rules:     rules,
	}
	if redisClient != nil {
		settings.Persister = redisClient
		defer redisClient.Close()
	}

	w := worker.New(settings)
	workerCh := w.Run()

	if err := w.Start(cfg.Patient.ID, nil); err != nil {
		log.Errorw("startup: start session", "ERROR", err)
		w.Shutdown(err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Wait for the session result or a termination signal.

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case res := <-w.Results():
		log.Infow("session complete",
			"sessionID", res.SessionID,
			"emotion", res.CombinedResult.Emotion,
			"confidence", res.CombinedResult.Confidence,
			"source", res.Source,
			"voiceTone", res.VoiceTone,
			"medication", res.Recommendation.Medication,
			"dosage", res.Recommendation.Dosage,
		)
		w.Shutdown(nil)

	case sig := <-shutdown:
		log.Infow("shutdown", "signal", sig)
		if err := w.Abort(); err == nil {
			res := <-w.Results()
			log.Infow("session aborted", "sessionID", res.SessionID, "emotion", res.CombinedResult.Emotion)
		}
		w.Shutdown(nil)
	}

	err = <-workerCh

	log.Infow("shutdown", "status", "shutdown started")
	defer log.Infow("shutdown", "status", "shutdown complete")

	if err != nil {
		log.Errorw("shutdown", "ERROR", err)
	}
}
