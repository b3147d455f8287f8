// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/star-registry/api/rest"
	"github.com/optakt/star-registry/codec/hexjson"
	"github.com/optakt/star-registry/service/admission"
	"github.com/optakt/star-registry/service/ledger"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagLevel  string
		flagPort   uint16
		flagWindow time.Duration
	)

	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.Uint16VarP(&flagPort, "port", "p", 8000, "port to serve the registry API on")
	pflag.DurationVarP(&flagWindow, "window", "w", admission.DefaultWindow, "validity window for admission challenges")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// Core component initialization. The ledger seeds its genesis block
	// before it is handed to anything else.
	codec := hexjson.NewCodec()
	chain, err := ledger.New(log, codec)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize ledger")
		return failure
	}
	protocol := admission.New(log, chain, codec, admission.NewVerifier(),
		admission.WithWindow(flagWindow),
	)
	ctrl := rest.NewController(chain, protocol)

	// Registry API initialization.
	elog := lecho.From(log)
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.POST("/challenge", ctrl.Challenge)
	server.POST("/stars", ctrl.Submit)
	server.GET("/blocks/height/:height", ctrl.BlockByHeight)
	server.GET("/blocks/hash/:hash", ctrl.BlockByHash)
	server.GET("/stars/:address", ctrl.StarsByOwner)
	server.GET("/chain/faults", ctrl.ChainFaults)

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Msg("star registry server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("star registry server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("star registry server stopped")
	}()

	select {
	case <-sig:
		log.Info().Msg("star registry server stopping")
	case <-done:
		log.Info().Msg("star registry server done")
	case <-failed:
		log.Warn().Msg("star registry server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shutdown with a certain timeout and makes
	// sure that the server shut down within the allocated shutdown time.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down registry API")
		return failure
	}

	return success
}
