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

package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/optakt/star-registry/models/registry"
)

// Ledger is the read surface of the chain exposed over HTTP.
type Ledger interface {
	Height() uint64
	ByHash(hash string) (registry.Block, error)
	ByHeight(height uint64) (registry.Block, error)
	StarsByOwner(address string) []registry.Star
	Faults() registry.Faults
}

// Protocol is the admission surface exposed over HTTP.
type Protocol interface {
	RequestChallenge(address string) string
	Submit(address string, message string, signature string, star registry.Star) (registry.Block, error)
}

// Controller implements the HTTP handlers for the star registry. It is a
// thin wrapper: all admission and chain logic lives behind the injected
// interfaces.
type Controller struct {
	ledger   Ledger
	protocol Protocol
}

// NewController creates a new Controller.
func NewController(ledger Ledger, protocol Protocol) *Controller {

	c := Controller{
		ledger:   ledger,
		protocol: protocol,
	}

	return &c
}

type ChallengeRequest struct {
	Address string `json:"address"`
}

type ChallengeResponse struct {
	Address string `json:"address"`
	Message string `json:"message"`
}

// Challenge hands out the message the caller must sign to submit a star.
func (c *Controller) Challenge(ctx echo.Context) error {

	var req ChallengeRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request has empty address field")
	}

	res := ChallengeResponse{
		Address: req.Address,
		Message: c.protocol.RequestChallenge(req.Address),
	}

	return ctx.JSON(http.StatusOK, res)
}

type SubmitRequest struct {
	Address   string        `json:"address"`
	Message   string        `json:"message"`
	Signature string        `json:"signature"`
	Star      registry.Star `json:"star"`
}

// Submit runs a star submission through the admission protocol and returns
// the appended block.
func (c *Controller) Submit(ctx echo.Context) error {

	var req SubmitRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request has empty address field")
	}

	block, err := c.protocol.Submit(req.Address, req.Message, req.Signature, req.Star)

	var mmErr registry.MalformedMessage
	if errors.As(err, &mmErr) {
		return echo.NewHTTPError(http.StatusBadRequest, mmErr.Error())
	}
	var ecErr registry.ExpiredChallenge
	if errors.As(err, &ecErr) {
		return echo.NewHTTPError(http.StatusForbidden, ecErr.Error())
	}
	var isErr registry.InvalidSignature
	if errors.As(err, &isErr) {
		return echo.NewHTTPError(http.StatusUnauthorized, isErr.Error())
	}
	var starErr registry.InvalidStar
	if errors.As(err, &starErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, starErr.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(http.StatusCreated, block)
}

// BlockByHeight returns the block at the given height.
func (c *Controller) BlockByHeight(ctx echo.Context) error {

	height, err := strconv.ParseUint(ctx.Param("height"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	block, err := c.ledger.ByHeight(height)
	if errors.Is(err, registry.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(http.StatusOK, block)
}

// BlockByHash returns the block with the given hash.
func (c *Controller) BlockByHash(ctx echo.Context) error {

	block, err := c.ledger.ByHash(ctx.Param("hash"))
	if errors.Is(err, registry.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return ctx.JSON(http.StatusOK, block)
}

type StarsResponse struct {
	Address string          `json:"address"`
	Stars   []registry.Star `json:"stars"`
}

// StarsByOwner returns the stars registered by the given address, in chain
// order.
func (c *Controller) StarsByOwner(ctx echo.Context) error {

	address := ctx.Param("address")
	if address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request has empty address parameter")
	}

	res := StarsResponse{
		Address: address,
		Stars:   c.ledger.StarsByOwner(address),
	}

	return ctx.JSON(http.StatusOK, res)
}

type FaultsResponse struct {
	Height uint64          `json:"height"`
	Faults registry.Faults `json:"faults"`
}

// ChainFaults runs the full-chain validation scan and returns the collected
// diagnostics.
func (c *Controller) ChainFaults(ctx echo.Context) error {

	res := FaultsResponse{
		Height: c.ledger.Height(),
		Faults: c.ledger.Faults(),
	}

	return ctx.JSON(http.StatusOK, res)
}
