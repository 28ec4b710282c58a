// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/utils"
	"github.com/MKhiriev/go-postcrossing/models"
)

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. adapterCfg.HTTPAddress may omit the scheme, "http" is
// assumed then.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("http server adapter created")

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Hello(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/hello")
	if err != nil {
		return "", fmt.Errorf("hello request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/users/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}

	var registered models.RegisterResponse
	if err = decodeResponse(resp, &registered); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register: %w", err)
	}

	return registered, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID string) (models.User, error) {
	resp, err := h.request(ctx).
		SetPathParam("userId", userID).
		Get("/api/users/{userId}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}

	var user models.User
	if err = decodeResponse(resp, &user); err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) RequestAddress(ctx context.Context, senderID string) (models.AddressResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddressRequest{SenderID: senderID}).
		Post("/api/postcards/request-address")
	if err != nil {
		return models.AddressResponse{}, fmt.Errorf("request address request: %w", err)
	}

	var assignment models.AddressResponse
	if err = decodeResponse(resp, &assignment); err != nil {
		return models.AddressResponse{}, fmt.Errorf("request address: %w", err)
	}

	return assignment, nil
}

func (h *httpServerAdapter) ConfirmReceipt(ctx context.Context, postcardID string) (string, error) {
	resp, err := h.request(ctx).
		SetPathParam("postcardId", postcardID).
		Put("/api/postcards/{postcardId}/received")
	if err != nil {
		return "", fmt.Errorf("confirm receipt request: %w", err)
	}

	var msg models.MessageResponse
	if err = decodeResponse(resp, &msg); err != nil {
		return "", fmt.Errorf("confirm receipt: %w", err)
	}

	return msg.Message, nil
}

func (h *httpServerAdapter) GetPostcard(ctx context.Context, postcardID string) (models.Postcard, error) {
	resp, err := h.request(ctx).
		SetPathParam("postcardId", postcardID).
		Get("/api/postcards/{postcardId}")
	if err != nil {
		return models.Postcard{}, fmt.Errorf("get postcard request: %w", err)
	}

	var postcard models.Postcard
	if err = decodeResponse(resp, &postcard); err != nil {
		return models.Postcard{}, fmt.Errorf("get postcard: %w", err)
	}

	return postcard, nil
}

// request starts a request bound to ctx, forwarding its trace id.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func decodeResponse(resp *resty.Response, v any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
