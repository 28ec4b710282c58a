// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/service"
	"github.com/MKhiriev/go-postcrossing/internal/store"
	"github.com/MKhiriev/go-postcrossing/models"
)

const testPostcardID = "01890f5e-3a6b-7c1d-8e2f-000000000001"

func TestRequestAddress(t *testing.T) {
	assignment := models.AddressAssignment{
		Recipient: models.Recipient{User: models.User{ID: "u-b", Username: "B", Country: "Y"}, Score: 1},
		Address:   config.DefaultRecipientAddress,
		Postcard:  models.Postcard{ID: testPostcardID, Code: "PC-1700000000-0a1b2c3d"},
	}

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "assigned", body: `{"senderId":"` + testUserID + `"}`, wantStatus: http.StatusOK, wantMsg: "Address assigned to the most 'due' user!"},
		{name: "invalid JSON", body: `senderId`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid JSON was passed"},
		{name: "missing sender", body: `{}`, serviceErr: fmt.Errorf("%w: senderId", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest, wantMsg: "Missing required fields"},
		{name: "sender not found", body: `{"senderId":"` + testUserID + `"}`, serviceErr: store.ErrUserNotFound, wantStatus: http.StatusNotFound, wantMsg: "User not found"},
		{name: "no eligible recipient", body: `{"senderId":"` + testUserID + `"}`, serviceErr: store.ErrNoEligibleRecipient, wantStatus: http.StatusNotFound, wantMsg: "No eligible users available."},
		{name: "code conflict", body: `{"senderId":"` + testUserID + `"}`, serviceErr: fmt.Errorf("%w: gave up", store.ErrPostcardCodeConflict), wantStatus: http.StatusServiceUnavailable, wantMsg: "Service temporarily unavailable, try again later"},
		{name: "store failure", body: `{"senderId":"` + testUserID + `"}`, serviceErr: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError, wantMsg: "Error requesting address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postcards := &mockPostcardService{
				requestFn: func(_ context.Context, req models.AddressRequest) (models.AddressAssignment, error) {
					if tt.serviceErr != nil {
						return models.AddressAssignment{}, tt.serviceErr
					}
					assert.Equal(t, testUserID, req.SenderID)
					return assignment, nil
				},
			}

			rec := serve(newServicesHandler(&mockUserService{}, postcards), http.MethodPost, "/api/postcards/request-address", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantMsg, decodeMessage(t, rec.Body.Bytes()))
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp["message"])
			assert.Equal(t, testPostcardID, resp["postcardId"])
			assert.Equal(t, "PC-1700000000-0a1b2c3d", resp["postcardCode"])
			assert.Equal(t, map[string]any{
				"userId":   "u-b",
				"username": "B",
				"country":  "Y",
				"address":  "123 Fictional Street, Cityville, Country",
			}, resp["recipientInfo"])
		})
	}
}

func TestConfirmReceipt(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "received", wantStatus: http.StatusOK, wantMsg: "Postcard successfully registered as received!"},
		{name: "malformed id", serviceErr: fmt.Errorf("%w: x", service.ErrInvalidID), wantStatus: http.StatusBadRequest, wantMsg: "Invalid id"},
		{name: "not found", serviceErr: store.ErrPostcardNotFound, wantStatus: http.StatusNotFound, wantMsg: "Postcard not found."},
		{name: "already received", serviceErr: store.ErrPostcardAlreadyReceived, wantStatus: http.StatusBadRequest, wantMsg: "This postcard has already been registered."},
		{name: "store failure", serviceErr: store.ErrCommitingTransaction, wantStatus: http.StatusInternalServerError, wantMsg: "Error registering postcard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			postcards := &mockPostcardService{
				confirmFn: func(_ context.Context, postcardID string) (models.Postcard, error) {
					gotID = postcardID
					if tt.serviceErr != nil {
						return models.Postcard{}, tt.serviceErr
					}
					now := time.Now()
					return models.Postcard{ID: postcardID, Status: models.PostcardReceived, ReceivedAt: &now}, nil
				},
			}

			rec := serve(newServicesHandler(&mockUserService{}, postcards), http.MethodPut, "/api/postcards/"+testPostcardID+"/received", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, testPostcardID, gotID)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec.Body.Bytes()))
		})
	}
}

func TestGetPostcard(t *testing.T) {
	sent := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		postcards := &mockPostcardService{
			getFn: func(_ context.Context, postcardID string) (models.Postcard, error) {
				return models.Postcard{
					ID: postcardID, Code: "PC-1-00000000", SenderID: "a", ReceiverID: "b",
					Status: models.PostcardTraveling, SentAt: sent,
				}, nil
			},
		}

		rec := serve(newServicesHandler(&mockUserService{}, postcards), http.MethodGet, "/api/postcards/"+testPostcardID, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, testPostcardID, resp["id"])
		assert.Equal(t, "traveling", resp["status"])
		assert.Nil(t, resp["received_date"])
	})

	t.Run("not found", func(t *testing.T) {
		postcards := &mockPostcardService{
			getFn: func(context.Context, string) (models.Postcard, error) {
				return models.Postcard{}, store.ErrPostcardNotFound
			},
		}

		rec := serve(newServicesHandler(&mockUserService{}, postcards), http.MethodGet, "/api/postcards/"+testPostcardID, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Postcard not found.", decodeMessage(t, rec.Body.Bytes()))
	})
}
