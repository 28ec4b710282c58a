// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidID           = errors.New("invalid id provided")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
