// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	ErrLoginFailed    = errors.New("login failed")
	ErrRegisterFailed = errors.New("registration failed")
	ErrTokenNotStored = errors.New("failed to persist token")
	ErrRestoreSession = errors.New("failed to restore session")
)
