// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// User-facing validation messages.
const (
	MsgLoginRequired    = "Fill in email and password."
	MsgRegisterRequired = "Fill in all fields."
	MsgInvalidEmail     = "Enter a valid email."
	MsgPasswordTooShort = "Password too short: at least 6 characters required."
	MsgPostRequired     = "Fill in all fields and select an image."
	MsgImageNotFound    = "Selected image file does not exist."
	MsgInvalidInput     = "Check the entered data."
)
