// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2024 Freightline Ltd.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	CannotDecodeAddress          = InvalidError("cannot decode address")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	InvalidItemSize              = InvalidError("invalid item size")
	InvalidLoggerChannel         = InvalidError("invalid logger channel")
	InvalidReservationAmount     = InvalidError("invalid reservation amount")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidToken                 = InvalidError("invalid token")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotInitialised               = ProcessError("not initialised")
	PaymentNotVerified           = NotFoundError("payment not verified")
	RateLimiting                 = ProcessError("rate limiting")
	ReservationNotFound          = NotFoundError("reservation not found")
	WrongDatabaseVersion         = ProcessError("wrong database version")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - detect an InvalidError
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - detect a NotFoundError
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - detect a ProcessError
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
