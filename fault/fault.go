// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CapacityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type SemanticError GenericError
type StructureError GenericError

// common errors - keep in alphabetic order
var (
	ErrActionBufferOverflow        = CapacityError("action payload exceeds buffer capacity")
	ErrAlreadyInitialised          = ExistsError("already initialised")
	ErrChunkNotConsumed            = StructureError("previous chunk not fully consumed")
	ErrConfigurationNotTable       = InvalidError("configuration did not return a table")
	ErrContextFaulted              = ProcessError("parser context already faulted")
	ErrEmptyOperation              = StructureError("operation record is empty")
	ErrFieldBufferOverflow         = CapacityError("field value exceeds buffer capacity")
	ErrInvalidAddressChecksum      = InvalidError("invalid address checksum")
	ErrInvalidAddressLength        = InvalidError("invalid address length")
	ErrInvalidAddressPrefix        = InvalidError("invalid address prefix")
	ErrInvalidArgumentIndex        = InvalidError("invalid argument index")
	ErrInvalidAssetPrecision       = StructureError("invalid asset precision")
	ErrInvalidAssetSymbol          = StructureError("invalid asset symbol")
	ErrInvalidChain                = InvalidError("invalid chain")
	ErrInvalidFieldLength          = StructureError("invalid field length")
	ErrInvalidFieldTag             = StructureError("invalid field tag")
	ErrInvalidHex                  = InvalidError("invalid hexadecimal data")
	ErrInvalidLengthEncoding       = InvalidError("invalid length encoding")
	ErrInvalidLengthPrefix         = StructureError("invalid length prefix")
	ErrInvalidLoggerChannel        = InvalidError("invalid logger channel")
	ErrInvalidPublicKey            = InvalidError("invalid public key")
	ErrInvalidSizeField            = StructureError("invalid size field")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrMultipleCommentExtensions   = SemanticError("more than one comment options extension")
	ErrNilParameter                = InvalidError("nil digest handle or content")
	ErrNoActionReady               = InvalidError("no action ready")
	ErrNoOperations                = StructureError("transaction has no operations")
	ErrNotFoundJournalEntry        = NotFoundError("journal entry not found")
	ErrNotFoundConfigFile          = NotFoundError("config file is not found")
	ErrNotInitialised              = NotFoundError("not initialised")
	ErrNonZeroExtensionCount       = InvariantError("extension count is not zero")
	ErrSizeBufferOverflow          = CapacityError("size field exceeds buffer capacity")
	ErrTagBufferOverflow           = CapacityError("length prefix exceeds buffer capacity")
	ErrTransactionComplete         = StructureError("data after end of transaction")
	ErrTruncatedField              = StructureError("field is truncated")
	ErrUnsupportedCommentExtension = SemanticError("unsupported comment options extension")
	ErrUnsupportedOperation        = SemanticError("unsupported operation")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CapacityError) Error() string  { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e SemanticError) Error() string  { return string(e) }
func (e StructureError) Error() string { return string(e) }

// determine the class of an error
func IsErrCapacity(e error) bool  { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrInvariant(e error) bool { _, ok := e.(InvariantError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrSemantic(e error) bool  { _, ok := e.(SemanticError); return ok }
func IsErrStructure(e error) bool { _, ok := e.(StructureError); return ok }

// IsParseFault - true for any error class that makes a transaction
// untrustworthy and so must reject the review
func IsParseFault(e error) bool {
	return IsErrStructure(e) || IsErrCapacity(e) || IsErrSemantic(e) || IsErrInvariant(e)
}
