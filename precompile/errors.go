package precompile

import (
	"errors"
	"fmt"

	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
)

var (
	// ErrDecode is the error returned when the input does not match the operation's schema.
	ErrDecode = errors.New("decode error")
	// ErrUnsupportedOperation is the error returned for unknown operations.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrUnsupportedSignatureType is the error returned for unknown signature type codes.
	ErrUnsupportedSignatureType = errors.New("unsupported signature type")
	// ErrAuthenticationFailed is the error returned when a ciphertext fails authentication.
	ErrAuthenticationFailed = errors.New("decryption failed")
	// ErrInvalidKeyMaterial is the error returned for malformed private or public keys.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
	// ErrGasPolicyViolation is the error returned when padding below the already used gas.
	ErrGasPolicyViolation = errors.New("gas pad amount less than already used gas")
	// ErrMalformedSubcallBody is the error returned when a sub-call body is not valid CBOR.
	ErrMalformedSubcallBody = errors.New("body is malformed")
	// ErrInvalidArgument is the error returned when a context or message is not acceptable
	// for the signature scheme.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidSignature is the error returned for malformed signature encodings.
	ErrInvalidSignature = errors.New("invalid signature encoding")
)

// Errors returns all error classes the dispatcher can produce.
func Errors() []error {
	return []error{
		ErrDecode,
		ErrUnsupportedOperation,
		ErrUnsupportedSignatureType,
		ErrAuthenticationFailed,
		ErrInvalidKeyMaterial,
		ErrGasPolicyViolation,
		ErrMalformedSubcallBody,
		ErrInvalidArgument,
		ErrInvalidSignature,
	}
}

// ErrorClass returns the error class of err, or nil if err does not belong to any.
func ErrorClass(err error) error {
	for _, class := range Errors() {
		if errors.Is(err, class) {
			return class
		}
	}
	return nil
}

// ErrorClassByName returns the error class with the given message, or nil if there is none.
func ErrorClassByName(name string) error {
	for _, class := range Errors() {
		if class.Error() == name {
			return class
		}
	}
	return nil
}

func decodeError(err error) error {
	return fmt.Errorf("%w: %w", ErrDecode, err)
}

// signatureError translates signature package errors into dispatcher error classes.
func signatureError(err error) error {
	switch {
	case errors.Is(err, signature.ErrUnsupportedType):
		return fmt.Errorf("%w: %w", ErrUnsupportedSignatureType, err)
	case errors.Is(err, signature.ErrMalformedPrivateKey), errors.Is(err, signature.ErrMalformedPublicKey):
		return fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	case errors.Is(err, signature.ErrMalformedSignature):
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	case errors.Is(err, signature.ErrInvalidArgument):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	default:
		return err
	}
}
