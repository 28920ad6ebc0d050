package mkhs

import "errors"

var (
	// ErrRowLength is returned when a message row's length does not
	// match the Mkhs instance's row width t.
	ErrRowLength = errors.New("mkhs: message row length does not match t")

	// ErrKeyVectorLength is returned when a client's SK.X vector length
	// does not match the Mkhs instance's signer count n.
	ErrKeyVectorLength = errors.New("mkhs: key vector length does not match n")

	// ErrNoSignatures is returned by Eval when given an empty slice.
	ErrNoSignatures = errors.New("mkhs: eval requires at least one signature")

	// ErrUnknownSigner is returned by Verify when a Lam names a client
	// ID absent from the supplied public key set.
	ErrUnknownSigner = errors.New("mkhs: signature references an unknown client id")

	// ErrTagAuthFailed is returned by Verify when a Lam's Ed25519 tag
	// signature does not verify against the claimed signer's key.
	ErrTagAuthFailed = errors.New("mkhs: lam tag authentication failed")

	// ErrVerifyFailed is returned by Verify when the pairing equation
	// does not hold.
	ErrVerifyFailed = errors.New("mkhs: signature verification failed")
)
