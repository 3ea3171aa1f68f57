package domain

import "errors"

// Argument parsing failures.
var (
	// ErrMissingFlagValue signals a flag that expects a value at the end of
	// the argument list. Callers wrap it with the flag name.
	ErrMissingFlagValue = errors.New("flag requires a value")

	// ErrNoPrompt signals that no keyword was supplied via flag or position.
	ErrNoPrompt = errors.New("no prompt keyword provided")
)

// Credential failures.
var (
	// ErrAPIKeyMissing means no credential source (cache file, --key flag,
	// GENAI_API_KEY) yielded a value.
	ErrAPIKeyMissing = errors.New("API key not found: provide it with --key or set GENAI_API_KEY")
)

// Generation failures.
var (
	// ErrAPIRejected covers authentication and quota rejections from the
	// generative API; the cached credential is likely invalid.
	ErrAPIRejected = errors.New("generative API rejected the request")

	// ErrEmptyResponse means the call succeeded but returned no usable text.
	ErrEmptyResponse = errors.New("generative API returned an empty response")

	// ErrGenerateTimeout means the remote call did not complete within the
	// configured deadline.
	ErrGenerateTimeout = errors.New("generation timed out")
)
