// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - SubmitRequest: password

# Response Types

  - SubmitResponse: fingerprint, destination
  - HintResponse: position, text, message
  - ProgressResponse: solved, all_solved, indicator
  - ErrorResponse: error, message

Rejections use ErrorResponse with the user-facing message in "message", for
example "パスワードが間違っています！".
*/
package models
