// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire module.

Categories:

  - Metadata: Application name and version attached to every log entry.
  - Arithmetic: Decimal precision used by unit conversions.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

// # Metadata

const (
	AppName    = "roundhouse"
	AppVersion = "0.1.0-dev"
)

// # Arithmetic

const (
	// DecimalPrecision is the number of fractional digits kept when a unit
	// conversion requires a division.
	DecimalPrecision int32 = 16
)
