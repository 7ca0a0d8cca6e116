/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"strings"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
	"github.com/ovpn-tools/ovpncheck/pkg/keyword"
)

// CheckLine validates one configuration line against the registry.
//
// The line must already be trimmed and stripped of comments; blank input
// validates trivially. On failure the returned error is a
// *errors.StructuredError carrying one of the validation codes.
func CheckLine(line string, reg *keyword.Registry) error {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	name := words[0]

	kw, ok := reg.Lookup(name)
	if !ok {
		return errors.Newf(errors.ErrCodeUnknownKeyword, "Unknown keyword '%s'", name)
	}

	// Mandatory arity: the line needs strictly more tokens than MinArgs.
	// MinArgs -1 marks unchecked arity.
	if kw.MinArgs >= 0 && len(words) <= kw.MinArgs {
		if len(words) == 1 && len(kw.ArgTypes) > 0 && kw.ArgTypes[0] == keyword.TypeQuotedString {
			return errors.Newf(errors.ErrCodeMissingArgument,
				"Missing string argument for keyword '%s'", name)
		}
		return errors.Newf(errors.ErrCodeTooFewArguments,
			"Invalid number of arguments for keyword '%s'", name)
	}

	pos := 0 // schema position; diverges from the token index at network pairs
	for i := 1; i < len(words); {
		if len(kw.ArgTypes) == 0 {
			return errors.Newf(errors.ErrCodeTakesNoArguments,
				"Keyword '%s' takes no arguments", name)
		}
		if pos >= len(kw.ArgTypes) {
			return errors.Newf(errors.ErrCodeTooManyArguments,
				"Invalid optional argument for keyword '%s'", name)
		}

		word := words[i]
		if !isPrintable(word) {
			return errors.Newf(errors.ErrCodeInvalidCharacters,
				"Invalid characters in value for keyword '%s'", name)
		}

		switch kw.ArgTypes[pos] {
		case keyword.TypeNone:
			return errors.Newf(errors.ErrCodeTakesNoArguments,
				"Keyword '%s' takes no arguments", name)

		case keyword.TypeQuotedString:
			rest := remainder(line)
			if rest == "" {
				return errors.Newf(errors.ErrCodeMissingArgument,
					"Missing string argument for keyword '%s'", name)
			}
			if !isQuotedString(rest) {
				return errors.Newf(errors.ErrCodeInvalidStringFormat,
					"Invalid string format for keyword '%s'", name)
			}
			// A quoted string consumes the whole remainder of the line.
			return nil

		case keyword.TypeRoute:
			// Reserved: route arguments pass unchecked.
			return nil

		case keyword.TypeIPv4Network:
			if i+1 >= len(words) {
				return errors.Newf(errors.ErrCodeMissingNetworkPart,
					"Missing IP network address part for keyword '%s'", name)
			}
			mask := words[i+1]
			if !isPrintable(mask) {
				return errors.Newf(errors.ErrCodeInvalidCharacters,
					"Invalid characters in value for keyword '%s'", name)
			}
			if !isIPv4Network(word, mask) {
				return errors.Newf(errors.ErrCodeInvalidNetwork,
					"Invalid IP network address for keyword '%s'", name)
			}
			i += 2
			pos++
			continue

		case keyword.TypeInteger:
			if !isDigits(word) {
				return errors.Newf(errors.ErrCodeInvalidInteger,
					"Invalid integer value '%s' for keyword '%s'", word, name)
			}

		case keyword.TypeASCII:
			if !isASCII(word) {
				return errors.Newf(errors.ErrCodeInvalidAscii,
					"Invalid ascii value '%s' for keyword '%s'", word, name)
			}

		case keyword.TypeEnum:
			if !kw.HasEnumValues(pos) {
				return errors.Newf(errors.ErrCodeNoEnumValuesDefined,
					"No enumeration values defined for keyword '%s'", name)
			}
			if !kw.MatchEnum(pos, word) {
				return errors.Newf(errors.ErrCodeInvalidEnumValue,
					"Invalid enumeration value '%s' for keyword '%s'", word, name)
			}

		case keyword.TypeIPv4Address:
			if !isIPv4(word) {
				return errors.Newf(errors.ErrCodeInvalidIPAddress,
					"Invalid IP address '%s' for keyword '%s'", word, name)
			}
		}

		i++
		pos++
	}

	return nil
}
