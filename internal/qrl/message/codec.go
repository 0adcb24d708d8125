// Package message decodes the prefix-tagged encodings carried by QRL message
// transactions into human-readable annotations.
//
// Two families are recognized: document notarization ("afaf", QIP002) and the
// message-transaction encoding ("0f0f"). Anything else passes through as-is.
package message

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

type family struct {
	prefix string
	decode func(msg string) string
}

// families is matched in order; the first matching prefix wins.
var families = []family{
	{prefix: "afaf", decode: decodeNotarization},
	{prefix: "0f0f", decode: decodeEncoded},
}

// Render turns a raw message payload into the string the decoder works on:
// the payload itself when it is valid UTF-8, its lowercase hex otherwise.
func Render(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return hex.EncodeToString(raw)
}

// DecodeBytes renders raw and decodes the result.
func DecodeBytes(raw []byte) string {
	return Decode(Render(raw))
}

// Decode annotates a rendered message. Unrecognized input is returned unchanged.
func Decode(msg string) string {
	for _, f := range families {
		if strings.HasPrefix(msg, f.prefix) {
			return f.decode(msg)
		}
	}
	return msg
}

type notarization struct {
	prefix    string
	algorithm string
	digestEnd int
}

var notarizations = []notarization{
	{prefix: "afafa1", algorithm: "SHA1", digestEnd: 46},
	{prefix: "afafa2", algorithm: "SHA256", digestEnd: 70},
	{prefix: "afafa3", algorithm: "MD5", digestEnd: 38},
}

// notarizationDigestStart is where the digest follows the 3-byte tag.
const notarizationDigestStart = 6

func decodeNotarization(msg string) string {
	for _, n := range notarizations {
		if !strings.HasPrefix(msg, n.prefix) {
			continue
		}
		digest := substr(msg, notarizationDigestStart, n.digestEnd)
		text := hexText(substr(msg, n.digestEnd, len(msg)))
		return "[Doc notarization] " + n.algorithm + ": " + digest + " TEXT: " + text
	}
	// Other afaf sub-tags have no defined layout.
	return msg
}

// encoding decodes one 4-byte type tag of the 0f0f family. It returns the
// header label, the offset the payload starts at and any structured text.
type encoding struct {
	tag    string
	decode func(msg string) (label string, begin int, text string)
}

const encodingPayloadStart = 8

var encodings = []encoding{
	{tag: "0f0f0000", decode: reserved},
	{tag: "0f0f0001", decode: reserved},
	{tag: "0f0f0002", decode: keybase},
	{tag: "0f0f0003", decode: github},
	{tag: "0f0f0004", decode: vote},
}

func decodeEncoded(msg string) string {
	label, begin, text := "[Unknown]", encodingPayloadStart, ""
	for _, e := range encodings {
		if strings.HasPrefix(msg, e.tag) {
			label, begin, text = e.decode(msg)
			break
		}
	}
	if text == "" {
		text = hexText(substr(msg, begin, len(msg)))
	}
	return label + text
}

func reserved(string) (string, int, string) {
	return "[Reserved] ", encodingPayloadStart, ""
}

func vote(string) (string, int, string) {
	return "[Vote] ", encodingPayloadStart, ""
}

// addRemoveLabel checks the Keybase add/remove byte. The Github family calls
// it too, so its add/remove labels can never match and it always ends up with
// the generic "[Github-xx] " form.
func addRemoveLabel(msg, service string) string {
	switch {
	case strings.HasPrefix(msg, "0f0f0002af"):
		return "[" + service + "-remove] "
	case strings.HasPrefix(msg, "0f0f0002aa"):
		return "[" + service + "-add] "
	default:
		return "[" + service + "-" + substr(msg, 8, 10) + "] "
	}
}

const (
	keybaseUserStart   = 10
	keybaseTailStart   = 12
	githubPayloadStart = 18

	// hexSpace separates the Keybase user from the key material.
	hexSpace = "20"
)

// keybase parses "<user> <keybase bytes>". Any failure yields empty text so
// the caller falls back to the generic tail.
func keybase(msg string) (string, int, string) {
	label := addRemoveLabel(msg, "Keybase")

	payload := substr(msg, keybaseUserStart, len(msg))
	userHex := payload
	if i := strings.Index(payload, hexSpace); i >= 0 {
		userHex = payload[:i]
	}
	user, err := hex.DecodeString(userHex)
	if err != nil || !utf8.Valid(user) {
		return label, keybaseTailStart, ""
	}
	// userHex decoded, so it is ASCII and byte offsets equal character offsets.
	key, err := hex.DecodeString(substr(payload, len(userHex)+len(hexSpace), len(payload)))
	if err != nil {
		return label, keybaseTailStart, ""
	}
	return label, keybaseTailStart, "USER: " + string(user) + " KEYBASE_HEX: " + hex.EncodeToString(key)
}

func github(msg string) (string, int, string) {
	label := addRemoveLabel(msg, "Github")

	ref, err := hex.DecodeString(substr(msg, githubPayloadStart, len(msg)))
	if err != nil {
		return label, githubPayloadStart, ""
	}
	return label, githubPayloadStart, hex.EncodeToString(ref)
}

// hexText hex-decodes s and returns the UTF-8 text, the normalized hex when
// the bytes are not text, or s itself when it is not valid hex.
func hexText(s string) string {
	b, err := hex.DecodeString(s)
	if err != nil {
		return s
	}
	if utf8.Valid(b) {
		return string(b)
	}
	return hex.EncodeToString(b)
}

// substr slices s[from:to] clamped to the string bounds. Offsets count
// characters, so non-ASCII text is never cut inside a rune.
func substr(s string, from, to int) string {
	if utf8.RuneCountInString(s) == len(s) || !utf8.ValidString(s) {
		from, to = clampRange(from, to, len(s))
		return s[from:to]
	}
	runes := []rune(s)
	from, to = clampRange(from, to, len(runes))
	return string(runes[from:to])
}

func clampRange(from, to, n int) (int, int) {
	if to > n {
		to = n
	}
	if from > to {
		from = to
	}
	return from, to
}
