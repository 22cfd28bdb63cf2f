// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imageurl

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

// Kind tags the variant held by a Ref.
type Kind int

const (
	// KindNotImage is any value that is not a Zoho image reference.
	KindNotImage Kind = iota
	// KindResolved is an already stable export URL.
	KindResolved
	// KindAPIDownload is an API-relative download path.
	KindAPIDownload
	// KindEphemeral is a CDN link with a decoded x-cli-msg payload.
	KindEphemeral
	// KindUnresolvable is an image link that cannot be converted.
	KindUnresolvable
)

func (k Kind) String() string {
	switch k {
	case KindResolved:
		return "resolved"
	case KindAPIDownload:
		return "api_download"
	case KindEphemeral:
		return "ephemeral"
	case KindUnresolvable:
		return "unresolvable"
	default:
		return "not_image"
	}
}

// Ref is a classified field value. Only the members relevant to Kind are set.
type Ref struct {
	Kind  Kind
	Value string

	// KindAPIDownload and KindEphemeral.
	Report   string
	RecordID string
	Field    string
	Filename string

	// KindEphemeral only.
	Secret string

	// Reason explains a KindUnresolvable classification.
	Reason string
}

var apiDownloadPattern = regexp.MustCompile(
	`/api/v2(?:\.1)?/[^/\s"]+/[^/\s"]+/report/([^/\s"]+)/([^/\s"]+)/([^/\s"]+)/download\?filepath=([^"&\s]+)`,
)

const (
	ephemeralParam    = "x-cli-msg"
	stableMarker      = "/image-download/"
	zohoHostSubstring = "zoho"
)

// Parse classifies value. Proxy-wrapped URLs are unwrapped first.
func Parse(value string) Ref {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Ref{Kind: KindNotImage, Value: value}
	}
	candidate := UnwrapProxyURL(trimmed)

	if isStableURL(candidate) {
		return Ref{Kind: KindResolved, Value: candidate}
	}

	if m := apiDownloadPattern.FindStringSubmatch(candidate); m != nil {
		filename, err := url.QueryUnescape(m[4])
		if err != nil {
			filename = m[4]
		}
		return Ref{
			Kind:     KindAPIDownload,
			Value:    value,
			Report:   m[1],
			RecordID: m[2],
			Field:    m[3],
			Filename: baseName(filename),
		}
	}

	if strings.Contains(candidate, ephemeralParam+"=") {
		return parseEphemeral(value, candidate)
	}

	if looksLikeZohoImage(candidate) {
		return Ref{Kind: KindUnresolvable, Value: value, Reason: "unknown image link shape"}
	}

	return Ref{Kind: KindNotImage, Value: value}
}

func isStableURL(value string) bool {
	return strings.HasPrefix(value, "https://") &&
		strings.Contains(value, "/file/") &&
		strings.Contains(value, stableMarker)
}

func looksLikeZohoImage(value string) bool {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return false
	}
	if !strings.Contains(strings.ToLower(u.Host), zohoHostSubstring) {
		return false
	}
	p := strings.ToLower(u.Path)
	return strings.Contains(p, "/image") || strings.Contains(p, "download") || u.Query().Has("filepath")
}

// ephemeralPayload is the JSON document carried in x-cli-msg. Zoho has used
// several spellings for the same keys.
type ephemeralPayload struct {
	RecordID      string `json:"recordid"`
	RecordIDCamel string `json:"recordId"`
	RecordIDSnake string `json:"record_id"`
	FilePath      string `json:"filepath"`
	FilePathCamel string `json:"filePath"`
	Secret        string `json:"privatelink"`
	SecretCamel   string `json:"privateLink"`
	SecretPlain   string `json:"secret"`
	Field         string `json:"fieldname"`
	FieldCamel    string `json:"fieldName"`
	Report        string `json:"reportname"`
}

func parseEphemeral(value, candidate string) Ref {
	unresolvable := func(reason string) Ref {
		return Ref{Kind: KindUnresolvable, Value: value, Reason: reason}
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return unresolvable("malformed url")
	}
	msg := u.Query().Get(ephemeralParam)
	if msg == "" {
		return unresolvable("empty " + ephemeralParam)
	}

	raw, err := decodeBase64(msg)
	if err != nil {
		return unresolvable("payload is not base64")
	}

	var p ephemeralPayload
	if err = json.Unmarshal(raw, &p); err != nil {
		return unresolvable("payload is not json")
	}

	ref := Ref{
		Kind:     KindEphemeral,
		Value:    value,
		RecordID: firstNonEmpty(p.RecordID, p.RecordIDCamel, p.RecordIDSnake),
		Filename: baseName(firstNonEmpty(p.FilePath, p.FilePathCamel)),
		Secret:   firstNonEmpty(p.Secret, p.SecretCamel, p.SecretPlain),
		Field:    firstNonEmpty(p.Field, p.FieldCamel),
		Report:   p.Report,
	}
	switch {
	case ref.RecordID == "":
		return unresolvable("payload without record id")
	case ref.Filename == "":
		return unresolvable("payload without file path")
	case ref.Secret == "":
		return unresolvable("payload without secret")
	}
	return ref
}

// decodeBase64 accepts standard and URL alphabets, padded or not.
func decodeBase64(s string) ([]byte, error) {
	var lastErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding,
	} {
		out, err := enc.DecodeString(s)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// baseName keeps the last segment of a file path.
func baseName(filepath string) string {
	filepath = strings.TrimSpace(filepath)
	if i := strings.LastIndex(filepath, "/"); i >= 0 {
		filepath = filepath[i+1:]
	}
	return filepath
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// UnwrapProxyURL returns the origin of a proxy-rewritten image URL carried in
// its "url" query parameter. Any other value is returned unchanged.
func UnwrapProxyURL(value string) string {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return value
	}
	inner := u.Query().Get("url")
	if inner == "" {
		return value
	}
	target, err := url.Parse(inner)
	if err != nil || target.Host == "" || (target.Scheme != "http" && target.Scheme != "https") {
		return value
	}
	return inner
}
