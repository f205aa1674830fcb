package build

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxShareSize bounds the inflated payload so a hostile code cannot balloon in memory.
const maxShareSize = 1 << 20

// EncodeShare packs a build into a URL-safe code: deflated JSON, base64url without padding.
func EncodeShare(b *Build) (string, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(raw); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

func DecodeShare(code string) (*Build, error) {
	packed, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("%w: share code: %v", ErrInvalid, err)
	}
	r := flate.NewReader(bytes.NewReader(packed))
	defer r.Close()

	raw, err := io.ReadAll(io.LimitReader(r, maxShareSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: share code: %v", ErrInvalid, err)
	}
	if len(raw) > maxShareSize {
		return nil, fmt.Errorf("%w: share code too large", ErrInvalid)
	}
	return Parse(raw)
}
