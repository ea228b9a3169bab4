package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"library-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxFeedLimit     = 200
	DefaultFeedLimit = 20
	cursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// Cursor points after the last activity of a feed page. Entry times are
// encoded with microsecond precision to match PostgreSQL timestamps.
type Cursor struct {
	After string `json:"after,omitempty"`
}

type FeedPosition struct {
	EntryTime time.Time
	ID        uuid.UUID
}

func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := cursorVersionV1 + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (FeedPosition, error) {
	if cursor == "" {
		return FeedPosition{}, errs.Wrap(ErrInvalidCursor, "empty cursor")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return FeedPosition{}, errs.Mark(errs.Wrap(err, "decode cursor"), ErrInvalidCursor)
	}

	payload, ok := strings.CutPrefix(string(decoded), cursorVersionV1+":")
	if !ok {
		return FeedPosition{}, errs.Wrap(ErrInvalidCursor, "unknown cursor version")
	}
	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return FeedPosition{}, errs.Wrap(ErrInvalidCursor, "expected '<micros>-<uuid>'")
	}

	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return FeedPosition{}, errs.Mark(errs.Wrap(err, "cursor timestamp"), ErrInvalidCursor)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return FeedPosition{}, errs.Mark(errs.Wrap(err, "cursor id"), ErrInvalidCursor)
	}
	return FeedPosition{EntryTime: time.UnixMicro(ts).UTC(), ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		return MaxFeedLimit
	}
	return limit
}
