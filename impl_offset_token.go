package pagecursor

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// OffsetToken is a LIMIT/OFFSET position dressed as a token. It needs no
// database access to build, which makes it the cheapest page payload.
type OffsetToken struct {
	offset int
}

func NewOffsetToken(offset int) *OffsetToken {
	return &OffsetToken{
		offset: offset,
	}
}

// DecodeOffsetToken parses a token produced by OffsetToken.String.
// An empty string decodes to a nil token (start of the dataset).
func DecodeOffsetToken(b64String string) (*OffsetToken, error) {
	if len(b64String) == 0 {
		return nil, nil
	}

	offsetBytes, err := _encoder.DecodeString(b64String)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded offset token: %w", err)
	}

	offset, err := strconv.Atoi(string(offsetBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode offset token value: %w", err)
	}
	if offset < 0 {
		return nil, fmt.Errorf("negative offset token value %d", offset)
	}

	return &OffsetToken{
		offset: offset,
	}, nil
}

// String - implements fmt.Stringer.
func (t *OffsetToken) String() string {
	if t.IsEmpty() {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(t.offset)))
}

// MarshalText lets tokens travel as plain strings in JSON payloads.
func (t *OffsetToken) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsEmpty - implements Token.
func (t *OffsetToken) IsEmpty() bool {
	return t == nil || t.offset == 0
}

// Apply - implements Token.
func (t *OffsetToken) Apply(db *gorm.DB) *gorm.DB {
	if t.IsEmpty() {
		return db
	}

	return db.Offset(t.offset)
}

func (t *OffsetToken) GetOffset() int {
	if t != nil {
		return t.offset
	}

	return 0
}

func (t *OffsetToken) WithOffset(offset int) *OffsetToken {
	if t == nil {
		t = new(OffsetToken)
	}

	t.offset = offset

	return t
}

// validate - implements Token.
func (t *OffsetToken) validate(_ Orderings) error {
	return nil
}

// OffsetTokenFetcher maps page n to the offset (n-1)*pageSize.
func OffsetTokenFetcher(pageSize int) FetchPageFunc[*OffsetToken] {
	return func(_ context.Context, page int) (*OffsetToken, error) {
		if pageSize <= 0 {
			return nil, &ParamError{Name: "pageSize", Value: int64(pageSize)}
		}
		if page <= 0 {
			return nil, &ParamError{Name: "page", Value: int64(page)}
		}

		return NewOffsetToken((page - 1) * pageSize), nil
	}
}

var (
	_ Token                     = (*OffsetToken)(nil)
	_ fmt.Stringer              = (*OffsetToken)(nil)
	_ PageFetcher[*OffsetToken] = OffsetTokenFetcher(1)
)
