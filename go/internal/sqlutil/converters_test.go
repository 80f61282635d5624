package sqlutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInt32Converters(t *testing.T) {
	assert.False(t, ToSqlInt32(nil).Valid)

	v := 7
	got := ToSqlInt32(&v)
	assert.True(t, got.Valid)
	assert.Equal(t, int32(7), got.Int32)

	assert.False(t, ToSqlInt32NonZero(0).Valid)
	assert.True(t, ToSqlInt32NonZero(12).Valid)

	assert.Equal(t, 0, FromSqlInt32(sql.NullInt32{}))
	assert.Equal(t, 12, FromSqlInt32(sql.NullInt32{Int32: 12, Valid: true}))
}

func TestStringConverters(t *testing.T) {
	assert.False(t, ToSqlString("").Valid)
	assert.True(t, ToSqlString("x").Valid)

	assert.Equal(t, "fallback", FromSqlString(sql.NullString{}, "fallback"))
	assert.Equal(t, "x", FromSqlString(sql.NullString{String: "x", Valid: true}, "fallback"))
}

func TestTimeConverters(t *testing.T) {
	assert.False(t, ToSqlTime(nil).Valid)

	now := time.Now()
	got := ToSqlTime(&now)
	assert.True(t, got.Valid)
	assert.Equal(t, now, got.Time)

	assert.Nil(t, FromSqlTime(sql.NullTime{}))
	assert.Equal(t, &now, FromSqlTime(sql.NullTime{Time: now, Valid: true}))
}
